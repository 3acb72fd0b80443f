// File: metaopt/options.go
package metaopt

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/mitchellh/mapstructure"
)

// Options is the resolved configuration object of one type: the final merged,
// validated value of every option in the schema, keyed by option name.
//
// It is created exactly once per type, installed as the type's Meta member,
// and read-only by contract afterwards. Every derived type gets its own,
// independently resolved Options; ancestor state is merged, never shared.
type Options struct {
	typeName string
	owner    *Type
	names    []string
	values   map[string]any
	abstract bool
}

func newOptions(typeName string, names []string, values map[string]any) *Options {
	b, _ := values[AbstractOptionName].(bool)
	return &Options{
		typeName: typeName,
		names:    names,
		values:   values,
		abstract: b,
	}
}

// bindOwner attaches the finalized type. Called once, by Define.
func (o *Options) bindOwner(t *Type) {
	o.owner = t
}

// TypeName returns the name of the type these options were resolved for.
func (o *Options) TypeName() string {
	return o.typeName
}

// Owner returns the finalized owning type, or nil when the options were
// resolved outside the Define factory.
func (o *Options) Owner() *Type {
	return o.owner
}

// Abstract reports the resolved value of the built-in abstract option.
func (o *Options) Abstract() bool {
	return o.abstract
}

// Names returns the option names in schema declaration order.
func (o *Options) Names() []string {
	return o.names
}

// Has reports whether the option is present in the resolved configuration.
func (o *Options) Has(name string) bool {
	_, ok := o.values[name]
	return ok
}

// Get retrieves a resolved option value. The second return value indicates
// whether the option exists in this configuration.
func (o *Options) Get(name string) (any, bool) {
	v, ok := o.values[name]
	return v, ok
}

// String returns an option value as a string, rendering common scalar types
// when the resolved value is not a string already. A nil value reads as the
// empty string.
func (o *Options) String(name string) (string, error) {
	val, found := o.Get(name)
	if !found {
		return "", fmt.Errorf("option not resolved: %s", name)
	}
	if val == nil {
		return "", nil
	}

	switch v := val.(type) {
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	case []byte:
		return string(v), nil
	case int, int8, int16, int32, int64:
		return strconv.FormatInt(reflect.ValueOf(val).Int(), 10), nil
	case uint, uint8, uint16, uint32, uint64:
		return strconv.FormatUint(reflect.ValueOf(val).Uint(), 10), nil
	case float32, float64:
		return strconv.FormatFloat(reflect.ValueOf(val).Float(), 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	case error:
		return v.Error(), nil
	}
	return "", fmt.Errorf("cannot convert type %T to string for option %s", val, name)
}

// Int64 returns an option value as an int64. Numeric kinds convert directly
// (floats truncate), strings are parsed with base auto-detection, and
// booleans map to 0 and 1.
func (o *Options) Int64(name string) (int64, error) {
	val, found := o.Get(name)
	if !found {
		return 0, fmt.Errorf("option not resolved: %s", name)
	}
	if val == nil {
		return 0, fmt.Errorf("value for option %s is nil, cannot convert to int64", name)
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := v.Uint()
		if u > uint64(math.MaxInt64) {
			return 0, fmt.Errorf("cannot convert unsigned integer %d (type %T) to int64 for option %s: overflow", u, val, name)
		}
		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		return int64(v.Float()), nil
	case reflect.String:
		s := v.String()
		if i, err := strconv.ParseInt(s, 0, 64); err == nil {
			return i, nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int64(f), nil
		}
		return 0, fmt.Errorf("cannot convert string %q to int64 for option %s", s, name)
	case reflect.Bool:
		if v.Bool() {
			return 1, nil
		}
		return 0, nil
	}
	return 0, fmt.Errorf("cannot convert type %T to int64 for option %s", val, name)
}

// Bool returns an option value as a bool. Strings go through strconv
// semantics; numbers read as false when zero.
func (o *Options) Bool(name string) (bool, error) {
	val, found := o.Get(name)
	if !found {
		return false, fmt.Errorf("option not resolved: %s", name)
	}
	if val == nil {
		return false, fmt.Errorf("value for option %s is nil, cannot convert to bool", name)
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Bool:
		return v.Bool(), nil
	case reflect.String:
		s := v.String()
		b, err := strconv.ParseBool(s)
		if err != nil {
			return false, fmt.Errorf("cannot convert string %q to bool for option %s: %w", s, name, err)
		}
		return b, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() != 0, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() != 0, nil
	case reflect.Float32, reflect.Float64:
		return v.Float() != 0, nil
	}
	return false, fmt.Errorf("cannot convert type %T to bool for option %s", val, name)
}

// Float64 returns an option value as a float64. Integer kinds widen, strings
// are parsed, and booleans map to 0 and 1.
func (o *Options) Float64(name string) (float64, error) {
	val, found := o.Get(name)
	if !found {
		return 0, fmt.Errorf("option not resolved: %s", name)
	}
	if val == nil {
		return 0, fmt.Errorf("value for option %s is nil, cannot convert to float64", name)
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), nil
	case reflect.String:
		s := v.String()
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert string %q to float64 for option %s: %w", s, name, err)
		}
		return f, nil
	case reflect.Bool:
		if v.Bool() {
			return 1, nil
		}
		return 0, nil
	}
	return 0, fmt.Errorf("cannot convert type %T to float64 for option %s", val, name)
}

// Scan decodes the resolved configuration into the target struct or map.
// The target must be a non-nil pointer. Fields map through the "meta" struct
// tag, falling back to the field name.
func (o *Options) Scan(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("target of Scan must be a non-nil pointer, got %T", target)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "meta",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(o.values); err != nil {
		return fmt.Errorf("failed to scan options for type %q into %T: %w", o.typeName, target, err)
	}

	return nil
}

// Repr renders the resolved option map for debugging.
func (o *Options) Repr() string {
	return fmt.Sprintf("<Options type=%q values=%v>", o.typeName, o.values)
}
