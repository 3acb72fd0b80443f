// File: metaopt/decl.go
package metaopt

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DeclFromTOML parses a declaration block from TOML text. Keys become option
// names; integer values arrive as int64, per the TOML decoder.
func DeclFromTOML(data []byte) (Decl, error) {
	decl := make(Decl)
	if err := toml.Unmarshal(data, &decl); err != nil {
		return nil, fmt.Errorf("failed to parse TOML declaration block: %w", err)
	}
	return decl, nil
}

// DeclFromYAML parses a declaration block from YAML text.
func DeclFromYAML(data []byte) (Decl, error) {
	decl := make(Decl)
	if err := yaml.Unmarshal(data, &decl); err != nil {
		return nil, fmt.Errorf("failed to parse YAML declaration block: %w", err)
	}
	return decl, nil
}
