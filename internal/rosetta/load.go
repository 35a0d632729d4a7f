package rosetta

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// MappingPack is the on-disk YAML format for mapping extensions.
//
//	mappings:
//	  - phrase: "frobnicate"
//	    symbol: "⨍"
//	    category: special
//	    canonical: true
//	  - phrase: "frob"
//	    symbol: "⨍"
//	    category: special
type MappingPack struct {
	Mappings []Entry `yaml:"mappings"`
}

// LoadYAML reads a mapping pack. Unknown fields are rejected so typos in
// pack files fail loudly instead of silently dropping mappings.
func LoadYAML(r io.Reader) ([]Entry, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var pack MappingPack
	if err := dec.Decode(&pack); err != nil {
		return nil, fmt.Errorf("decoding mapping pack: %w", err)
	}
	if len(pack.Mappings) == 0 {
		return nil, fmt.Errorf("mapping pack contains no mappings")
	}
	return pack.Mappings, nil
}
