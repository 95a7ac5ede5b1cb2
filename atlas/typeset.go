package atlas

import (
	"encoding/json"
	"fmt"

	"github.com/c360studio/atlasgraph/vocabulary/ccf"
)

// TypeSet is a node's set of capability tags. It keeps insertion order and
// never holds duplicates. The JSON form matches the document convention:
// a bare string for a single tag, an array otherwise.
type TypeSet []ccf.Type

// NewTypeSet builds a TypeSet from tags, dropping duplicates.
func NewTypeSet(types ...ccf.Type) TypeSet {
	var s TypeSet
	for _, t := range types {
		s.Add(t)
	}
	return s
}

// Has reports whether the set contains t.
func (s TypeSet) Has(t ccf.Type) bool {
	for _, existing := range s {
		if existing == t {
			return true
		}
	}
	return false
}

// Add inserts t unless already present. Adding to an empty set yields a
// single-tag set; adding to a single-tag set widens it to a list. Add is
// idempotent.
func (s *TypeSet) Add(t ccf.Type) {
	if s.Has(t) {
		return
	}
	*s = append(*s, t)
}

// MarshalJSON serializes a singleton set as its one tag string and larger
// sets as an array.
func (s TypeSet) MarshalJSON() ([]byte, error) {
	switch len(s) {
	case 0:
		return nil, fmt.Errorf("node has no type tags")
	case 1:
		return json.Marshal(s[0])
	default:
		return json.Marshal([]ccf.Type(s))
	}
}

// UnmarshalJSON accepts either the string or the array form.
func (s *TypeSet) UnmarshalJSON(data []byte) error {
	var single ccf.Type
	if err := json.Unmarshal(data, &single); err == nil {
		*s = NewTypeSet(single)
		return nil
	}

	var many []ccf.Type
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("@type must be a string or list of strings: %w", err)
	}
	*s = NewTypeSet(many...)
	return nil
}
