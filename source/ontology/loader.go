package ontology

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrUnknownStructure is returned when a structure ID referenced by the
// feed or by a caller does not resolve to an ontology entry.
var ErrUnknownStructure = errors.New("unknown structure id")

// Entry is one anatomical structure from the ontology feed.
//
// Pointer-typed numeric fields are nil when the source column was empty.
// ParentStructureID is nil exactly for graph roots.
type Entry struct {
	ID                int
	ParentStructureID *int
	Acronym           string
	Name              string
	SafeName          string
	ColorHexTriplet   string
	StructureIDPath   string

	AtlasID      *int
	OntologyID   *int
	GraphID      *int
	GraphOrder   *int
	StLevel      *int
	HemisphereID *int
	Depth        *int
	SphinxID     *int

	// Extra holds columns this package does not decode, keyed by header
	// name, values verbatim.
	Extra map[string]string

	// ChildStructureIDs is populated by Link, in ascending ID order.
	// Nil for leaves.
	ChildStructureIDs []int
}

// Mapping indexes ontology entries by structure ID.
type Mapping map[int]*Entry

// Get returns the entry for a structure ID.
func (m Mapping) Get(id int) (*Entry, error) {
	e, ok := m[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStructure, id)
	}
	return e, nil
}

// intColumns are the feed columns decoded into typed integer fields.
var intColumns = map[string]func(*Entry, *int){
	"atlas_id":      func(e *Entry, v *int) { e.AtlasID = v },
	"ontology_id":   func(e *Entry, v *int) { e.OntologyID = v },
	"graph_id":      func(e *Entry, v *int) { e.GraphID = v },
	"graph_order":   func(e *Entry, v *int) { e.GraphOrder = v },
	"st_level":      func(e *Entry, v *int) { e.StLevel = v },
	"hemisphere_id": func(e *Entry, v *int) { e.HemisphereID = v },
	"depth":         func(e *Entry, v *int) { e.Depth = v },
	"sphinx_id":     func(e *Entry, v *int) { e.SphinxID = v },
}

// stringColumns are the feed columns decoded into typed string fields.
var stringColumns = map[string]func(*Entry, string){
	"acronym":           func(e *Entry, v string) { e.Acronym = v },
	"name":              func(e *Entry, v string) { e.Name = v },
	"safe_name":         func(e *Entry, v string) { e.SafeName = v },
	"color_hex_triplet": func(e *Entry, v string) { e.ColorHexTriplet = v },
	"structure_id_path": func(e *Entry, v string) { e.StructureIDPath = v },
}

// Load reads the ontology CSV feed and indexes its rows by structure ID.
//
// The first row is the header. Rows with a field count that differs from
// the header fail the load; the feed is a single trusted source and a
// ragged table means the fetch itself went wrong.
func Load(r io.Reader) (Mapping, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read ontology header: %w", err)
	}

	idCol := -1
	parentCol := -1
	for i, name := range header {
		switch name {
		case "id":
			idCol = i
		case "parent_structure_id":
			parentCol = i
		}
	}
	if idCol < 0 {
		return nil, fmt.Errorf("ontology header has no %q column", "id")
	}
	if parentCol < 0 {
		return nil, fmt.Errorf("ontology header has no %q column", "parent_structure_id")
	}

	mapping := make(Mapping)
	for row := 2; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read ontology row %d: %w", row, err)
		}

		entry, err := decodeEntry(header, record)
		if err != nil {
			return nil, fmt.Errorf("ontology row %d: %w", row, err)
		}
		mapping[entry.ID] = entry
	}

	return mapping, nil
}

func decodeEntry(header, record []string) (*Entry, error) {
	entry := &Entry{}

	for i, name := range header {
		value := record[i]
		switch {
		case name == "id":
			id, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("column id: %w", err)
			}
			entry.ID = id
		case name == "parent_structure_id":
			parent, err := optionalInt(value)
			if err != nil {
				return nil, fmt.Errorf("column parent_structure_id: %w", err)
			}
			entry.ParentStructureID = parent
		default:
			if set, ok := intColumns[name]; ok {
				v, err := optionalInt(value)
				if err != nil {
					return nil, fmt.Errorf("column %s: %w", name, err)
				}
				set(entry, v)
				continue
			}
			if set, ok := stringColumns[name]; ok {
				set(entry, value)
				continue
			}
			if entry.Extra == nil {
				entry.Extra = make(map[string]string)
			}
			entry.Extra[name] = value
		}
	}

	return entry, nil
}

// optionalInt parses a base-10 integer, treating the empty string as
// absent.
func optionalInt(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
