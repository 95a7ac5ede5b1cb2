package ontology

import (
	"fmt"
	"sort"
)

// Link overlays the structure hierarchy on a flat mapping: every entry
// with a parent reference is appended to that parent's ChildStructureIDs.
// Root entries (nil parent) are skipped. Entries are visited in ascending
// ID order so child lists come out the same on every run.
//
// Link mutates entries in place and never creates new ones. An entry whose
// parent ID is absent from the mapping fails the whole link; the upstream
// feed guarantees closure, so a dangling parent means the feed is broken.
func Link(m Mapping) error {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		entry := m[id]
		if entry.ParentStructureID == nil {
			continue
		}
		parent, ok := m[*entry.ParentStructureID]
		if !ok {
			return fmt.Errorf("link structure %d: parent %d: %w",
				entry.ID, *entry.ParentStructureID, ErrUnknownStructure)
		}
		parent.ChildStructureIDs = append(parent.ChildStructureIDs, entry.ID)
	}
	return nil
}
