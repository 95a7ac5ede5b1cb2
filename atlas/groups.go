package atlas

import (
	"fmt"

	"github.com/c360studio/atlasgraph/source/ontology"
	"github.com/c360studio/atlasgraph/vocabulary/ccf"
)

// rollupGroups aggregates structures under their ontology parents. A
// parent that is itself a structure absorbs the member and gains the Group
// tag; a parent without a mesh becomes a standalone Group node styled and
// annotated from its ontology entry. Roots have no parent and are not
// rolled up anywhere.
//
// Returned group nodes are in first-reference order, which is stable
// because structure IDs are walked ascending.
func (b *Builder) rollupGroups(mapping ontology.Mapping, ids []int, structures map[int]*Node) ([]*Node, error) {
	groups := make(map[int]*Node)
	var order []*Node

	for _, id := range ids {
		entry := mapping[id]
		if entry.ParentStructureID == nil {
			continue
		}
		parentID := *entry.ParentStructureID
		member := structures[id]

		if parent, ok := structures[parentID]; ok {
			parent.AddMember(member.ID)
			continue
		}
		if group, ok := groups[parentID]; ok {
			group.AddMember(member.ID)
			continue
		}

		parentEntry, err := mapping.Get(parentID)
		if err != nil {
			return nil, fmt.Errorf("group parent of structure %d: %w", id, err)
		}
		allenID := parentEntry.ID
		group := &Node{
			ID:      ccf.GroupID(parentID),
			Types:   NewTypeSet(ccf.TypeGroup),
			Style:   &Style{Color: "#" + parentEntry.ColorHexTriplet},
			Members: []string{member.ID},
			Annotation: &Annotation{
				Name:         parentEntry.SafeName,
				Acronym:      parentEntry.Acronym,
				AllenAtlasID: &allenID,
			},
		}
		groups[parentID] = group
		order = append(order, group)
	}

	return order, nil
}
