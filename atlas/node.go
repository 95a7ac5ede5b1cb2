package atlas

import (
	"github.com/c360studio/atlasgraph/vocabulary/ccf"
)

// Annotation carries human-facing metadata on a node. All fields are
// optional; each node kind fills the ones that apply to it.
type Annotation struct {
	// Name is the display name (structure safe name, or document name
	// on the header).
	Name string `json:"name,omitempty"`

	// Acronym is the ontology acronym of a structure.
	Acronym string `json:"acronym,omitempty"`

	// AllenAtlasID is the numeric ontology ID the node was derived from.
	AllenAtlasID *int `json:"allenAtlasId,omitempty"`

	// SpatialResolutionMicrons is the voxel resolution of an image data
	// source.
	SpatialResolutionMicrons int `json:"spatialResolutionMicrons,omitempty"`

	// About lists reference links on the header node.
	About []string `json:"about,omitempty"`
}

// Style holds display styling for a structure or group.
type Style struct {
	Color string `json:"color"`
}

// Shape describes a structure's renderable geometry: the mesh data source
// first, then the per-resolution voxel mask data sources.
type Shape struct {
	Type       ccf.Type `json:"@type"`
	DataSource []string `json:"dataSource"`
}

// Node is one record of the atlas document. Every node has an ID and a
// type set; the remaining fields are populated per node kind and omitted
// otherwise.
type Node struct {
	ID    string  `json:"@id"`
	Types TypeSet `json:"@type"`

	// BaseURL nodes.
	URL string `json:"url,omitempty"`

	// DataSource nodes. BaseURL references a BaseURL node's ID; Source
	// is the asset path relative to it.
	BaseURL  string `json:"baseURL,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
	Source   string `json:"source,omitempty"`

	// Header node.
	Root            []string `json:"root,omitempty"`
	BackgroundImage []string `json:"backgroundImage,omitempty"`
	FormatVersion   string   `json:"formatVersion,omitempty"`

	// Structure and Group nodes.
	Style   *Style   `json:"style,omitempty"`
	Shape   *Shape   `json:"shape,omitempty"`
	Members []string `json:"members,omitempty"`

	Annotation *Annotation `json:"annotation,omitempty"`
}

// AddMember adds a member node ID with set semantics and widens the node's
// type set with the Group tag.
func (n *Node) AddMember(id string) {
	for _, existing := range n.Members {
		if existing == id {
			n.Types.Add(ccf.TypeGroup)
			return
		}
	}
	n.Members = append(n.Members, id)
	n.Types.Add(ccf.TypeGroup)
}

// Document is the ordered node list of one atlas. The header node is
// always first.
type Document []*Node

// Header returns the document's header node.
func (d Document) Header() *Node {
	if len(d) == 0 {
		return nil
	}
	return d[0]
}

// Lookup returns the node with the given ID, or nil.
func (d Document) Lookup(id string) *Node {
	for _, n := range d {
		if n.ID == id {
			return n
		}
	}
	return nil
}
