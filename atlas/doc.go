// Package atlas builds the CCF atlas knowledge-graph document.
//
// The builder takes the linked ontology mapping and the set of structures
// that have a mesh, and produces the ordered node list described by the
// ccf vocabulary: base URLs first, then per-structure mesh and voxel-mask
// data sources, structure nodes, the reference image volumes, and a header
// node prepended to the front. All cross-references between nodes are by
// "@id" string.
//
// Building is deterministic: mesh IDs are sorted before emission, so two
// runs over the same inputs produce byte-identical documents.
package atlas
