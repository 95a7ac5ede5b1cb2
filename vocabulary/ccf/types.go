package ccf

// Type is a node capability tag. A node's "@type" is a set of these,
// serialized as a bare string when the set has one member.
type Type string

// Closed enumeration of node type tags.
const (
	// TypeHeader marks the document header node, always first in the list.
	TypeHeader Type = "Header"

	// TypeBaseURL marks a node holding a resolvable base endpoint.
	TypeBaseURL Type = "BaseURL"

	// TypeDataSource marks a fetchable asset. Always present on data
	// source nodes; the tags below refine it.
	TypeDataSource Type = "DataSource"

	// TypeGeometryDataSource refines DataSource for 3D geometry assets.
	TypeGeometryDataSource Type = "GeometryDataSource"

	// TypeTriangleMeshDataSource refines GeometryDataSource for OBJ
	// triangle meshes.
	TypeTriangleMeshDataSource Type = "TriangleMeshDataSource"

	// TypeImageDataSource refines DataSource for volumetric images.
	TypeImageDataSource Type = "ImageDataSource"

	// TypeVoxelMaskDataSource refines ImageDataSource for per-structure
	// binary voxel masks.
	TypeVoxelMaskDataSource Type = "VoxelMaskDataSource"

	// TypeAverageTemplateDataSource refines ImageDataSource for the CCF
	// average template background volumes.
	TypeAverageTemplateDataSource Type = "AverageTemplateDataSource"

	// TypeAraNisslDataSource refines ImageDataSource for the ARA Nissl
	// stain volumes.
	TypeAraNisslDataSource Type = "AraNisslDataSource"

	// TypeStructure marks an anatomical structure.
	TypeStructure Type = "Structure"

	// TypeGroup marks a node aggregating member nodes. A structure that
	// aggregates its ontology children carries both Structure and Group.
	TypeGroup Type = "Group"

	// TypeShape marks the embedded shape record of a structure node.
	TypeShape Type = "Shape"
)

// MIME types used by atlas data sources.
const (
	// MimeOBJ is used for Wavefront OBJ meshes, which are plain text.
	MimeOBJ = "text/plain"

	// MimeNRRD is used for NRRD volumes.
	MimeNRRD = "application/octet-stream"
)

// FormatVersion is the atlas document format tag emitted in the header.
const FormatVersion = "0.9"
