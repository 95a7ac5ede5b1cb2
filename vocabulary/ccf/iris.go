package ccf

import "fmt"

// Fixed node identifiers. These are referenced by "@id" from other nodes
// and must be preserved bit-for-bit.
const (
	// HeaderID identifies the document header node.
	HeaderID = "#__header__"

	// MeshBaseURLID identifies the base URL for structure meshes.
	MeshBaseURLID = "#mesh_base_url"

	// MaskBaseURLID identifies the base URL for structure voxel masks.
	MaskBaseURLID = "#mask_base_url"

	// DownloadBaseURLID identifies the annotation download root under
	// which mask paths are resolved.
	DownloadBaseURLID = "#mesh_download_url"

	// AverageTemplateBaseURLID identifies the base URL for average
	// template volumes.
	AverageTemplateBaseURLID = "#average_template_base_url"

	// AraNisslBaseURLID identifies the base URL for ARA Nissl volumes.
	AraNisslBaseURLID = "#ara_nissl_base_url"
)

// MeshDataSourceID returns the mesh data source ID for a structure.
func MeshDataSourceID(structureID int) string {
	return fmt.Sprintf("#mesh_ds_%d", structureID)
}

// MaskDataSourceID returns the voxel mask data source ID for a structure at
// a resolution in microns.
func MaskDataSourceID(resolution, structureID int) string {
	return fmt.Sprintf("#mask_ds_%d_%d", resolution, structureID)
}

// StructureID returns the structure node ID for an ontology structure.
func StructureID(structureID int) string {
	return fmt.Sprintf("#structure_%d", structureID)
}

// GroupID returns the group node ID for an ontology structure that exists
// only as a hierarchical rollup.
func GroupID(structureID int) string {
	return fmt.Sprintf("#group_%d", structureID)
}

// AverageTemplateDataSourceID returns the average template data source ID
// for a resolution in microns.
func AverageTemplateDataSourceID(resolution int) string {
	return fmt.Sprintf("#average_template_ds_%d", resolution)
}

// AraNisslDataSourceID returns the ARA Nissl data source ID for a
// resolution in microns.
func AraNisslDataSourceID(resolution int) string {
	return fmt.Sprintf("#ara_nissl_ds_%d", resolution)
}

// MeshSource returns the mesh file path for a structure, relative to the
// mesh base URL.
func MeshSource(structureID int) string {
	return fmt.Sprintf("%d.obj", structureID)
}

// MaskSource returns the voxel mask path for a structure at a resolution,
// relative to the annotation download root.
func MaskSource(resolution, structureID int) string {
	return fmt.Sprintf("structure_masks_%d/structure_%d.nrrd", resolution, structureID)
}

// AverageTemplateSource returns the average template volume path for a
// resolution, relative to the average template base URL.
func AverageTemplateSource(resolution int) string {
	return fmt.Sprintf("average_template_%d.nrrd", resolution)
}

// AraNisslSource returns the ARA Nissl volume path for a resolution,
// relative to the ARA Nissl base URL.
func AraNisslSource(resolution int) string {
	return fmt.Sprintf("ara_nissl_%d.nrrd", resolution)
}
