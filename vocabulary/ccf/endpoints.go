package ccf

// Default Allen Institute endpoints for the 2017 CCF release.
const (
	// DefaultDownloadBaseURL is the informatics archive root for the
	// mouse CCF.
	DefaultDownloadBaseURL = "http://download.alleninstitute.org/informatics-archive/current-release/mouse_ccf/"

	// DefaultAverageTemplateBaseURL serves the average template volumes.
	DefaultAverageTemplateBaseURL = DefaultDownloadBaseURL + "average_template/"

	// DefaultAraNisslBaseURL serves the ARA Nissl stain volumes.
	DefaultAraNisslBaseURL = DefaultDownloadBaseURL + "ara_nissl/"

	// DefaultAnnotationBaseURL is the ccf_2017 annotation root; voxel
	// mask paths are relative to it.
	DefaultAnnotationBaseURL = DefaultDownloadBaseURL + "annotation/ccf_2017/"

	// DefaultMeshBaseURL serves the structure OBJ meshes. Its directory
	// listing is also the discovery source for which structures have a
	// mesh at all.
	DefaultMeshBaseURL = DefaultAnnotationBaseURL + "structure_meshes/"

	// DefaultMaskBaseURL serves the structure voxel masks.
	DefaultMaskBaseURL = DefaultAnnotationBaseURL + "structure_masks/"

	// DefaultOntologyQueryURL is the brain-map RMA query returning the
	// full adult mouse structure graph (ontology 1) as CSV.
	DefaultOntologyQueryURL = "http://api.brain-map.org/api/v2/data/query.csv?" +
		"criteria=model::Structure," +
		"rma::criteria,[ontology_id$eq1]," +
		"rma::options[order$eq%27structures.graph_order%27][num_rows$eqall]"
)
