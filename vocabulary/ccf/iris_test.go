package ccf

import "testing"

// Downstream viewers match these identifiers byte-for-byte; a formatting
// change here silently orphans every cross-reference in existing
// documents.
func TestIdentifierScheme(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{MeshDataSourceID(997), "#mesh_ds_997"},
		{MaskDataSourceID(25, 997), "#mask_ds_25_997"},
		{StructureID(997), "#structure_997"},
		{GroupID(8), "#group_8"},
		{AverageTemplateDataSourceID(10), "#average_template_ds_10"},
		{AraNisslDataSourceID(100), "#ara_nissl_ds_100"},
		{MeshSource(997), "997.obj"},
		{MaskSource(50, 8), "structure_masks_50/structure_8.nrrd"},
		{AverageTemplateSource(25), "average_template_25.nrrd"},
		{AraNisslSource(10), "ara_nissl_10.nrrd"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}

func TestDefaultEndpointsDerivation(t *testing.T) {
	if DefaultMeshBaseURL != DefaultAnnotationBaseURL+"structure_meshes/" {
		t.Errorf("mesh base not under the annotation root: %q", DefaultMeshBaseURL)
	}
	if DefaultMaskBaseURL != DefaultAnnotationBaseURL+"structure_masks/" {
		t.Errorf("mask base not under the annotation root: %q", DefaultMaskBaseURL)
	}
}
