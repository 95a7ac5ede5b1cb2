package atlas

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/c360studio/atlasgraph/source/ontology"
	"github.com/c360studio/atlasgraph/vocabulary/ccf"
)

// ErrMissingRoot is returned when the configured root structure has no
// structure node in the document (i.e. no mesh was discovered for it).
var ErrMissingRoot = errors.New("root structure not in document")

// Settings is the immutable builder configuration. The builder takes all
// endpoints and document metadata from here; it has no package-level
// state, so tests can build against injected endpoints.
type Settings struct {
	MeshBaseURL            string
	MaskBaseURL            string
	DownloadBaseURL        string
	AverageTemplateBaseURL string
	AraNisslBaseURL        string

	// Resolutions are the voxel resolutions in microns, in emission
	// order.
	Resolutions []int

	// RootStructureID is the ontology ID of the document root. 997 is
	// the conventional whole-brain root.
	RootStructureID int

	DocumentName string
	About        []string

	// EnableGroups turns on the hierarchical group rollup.
	EnableGroups bool
}

// DefaultSettings returns builder settings for the Allen 2017 CCF release.
func DefaultSettings() Settings {
	return Settings{
		MeshBaseURL:            ccf.DefaultMeshBaseURL,
		MaskBaseURL:            ccf.DefaultMaskBaseURL,
		DownloadBaseURL:        ccf.DefaultAnnotationBaseURL,
		AverageTemplateBaseURL: ccf.DefaultAverageTemplateBaseURL,
		AraNisslBaseURL:        ccf.DefaultAraNisslBaseURL,
		Resolutions:            []int{10, 25, 50, 100},
		RootStructureID:        997,
		DocumentName:           "Allen Mouse CCF Atlas",
		About: []string{
			"http://help.brain-map.org/display/mousebrain/",
			"http://help.brain-map.org/display/mousebrain/API",
			"http://portal.brain-map.org/",
		},
	}
}

// Builder assembles atlas documents.
type Builder struct {
	settings Settings
	logger   *slog.Logger
}

// NewBuilder creates a builder. A nil logger falls back to slog.Default.
func NewBuilder(settings Settings, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{settings: settings, logger: logger}
}

// Build produces the atlas document for a linked ontology mapping and the
// set of mesh-bearing structure IDs. meshIDs may arrive in any order and
// with duplicates; emission is by ascending ID.
//
// Every mesh ID must resolve in the ontology, and the configured root
// structure must be among the mesh IDs. Either violation fails the build.
func (b *Builder) Build(mapping ontology.Mapping, meshIDs []int) (Document, error) {
	ids := dedupeSorted(meshIDs)

	b.logger.Debug("building atlas document",
		slog.Int("structures", len(ids)),
		slog.Int("resolutions", len(b.settings.Resolutions)))

	var nodes Document

	meshBase := &Node{ID: ccf.MeshBaseURLID, Types: NewTypeSet(ccf.TypeBaseURL), URL: b.settings.MeshBaseURL}
	maskBase := &Node{ID: ccf.MaskBaseURLID, Types: NewTypeSet(ccf.TypeBaseURL), URL: b.settings.MaskBaseURL}
	downloadBase := &Node{ID: ccf.DownloadBaseURLID, Types: NewTypeSet(ccf.TypeBaseURL), URL: b.settings.DownloadBaseURL}
	templateBase := &Node{ID: ccf.AverageTemplateBaseURLID, Types: NewTypeSet(ccf.TypeBaseURL), URL: b.settings.AverageTemplateBaseURL}
	nisslBase := &Node{ID: ccf.AraNisslBaseURLID, Types: NewTypeSet(ccf.TypeBaseURL), URL: b.settings.AraNisslBaseURL}
	nodes = append(nodes, meshBase, maskBase, downloadBase, templateBase, nisslBase)

	// Mesh data sources.
	for _, id := range ids {
		nodes = append(nodes, &Node{
			ID:       ccf.MeshDataSourceID(id),
			Types:    NewTypeSet(ccf.TypeDataSource, ccf.TypeGeometryDataSource, ccf.TypeTriangleMeshDataSource),
			BaseURL:  meshBase.ID,
			MimeType: ccf.MimeOBJ,
			Source:   ccf.MeshSource(id),
		})
	}

	// Voxel mask data sources, one per structure and resolution. Mask
	// paths resolve against the annotation download root, not the mask
	// base.
	for _, id := range ids {
		for _, res := range b.settings.Resolutions {
			nodes = append(nodes, &Node{
				ID:         ccf.MaskDataSourceID(res, id),
				Types:      NewTypeSet(ccf.TypeDataSource, ccf.TypeImageDataSource, ccf.TypeVoxelMaskDataSource),
				BaseURL:    downloadBase.ID,
				MimeType:   ccf.MimeNRRD,
				Source:     ccf.MaskSource(res, id),
				Annotation: &Annotation{SpatialResolutionMicrons: res},
			})
		}
	}

	// Structure nodes.
	structures := make(map[int]*Node, len(ids))
	for _, id := range ids {
		entry, err := mapping.Get(id)
		if err != nil {
			return nil, fmt.Errorf("structure for mesh %d: %w", id, err)
		}

		shape := &Shape{
			Type:       ccf.TypeShape,
			DataSource: []string{ccf.MeshDataSourceID(id)},
		}
		for _, res := range b.settings.Resolutions {
			shape.DataSource = append(shape.DataSource, ccf.MaskDataSourceID(res, id))
		}

		allenID := entry.ID
		s := &Node{
			ID:    ccf.StructureID(id),
			Types: NewTypeSet(ccf.TypeStructure),
			Style: &Style{Color: "#" + entry.ColorHexTriplet},
			Shape: shape,
			Annotation: &Annotation{
				Name:         entry.SafeName,
				Acronym:      entry.Acronym,
				AllenAtlasID: &allenID,
			},
		}
		structures[id] = s
		nodes = append(nodes, s)
	}

	if b.settings.EnableGroups {
		groups, err := b.rollupGroups(mapping, ids, structures)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, groups...)
	}

	// Reference image volumes.
	var templates []*Node
	for _, res := range b.settings.Resolutions {
		templates = append(templates, &Node{
			ID:         ccf.AverageTemplateDataSourceID(res),
			Types:      NewTypeSet(ccf.TypeDataSource, ccf.TypeImageDataSource, ccf.TypeAverageTemplateDataSource),
			BaseURL:    templateBase.ID,
			MimeType:   ccf.MimeNRRD,
			Source:     ccf.AverageTemplateSource(res),
			Annotation: &Annotation{SpatialResolutionMicrons: res},
		})
	}
	nodes = append(nodes, templates...)

	for _, res := range b.settings.Resolutions {
		nodes = append(nodes, &Node{
			ID:         ccf.AraNisslDataSourceID(res),
			Types:      NewTypeSet(ccf.TypeDataSource, ccf.TypeImageDataSource, ccf.TypeAraNisslDataSource),
			BaseURL:    nisslBase.ID,
			MimeType:   ccf.MimeNRRD,
			Source:     ccf.AraNisslSource(res),
			Annotation: &Annotation{SpatialResolutionMicrons: res},
		})
	}

	root, ok := structures[b.settings.RootStructureID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrMissingRoot, b.settings.RootStructureID)
	}

	backgrounds := make([]string, 0, len(templates))
	for _, t := range templates {
		backgrounds = append(backgrounds, t.ID)
	}

	header := &Node{
		ID:              ccf.HeaderID,
		Types:           NewTypeSet(ccf.TypeHeader),
		Root:            []string{root.ID},
		BackgroundImage: backgrounds,
		FormatVersion:   ccf.FormatVersion,
		Annotation: &Annotation{
			Name:  b.settings.DocumentName,
			About: b.settings.About,
		},
	}

	return append(Document{header}, nodes...), nil
}

// dedupeSorted returns the distinct values of ids in ascending order.
func dedupeSorted(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}
