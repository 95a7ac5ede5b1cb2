package main

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/c360studio/atlasgraph/atlas"
	"github.com/c360studio/atlasgraph/config"
	"github.com/c360studio/atlasgraph/export"
	"github.com/c360studio/atlasgraph/source/fetch"
	"github.com/c360studio/atlasgraph/source/meshindex"
	"github.com/c360studio/atlasgraph/source/ontology"
)

// App wires the build pipeline together: fetch both inputs, load and link
// the ontology, discover mesh IDs, build the document, serialize it.
type App struct {
	cfg     *config.Config
	logger  *slog.Logger
	fetcher *fetch.Fetcher
}

// NewApp creates a new application instance.
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		cfg:     cfg,
		logger:  logger,
		fetcher: fetch.NewFetcher(cfg.Fetch.Timeout, cfg.Fetch.UserAgent, cfg.Fetch.MaxContentSize),
	}
}

// Run executes one build. ontologyPath and meshListingPath, when
// non-empty, read that input from a local file instead of the network.
// The run either completes and writes the whole document, or fails.
func (a *App) Run(ctx context.Context, ontologyPath, meshListingPath string) error {
	logger := a.logger.With(slog.String("run_id", uuid.New().String()))

	ontologyData, err := a.readInput(ctx, logger, "ontology", ontologyPath, a.cfg.Endpoints.OntologyQueryURL)
	if err != nil {
		return err
	}
	mapping, err := ontology.Load(bytes.NewReader(ontologyData))
	if err != nil {
		return fmt.Errorf("load ontology: %w", err)
	}
	if err := ontology.Link(mapping); err != nil {
		return fmt.Errorf("link ontology: %w", err)
	}
	logger.Info("Loaded ontology", slog.Int("entries", len(mapping)))

	listing, err := a.readInput(ctx, logger, "mesh listing", meshListingPath, a.cfg.Endpoints.MeshBaseURL)
	if err != nil {
		return err
	}
	meshIDs, err := meshindex.Scan(bytes.NewReader(listing))
	if err != nil {
		return fmt.Errorf("scan mesh listing: %w", err)
	}
	logger.Info("Discovered meshes", slog.Int("count", len(meshIDs)))

	builder := atlas.NewBuilder(a.cfg.BuilderSettings(), logger)
	doc, err := builder.Build(mapping, meshIDs)
	if err != nil {
		return fmt.Errorf("build atlas: %w", err)
	}
	logger.Info("Built atlas document", slog.Int("nodes", len(doc)))

	writer, err := export.NewWriter(export.FormatJSON, a.cfg.Output.Indent)
	if err != nil {
		return err
	}

	out := os.Stdout
	if a.cfg.Output.Path != "" {
		f, err := os.Create(a.cfg.Output.Path)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := writer.Write(out, doc); err != nil {
		return fmt.Errorf("write atlas: %w", err)
	}
	return nil
}

// readInput returns the named input's bytes, from a local file when path
// is set, otherwise fetched from url.
func (a *App) readInput(ctx context.Context, logger *slog.Logger, name, path, url string) ([]byte, error) {
	if path != "" {
		logger.Debug("Reading input from file", slog.String("input", name), slog.String("path", path))
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		return data, nil
	}

	logger.Debug("Fetching input", slog.String("input", name), slog.String("url", url))
	data, err := a.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", name, err)
	}
	return data, nil
}
