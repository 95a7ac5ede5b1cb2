// Package main provides the atlasgraph binary entry point.
// Atlasgraph builds the Allen Mouse Brain CCF atlas document by combining
// the structure ontology feed with the mesh download directory listing.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/c360studio/atlasgraph/config"
)

const appName = "atlasgraph"

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath  string
		logLevel    string
		outputPath  string
		groups      bool
		ontologyIn  string
		meshListing string
	)

	cmd := &cobra.Command{
		Use:   "atlasgraph",
		Short: "Allen Mouse CCF atlas document builder",
		Long: `Atlasgraph builds a knowledge-graph document for the Allen Mouse Brain
Common Coordinate Framework.

It fetches the structure ontology CSV and the mesh download directory
listing, links the structure hierarchy, discovers which structures have a
3D mesh, and emits the cross-referenced node document (base URLs, data
sources, structures, reference volumes) as pretty-printed JSON on stdout.

The document goes to stdout; logs go to stderr. Either input can be read
from a local file instead of the network for offline runs.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), buildOptions{
				configPath:  configPath,
				logLevel:    logLevel,
				outputPath:  outputPath,
				groups:      groups,
				ontologyIn:  ontologyIn,
				meshListing: meshListing,
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the document to a file instead of stdout")
	cmd.Flags().BoolVar(&groups, "groups", false, "Emit hierarchical Group nodes")
	cmd.Flags().StringVar(&ontologyIn, "ontology-file", "", "Read the ontology CSV from a local file instead of the API")
	cmd.Flags().StringVar(&meshListing, "mesh-listing", "", "Read the mesh directory listing from a local file instead of the archive")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", appName, config.Version)
		},
	})

	return cmd
}

// buildOptions carries the root command flags into run.
type buildOptions struct {
	configPath  string
	logLevel    string
	outputPath  string
	groups      bool
	ontologyIn  string
	meshListing string
}

func run(ctx context.Context, opts buildOptions) error {
	logger := newLogger(opts.logLevel)
	slog.SetDefault(logger)

	loader := config.NewLoader(logger)
	cfg, err := loader.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Flags win over config files.
	if opts.outputPath != "" {
		cfg.Output.Path = opts.outputPath
	}
	if opts.groups {
		cfg.Groups.Enabled = true
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := NewApp(cfg, logger)
	return app.Run(ctx, opts.ontologyIn, opts.meshListing)
}

// newLogger builds the stderr logger. The document owns stdout.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
