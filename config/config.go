// Package config provides configuration loading and management for
// atlasgraph.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/c360studio/atlasgraph/atlas"
	"github.com/c360studio/atlasgraph/vocabulary/ccf"
)

// validate is a singleton validator instance.
var validate = validator.New()

// Config is the complete atlasgraph configuration.
type Config struct {
	Endpoints   EndpointsConfig `yaml:"endpoints"`
	Atlas       AtlasConfig     `yaml:"atlas"`
	Resolutions []int           `yaml:"resolutions" validate:"required,min=1,dive,gt=0"`
	Groups      GroupsConfig    `yaml:"groups"`
	Fetch       FetchConfig     `yaml:"fetch"`
	Output      OutputConfig    `yaml:"output"`
}

// EndpointsConfig holds the remote endpoints the build reads from and the
// base URLs the emitted document points at. All are overridable so tests
// and mirrors can inject their own.
type EndpointsConfig struct {
	// OntologyQueryURL returns the structure ontology as CSV.
	OntologyQueryURL string `yaml:"ontology_query_url" validate:"required,url"`
	// MeshBaseURL serves structure meshes; its directory listing is the
	// mesh discovery source.
	MeshBaseURL string `yaml:"mesh_base_url" validate:"required,url"`
	// MaskBaseURL serves structure voxel masks.
	MaskBaseURL string `yaml:"mask_base_url" validate:"required,url"`
	// DownloadBaseURL is the annotation root that mask paths resolve
	// against.
	DownloadBaseURL string `yaml:"download_base_url" validate:"required,url"`
	// AverageTemplateBaseURL serves the average template volumes.
	AverageTemplateBaseURL string `yaml:"average_template_base_url" validate:"required,url"`
	// AraNisslBaseURL serves the ARA Nissl volumes.
	AraNisslBaseURL string `yaml:"ara_nissl_base_url" validate:"required,url"`
}

// AtlasConfig holds document-level metadata.
type AtlasConfig struct {
	// RootStructureID is the ontology ID the header declares as the
	// document root. 997 is the whole-brain root.
	RootStructureID int `yaml:"root_structure_id" validate:"gt=0"`
	// Name is the document display name.
	Name string `yaml:"name" validate:"required"`
	// About lists reference links included in the header annotation.
	About []string `yaml:"about"`
}

// GroupsConfig controls the hierarchical group rollup.
type GroupsConfig struct {
	// Enabled turns on Group node emission. Off by default; viewers do
	// not currently use groups.
	Enabled bool `yaml:"enabled"`
}

// FetchConfig controls the HTTP fetcher.
type FetchConfig struct {
	// Timeout is the per-request timeout.
	Timeout time.Duration `yaml:"timeout" validate:"gt=0"`
	// UserAgent is sent on every request.
	UserAgent string `yaml:"user_agent" validate:"required"`
	// MaxContentSize caps each response body, in bytes.
	MaxContentSize int64 `yaml:"max_content_size" validate:"gt=0"`
}

// UnmarshalYAML decodes the fetch section, accepting human-readable
// durations ("30s", "2m") for the timeout. Absent keys keep the values
// already present, so defaults survive partial config files.
func (f *FetchConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Timeout        string `yaml:"timeout"`
		UserAgent      string `yaml:"user_agent"`
		MaxContentSize int64  `yaml:"max_content_size"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.Timeout != "" {
		d, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return fmt.Errorf("fetch.timeout: %w", err)
		}
		f.Timeout = d
	}
	if raw.UserAgent != "" {
		f.UserAgent = raw.UserAgent
	}
	if raw.MaxContentSize != 0 {
		f.MaxContentSize = raw.MaxContentSize
	}
	return nil
}

// MarshalYAML emits the timeout in the same human-readable form
// UnmarshalYAML accepts.
func (f FetchConfig) MarshalYAML() (any, error) {
	return struct {
		Timeout        string `yaml:"timeout"`
		UserAgent      string `yaml:"user_agent"`
		MaxContentSize int64  `yaml:"max_content_size"`
	}{f.Timeout.String(), f.UserAgent, f.MaxContentSize}, nil
}

// OutputConfig controls document serialization.
type OutputConfig struct {
	// Indent is the pretty-print indent width.
	Indent int `yaml:"indent" validate:"gt=0"`
	// Path is the output file; empty means stdout.
	Path string `yaml:"path"`
}

// DefaultConfig returns a Config targeting the Allen 2017 CCF release.
func DefaultConfig() *Config {
	return &Config{
		Endpoints: EndpointsConfig{
			OntologyQueryURL:       ccf.DefaultOntologyQueryURL,
			MeshBaseURL:            ccf.DefaultMeshBaseURL,
			MaskBaseURL:            ccf.DefaultMaskBaseURL,
			DownloadBaseURL:        ccf.DefaultAnnotationBaseURL,
			AverageTemplateBaseURL: ccf.DefaultAverageTemplateBaseURL,
			AraNisslBaseURL:        ccf.DefaultAraNisslBaseURL,
		},
		Atlas: AtlasConfig{
			RootStructureID: 997,
			Name:            "Allen Mouse CCF Atlas",
			About: []string{
				"http://help.brain-map.org/display/mousebrain/",
				"http://help.brain-map.org/display/mousebrain/API",
				"http://portal.brain-map.org/",
			},
		},
		Resolutions: []int{10, 25, 50, 100},
		Groups:      GroupsConfig{Enabled: false},
		Fetch: FetchConfig{
			Timeout:        2 * time.Minute,
			UserAgent:      "atlasgraph/" + Version,
			MaxContentSize: 32 << 20, // directory listings and the ontology CSV are small
		},
		Output: OutputConfig{Indent: 2},
	}
}

// Version is the atlasgraph release version.
const Version = "0.1.0"

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	seen := make(map[int]struct{}, len(c.Resolutions))
	for _, r := range c.Resolutions {
		if _, ok := seen[r]; ok {
			return fmt.Errorf("resolutions: duplicate resolution %d", r)
		}
		seen[r] = struct{}{}
	}
	return nil
}

// formatValidationError turns validator's error into a readable message.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q constraint", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// LoadFromFile loads configuration from a YAML file, over defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one; other takes precedence for
// non-zero values.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Endpoints
	if other.Endpoints.OntologyQueryURL != "" {
		c.Endpoints.OntologyQueryURL = other.Endpoints.OntologyQueryURL
	}
	if other.Endpoints.MeshBaseURL != "" {
		c.Endpoints.MeshBaseURL = other.Endpoints.MeshBaseURL
	}
	if other.Endpoints.MaskBaseURL != "" {
		c.Endpoints.MaskBaseURL = other.Endpoints.MaskBaseURL
	}
	if other.Endpoints.DownloadBaseURL != "" {
		c.Endpoints.DownloadBaseURL = other.Endpoints.DownloadBaseURL
	}
	if other.Endpoints.AverageTemplateBaseURL != "" {
		c.Endpoints.AverageTemplateBaseURL = other.Endpoints.AverageTemplateBaseURL
	}
	if other.Endpoints.AraNisslBaseURL != "" {
		c.Endpoints.AraNisslBaseURL = other.Endpoints.AraNisslBaseURL
	}

	// Atlas
	if other.Atlas.RootStructureID != 0 {
		c.Atlas.RootStructureID = other.Atlas.RootStructureID
	}
	if other.Atlas.Name != "" {
		c.Atlas.Name = other.Atlas.Name
	}
	if len(other.Atlas.About) > 0 {
		c.Atlas.About = other.Atlas.About
	}

	if len(other.Resolutions) > 0 {
		c.Resolutions = other.Resolutions
	}

	if other.Groups.Enabled {
		c.Groups.Enabled = true
	}

	// Fetch
	if other.Fetch.Timeout != 0 {
		c.Fetch.Timeout = other.Fetch.Timeout
	}
	if other.Fetch.UserAgent != "" {
		c.Fetch.UserAgent = other.Fetch.UserAgent
	}
	if other.Fetch.MaxContentSize != 0 {
		c.Fetch.MaxContentSize = other.Fetch.MaxContentSize
	}

	// Output
	if other.Output.Indent != 0 {
		c.Output.Indent = other.Output.Indent
	}
	if other.Output.Path != "" {
		c.Output.Path = other.Output.Path
	}
}

// BuilderSettings derives the atlas builder settings from the config.
func (c *Config) BuilderSettings() atlas.Settings {
	return atlas.Settings{
		MeshBaseURL:            c.Endpoints.MeshBaseURL,
		MaskBaseURL:            c.Endpoints.MaskBaseURL,
		DownloadBaseURL:        c.Endpoints.DownloadBaseURL,
		AverageTemplateBaseURL: c.Endpoints.AverageTemplateBaseURL,
		AraNisslBaseURL:        c.Endpoints.AraNisslBaseURL,
		Resolutions:            c.Resolutions,
		RootStructureID:        c.Atlas.RootStructureID,
		DocumentName:           c.Atlas.Name,
		About:                  c.Atlas.About,
		EnableGroups:           c.Groups.Enabled,
	}
}
