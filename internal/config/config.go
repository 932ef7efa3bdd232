package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CatalogFormatVersion is the format version stamped into every catalog
// index produced by this tool. It is a property of the build tool, not of
// any input file.
const CatalogFormatVersion = "0.1.0"

// Default path layout. A missing configuration file yields exactly these
// values, so a zero-config run behaves like the historical build script.
const (
	DefaultProjectTypesDir = "project_types"
	DefaultSchemaDir       = "schemas"
	DefaultDistDir         = "dist"
)

// Config represents the application configuration
type Config struct {
	Paths   PathsConfig   `yaml:"paths"`
	Site    SiteConfig    `yaml:"site"`
	History HistoryConfig `yaml:"history"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// PathsConfig locates the input roots and the output directory.
type PathsConfig struct {
	ProjectTypes string `yaml:"project_types,omitempty"`
	Schemas      string `yaml:"schemas,omitempty"`
	Dist         string `yaml:"dist,omitempty"`
}

// SiteConfig carries presentation settings for the generated pages.
type SiteConfig struct {
	Title       string `yaml:"title,omitempty"`
	Description string `yaml:"description,omitempty"`
	BaseURL     string `yaml:"base_url,omitempty"`
	RepoURL     string `yaml:"repo_url,omitempty"`
}

// HistoryConfig controls the build history store.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path,omitempty"`
}

// MetricsConfig controls the Prometheus textfile export.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	File    string `yaml:"file,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from the specified file. The file is optional:
// if it does not exist, defaults are returned. Environment variables in
// the YAML content are expanded, and .env files are loaded first.
func Load(configPath string) (*Config, error) {
	loadEnvFile()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expandedData), &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Paths.ProjectTypes == "" {
		c.Paths.ProjectTypes = DefaultProjectTypesDir
	}
	if c.Paths.Schemas == "" {
		c.Paths.Schemas = DefaultSchemaDir
	}
	if c.Paths.Dist == "" {
		c.Paths.Dist = DefaultDistDir
	}
	if c.Site.Title == "" {
		c.Site.Title = "OpenInstructions - Structured Instructions for LLMs"
	}
	if c.Site.Description == "" {
		c.Site.Description = "A public catalog of structured, versioned instructions for Large Language Models"
	}
	if c.Site.BaseURL == "" {
		c.Site.BaseURL = "https://openinstructions.org"
	}
	if c.Site.RepoURL == "" {
		c.Site.RepoURL = "https://github.com/OpenInstructions/catalog"
	}
	if c.History.Path == "" {
		c.History.Path = "catalogbuild-history.db"
	}
	if c.Metrics.File == "" {
		c.Metrics.File = "metrics.prom"
	}
}
