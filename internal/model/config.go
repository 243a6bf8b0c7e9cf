package model

import "time"

// Config is the complete runtime configuration
type Config struct {
	Input    InputConfig    `mapstructure:"input" yaml:"input"`
	Analysis AnalysisConfig `mapstructure:"analysis" yaml:"analysis"`
	Graph    GraphConfig    `mapstructure:"graph" yaml:"graph"`
	Routing  RoutingConfig  `mapstructure:"routing" yaml:"routing"`
	Import   ImportConfig   `mapstructure:"import" yaml:"import"`
	Output   OutputConfig   `mapstructure:"output" yaml:"output"`
}

// InputConfig describes the recipe source file
type InputConfig struct {
	File string `mapstructure:"file" yaml:"file"`
}

// AnalysisConfig configures the analysis engine
type AnalysisConfig struct {
	SimilarityThreshold float64 `mapstructure:"similarity_threshold" yaml:"similarity_threshold"`
}

// GraphConfig configures authentication and the Microsoft Graph client
type GraphConfig struct {
	ClientID string `mapstructure:"client_id" yaml:"client_id"`
	TenantID string `mapstructure:"tenant_id" yaml:"tenant_id"`
	// Authority optionally overrides TenantID for sign-in, e.g. "consumers",
	// "organizations" or "common" for personal Microsoft accounts.
	Authority string        `mapstructure:"authority" yaml:"authority"`
	Notebook  string        `mapstructure:"notebook" yaml:"notebook"`
	Section   string        `mapstructure:"section" yaml:"section"` // default section when no category matches
	BaseURL   string        `mapstructure:"base_url" yaml:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout" yaml:"timeout"`
	// RequestsPerSecond throttles page creation to stay below Graph 429 limits
	RequestsPerSecond float64 `mapstructure:"requests_per_second" yaml:"requests_per_second"`
	Burst             int     `mapstructure:"burst" yaml:"burst"`
}

// RoutingConfig configures category-to-section routing
type RoutingConfig struct {
	// Mapping is an inline category mapping, either JSON
	// ({"asiatisch":"International"}) or "key=Value; key2=Value2" pairs.
	Mapping string `mapstructure:"mapping" yaml:"mapping"`
	// MappingFile points to a YAML or JSON file with the same content.
	MappingFile string `mapstructure:"mapping_file" yaml:"mapping_file"`
	Separator   string `mapstructure:"separator" yaml:"separator"`
	// SubcategoryPrefix prepends "[Sub] " to page titles when the category
	// carries a subcategory part.
	SubcategoryPrefix bool `mapstructure:"subcategory_prefix" yaml:"subcategory_prefix"`
}

// ImportConfig configures the import run
type ImportConfig struct {
	DryRun         bool `mapstructure:"dry_run" yaml:"dry_run"`
	SkipDuplicates bool `mapstructure:"skip_duplicates" yaml:"skip_duplicates"`
	SkipUnfit      bool `mapstructure:"skip_unfit" yaml:"skip_unfit"`
	Workers        int  `mapstructure:"workers" yaml:"workers"`
}

// OutputConfig controls logging and reports
type OutputConfig struct {
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	Verbose  bool   `mapstructure:"verbose" yaml:"verbose"`
	JSON     string `mapstructure:"json" yaml:"json"` // analysis report path
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			SimilarityThreshold: 0.35,
		},
		Graph: GraphConfig{
			BaseURL:           "https://graph.microsoft.com/v1.0",
			Timeout:           30 * time.Second,
			RequestsPerSecond: 2.5,
			Burst:             1,
		},
		Routing: RoutingConfig{
			Separator: "/",
		},
		Import: ImportConfig{
			SkipDuplicates: true,
			Workers:        2,
		},
		Output: OutputConfig{
			LogLevel: "info",
			JSON:     "report.json",
		},
	}
}
