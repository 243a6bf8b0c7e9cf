package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/izebair/Rezepte/internal/model"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "rezepte",
	Short: "Rezepte - parse recipe text files, analyze them and import into OneNote",
	Long: `Rezepte reads a free-form text file containing multiple recipes,
splits it into blocks, extracts structured fields (title, category,
ingredients, steps, portions, time, difficulty, images) and computes
per-recipe quality and health heuristics plus pairwise similarity.

Parsed recipes can be imported as OneNote pages via Microsoft Graph,
with category-based routing into notebook sections and configurable
duplicate/unfit skip policies.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("rezepte v0.3.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.rezepte/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("output.verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads the .env file, the config file and REZEPTE_* env vars
func initConfig() {
	// A .env next to the binary mirrors the classic setup; missing is fine
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home + "/.rezepte")
		}
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("REZEPTE")
	viper.AutomaticEnv()

	// Historical flat env names, kept for compatibility with existing setups
	_ = viper.BindEnv("graph.client_id", "REZEPTE_CLIENT_ID")
	_ = viper.BindEnv("graph.tenant_id", "REZEPTE_TENANT_ID")
	_ = viper.BindEnv("graph.authority", "REZEPTE_AUTHORITY")
	_ = viper.BindEnv("graph.notebook", "REZEPTE_NOTEBOOK")
	_ = viper.BindEnv("graph.section", "REZEPTE_SECTION")
	_ = viper.BindEnv("input.file", "REZEPTE_INPUT_FILE")
	_ = viper.BindEnv("output.log_level", "REZEPTE_LOG_LEVEL")
	_ = viper.BindEnv("routing.mapping", "REZEPTE_CATEGORY_MAPPING")
	_ = viper.BindEnv("routing.mapping_file", "REZEPTE_CATEGORY_MAPPING_FILE")
	_ = viper.BindEnv("routing.separator", "REZEPTE_CATEGORY_SEPARATOR")
	_ = viper.BindEnv("routing.subcategory_prefix", "REZEPTE_SUBCATEGORY_PREFIX")
	_ = viper.BindEnv("analysis.similarity_threshold", "REZEPTE_SIMILARITY_THRESHOLD")

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig merges defaults with config file and environment values
func loadConfig() *model.Config {
	cfg := model.DefaultConfig()

	if v := viper.GetString("graph.client_id"); v != "" {
		cfg.Graph.ClientID = v
	}
	if v := viper.GetString("graph.tenant_id"); v != "" {
		cfg.Graph.TenantID = v
	}
	if v := viper.GetString("graph.authority"); v != "" {
		cfg.Graph.Authority = v
	}
	if v := viper.GetString("graph.notebook"); v != "" {
		cfg.Graph.Notebook = v
	}
	if v := viper.GetString("graph.section"); v != "" {
		cfg.Graph.Section = v
	}
	if v := viper.GetString("graph.base_url"); v != "" {
		cfg.Graph.BaseURL = v
	}
	if viper.IsSet("graph.requests_per_second") {
		cfg.Graph.RequestsPerSecond = viper.GetFloat64("graph.requests_per_second")
	}
	if v := viper.GetString("input.file"); v != "" {
		cfg.Input.File = v
	}
	if v := viper.GetString("output.log_level"); v != "" {
		cfg.Output.LogLevel = v
	}
	if v := viper.GetString("routing.mapping"); v != "" {
		cfg.Routing.Mapping = v
	}
	if v := viper.GetString("routing.mapping_file"); v != "" {
		cfg.Routing.MappingFile = v
	}
	if v := viper.GetString("routing.separator"); v != "" {
		cfg.Routing.Separator = v
	}
	if viper.IsSet("routing.subcategory_prefix") {
		cfg.Routing.SubcategoryPrefix = viper.GetBool("routing.subcategory_prefix")
	}
	if viper.IsSet("analysis.similarity_threshold") {
		cfg.Analysis.SimilarityThreshold = viper.GetFloat64("analysis.similarity_threshold")
	}
	if viper.IsSet("import.workers") {
		cfg.Import.Workers = viper.GetInt("import.workers")
	}
	cfg.Output.Verbose = verbose

	return cfg
}
