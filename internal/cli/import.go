package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/izebair/Rezepte/internal/graph"
	"github.com/izebair/Rezepte/internal/logging"
	"github.com/izebair/Rezepte/internal/model"
	"github.com/izebair/Rezepte/internal/pipeline"
	"github.com/izebair/Rezepte/internal/route"
	"github.com/izebair/Rezepte/internal/worker"
)

var (
	importDryRun    bool
	importSectionID string
	importNotebook  string
	importSection   string
	importMapping   string
	importMapFile   string
	importSeparator string
	importSubPrefix bool
	importSkipDup   bool
	importSkipUnfit bool
	importWorkers   int
	importRPS       float64
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import recipes from a text file as OneNote pages",
	Long: `Import parses a recipe file, analyzes the batch and creates one
OneNote page per recipe via Microsoft Graph (device code sign-in).

Pages are routed into sections by recipe category: the category is split
on the separator, mapped through the category mapping and falls back to
the default section. Recipes flagged by the skip policy (structural
issues, likely duplicates) are left out.

Example:
  rezepte import rezepte.txt --dry-run
  rezepte import --mapping '{"asiatisch":"International"}' --sub-prefix
  rezepte import rezepte.txt --section-id 1-abc123`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "parse and analyze only, no Graph calls")
	importCmd.Flags().StringVar(&importSectionID, "section-id", "", "explicit OneNote section ID (bypasses routing)")
	importCmd.Flags().StringVar(&importNotebook, "notebook", "", "target notebook name")
	importCmd.Flags().StringVar(&importSection, "section", "", "default section when no category matches")
	importCmd.Flags().StringVar(&importMapping, "mapping", "", `inline category mapping (JSON or "k=V; k2=V2")`)
	importCmd.Flags().StringVar(&importMapFile, "mapping-file", "", "category mapping file (YAML or JSON)")
	importCmd.Flags().StringVar(&importSeparator, "separator", "", "category separator (default: /)")
	importCmd.Flags().BoolVar(&importSubPrefix, "sub-prefix", false, "prefix page titles with [Subcategory]")
	importCmd.Flags().BoolVar(&importSkipDup, "skip-duplicates", true, "skip likely duplicates found by the similarity pass")
	importCmd.Flags().BoolVar(&importSkipUnfit, "skip-unfit", false, "skip recipes with structural issues")
	importCmd.Flags().IntVar(&importWorkers, "workers", 0, "concurrent page publishers (default: 2)")
	importCmd.Flags().Float64Var(&importRPS, "rps", 0, "Graph requests per second (default: 2.5)")
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	applyImportFlags(cmd, cfg)

	file := cfg.Input.File
	if len(args) == 1 {
		file = args[0]
	}
	if file == "" {
		return fmt.Errorf("no input file: pass it as argument or set REZEPTE_INPUT_FILE")
	}
	if _, err := os.Stat(file); err != nil {
		return fmt.Errorf("input file not found: %s", file)
	}

	log, err := logging.New(cfg.Output.LogLevel, verbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := pipeline.New()
	recipes, report, err := p.AnalyzeFile(file, cfg.Analysis.SimilarityThreshold)
	if err != nil {
		return err
	}
	log.Info("input parsed",
		zap.String("file", file),
		zap.Int("rezepte", len(recipes)),
		zap.Int("similar_candidates", report.Summary.SimilarCandidates))

	mapping, err := buildMapping(cfg)
	if err != nil {
		return err
	}
	router := route.NewRouter(cfg.Graph.Section, mapping, cfg.Routing.Separator, cfg.Routing.SubcategoryPrefix)

	opts := pipeline.ImportOptions{
		Notebook:       cfg.Graph.Notebook,
		SectionID:      importSectionID,
		DryRun:         cfg.Import.DryRun,
		SkipDuplicates: cfg.Import.SkipDuplicates,
		SkipUnfit:      cfg.Import.SkipUnfit,
	}

	var notes pipeline.NoteService
	if !cfg.Import.DryRun {
		if err := validateGraphConfig(cfg); err != nil {
			return err
		}
		auth, err := graph.NewDeviceAuth(cfg.Graph.ClientID, cfg.Graph.TenantID, cfg.Graph.Authority)
		if err != nil {
			return err
		}
		limiter := worker.NewLimiter(cfg.Graph.RequestsPerSecond, cfg.Graph.Burst)
		client := graph.NewClient(cfg.Graph.BaseURL, cfg.Graph.Timeout, auth, limiter, log)

		// Validates the token before touching any notebook
		user, err := client.Me(ctx)
		if err != nil {
			return fmt.Errorf("sign-in failed: %w", err)
		}
		log.Info("signed in", zap.String("user", user))
		notes = client
	}

	importer := pipeline.NewImporter(notes, router, cfg.Import.Workers, log)
	results := importer.Run(ctx, recipes, report, opts)

	created, skipped, failed := 0, 0, 0
	for _, r := range results {
		switch {
		case r.Skipped != "":
			skipped++
		case r.Error != nil:
			failed++
		default:
			created++
		}
	}
	fmt.Fprintf(os.Stderr, "\n  Rezepte:   %d\n  Erstellt:  %d\n  Übersprungen: %d\n  Fehler:    %d\n\n",
		len(results), created, skipped, failed)

	if failed > 0 && created == 0 && !cfg.Import.DryRun {
		return fmt.Errorf("no pages created (%d failures)", failed)
	}
	return nil
}

func applyImportFlags(cmd *cobra.Command, cfg *model.Config) {
	cfg.Import.DryRun = importDryRun
	if cmd.Flags().Changed("skip-duplicates") {
		cfg.Import.SkipDuplicates = importSkipDup
	}
	if cmd.Flags().Changed("skip-unfit") {
		cfg.Import.SkipUnfit = importSkipUnfit
	}
	if importNotebook != "" {
		cfg.Graph.Notebook = importNotebook
	}
	if importSection != "" {
		cfg.Graph.Section = importSection
	}
	if importMapping != "" {
		cfg.Routing.Mapping = importMapping
	}
	if importMapFile != "" {
		cfg.Routing.MappingFile = importMapFile
	}
	if importSeparator != "" {
		cfg.Routing.Separator = importSeparator
	}
	if cmd.Flags().Changed("sub-prefix") {
		cfg.Routing.SubcategoryPrefix = importSubPrefix
	}
	if importWorkers > 0 {
		cfg.Import.Workers = importWorkers
	}
	if importRPS > 0 {
		cfg.Graph.RequestsPerSecond = importRPS
	}
}

// buildMapping resolves the category mapping: the inline form wins over
// the mapping file
func buildMapping(cfg *model.Config) (map[string]string, error) {
	if cfg.Routing.Mapping != "" {
		return route.ParseMapping(cfg.Routing.Mapping)
	}
	if cfg.Routing.MappingFile != "" {
		return route.LoadMappingFile(cfg.Routing.MappingFile)
	}
	return map[string]string{}, nil
}

func validateGraphConfig(cfg *model.Config) error {
	var missing []string
	if cfg.Graph.ClientID == "" {
		missing = append(missing, "REZEPTE_CLIENT_ID")
	}
	if cfg.Graph.TenantID == "" && cfg.Graph.Authority == "" {
		missing = append(missing, "REZEPTE_TENANT_ID")
	}
	if cfg.Graph.Section == "" && importSectionID == "" {
		missing = append(missing, "REZEPTE_SECTION")
	}
	if len(missing) > 0 {
		return fmt.Errorf("required configuration missing: %v", missing)
	}
	return nil
}
