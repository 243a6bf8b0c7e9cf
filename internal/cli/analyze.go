package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/izebair/Rezepte/internal/pipeline"
)

var (
	analyzeJSON      string
	analyzeThreshold float64
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Parse a recipe file and write a quality/similarity report",
	Long: `Analyze parses a recipe text file and evaluates every recipe:
- structural completeness (title, category, ingredients, steps)
- measurement coverage of the ingredient list
- rule-based health hints (risk flags, protective ingredients)
- pairwise similarity across the batch to surface duplicates

The full report is written as JSON; a summary goes to stderr.

Example:
  rezepte analyze rezepte.txt
  rezepte analyze rezepte.txt --json report.json --threshold 0.5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeJSON, "json", "", "output JSON path (default: report.json)")
	analyzeCmd.Flags().Float64Var(&analyzeThreshold, "threshold", 0, "similarity threshold (default: 0.35)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if analyzeJSON != "" {
		cfg.Output.JSON = analyzeJSON
	}
	if cmd.Flags().Changed("threshold") {
		cfg.Analysis.SimilarityThreshold = analyzeThreshold
	}

	file := cfg.Input.File
	if len(args) == 1 {
		file = args[0]
	}
	if file == "" {
		return fmt.Errorf("no input file: pass it as argument or set REZEPTE_INPUT_FILE")
	}

	p := pipeline.New()
	recipes, report, err := p.AnalyzeFile(file, cfg.Analysis.SimilarityThreshold)
	if err != nil {
		return err
	}

	if verbose {
		for _, r := range recipes {
			fmt.Fprintf(os.Stderr, "✓ %s — Kategorie=%q, %d Zutaten, %d Schritte\n",
				r.Title, r.Category, len(r.Ingredients), len(r.Steps))
		}
	}

	renderer := pipeline.NewRenderer()
	if err := renderer.RenderJSON(report, cfg.Output.JSON); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "✓ Report geschrieben: %s\n", cfg.Output.JSON)
	renderer.RenderSummary(report)
	return nil
}
