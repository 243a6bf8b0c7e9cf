package pipeline

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/izebair/Rezepte/internal/model"
)

// Renderer writes analysis reports
type Renderer struct{}

// NewRenderer creates a renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderJSON writes the report as indented JSON
func (r *Renderer) RenderJSON(report *model.BatchReport, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderSummary prints a short batch summary to stderr
func (r *Renderer) RenderSummary(report *model.BatchReport) {
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Rezepte:            %d\n", report.Summary.Count)
	fmt.Fprintf(os.Stderr, "  Ø Quality Score:    %.1f/100\n", report.Summary.AverageQualityScore)
	fmt.Fprintf(os.Stderr, "  Issues:             %d\n", report.Summary.TotalIssues)
	fmt.Fprintf(os.Stderr, "  Warnings:           %d\n", report.Summary.TotalWarnings)
	fmt.Fprintf(os.Stderr, "  Ähnliche Paare:     %d (Schwelle %.2f)\n", report.Summary.SimilarCandidates, report.SimilarityThreshold)
	for _, c := range report.SimilarCandidates {
		fmt.Fprintf(os.Stderr, "    ~ %q / %q (%.3f)\n", c.TitleA, c.TitleB, c.Similarity)
	}
	fmt.Fprintf(os.Stderr, "\n")
}
