package analyze

import (
	"math"

	"github.com/izebair/Rezepte/internal/model"
)

// AnalyzeBatch scores every recipe in input order, runs the similarity
// pass over the whole batch and assembles the report. An empty batch
// yields a well-defined degenerate report; one malformed recipe never
// prevents the rest from being analyzed.
func (a *Analyzer) AnalyzeBatch(recipes []model.Recipe, threshold float64) *model.BatchReport {
	items := make([]model.AnalysisItem, 0, len(recipes))
	totalScore := 0
	totalIssues := 0
	totalWarnings := 0

	for _, r := range recipes {
		item := a.Analyze(r)
		totalScore += item.QualityScore
		totalIssues += len(item.Issues)
		totalWarnings += len(item.Warnings)
		items = append(items, item)
	}

	avg := 0.0
	if len(items) > 0 {
		avg = math.Round(float64(totalScore)/float64(len(items))*10) / 10
	}

	candidates := a.PairwiseSimilarity(recipes, threshold)

	return &model.BatchReport{
		Summary: model.Summary{
			Count:               len(items),
			AverageQualityScore: avg,
			TotalIssues:         totalIssues,
			TotalWarnings:       totalWarnings,
			SimilarCandidates:   len(candidates),
		},
		SimilarityThreshold: threshold,
		SimilarCandidates:   candidates,
		Items:               items,
	}
}
