package analyze

import (
	"testing"

	"github.com/izebair/Rezepte/internal/model"
)

func TestJaccard_HalfOverlap(t *testing.T) {
	a := map[string]struct{}{"a": {}, "b": {}, "c": {}}
	b := map[string]struct{}{"a": {}, "b": {}, "d": {}}

	sim := jaccard(a, b)
	if sim != 0.5 {
		t.Errorf("Expected 0.5, got %v", sim)
	}
}

func TestJaccard_EmptySets(t *testing.T) {
	full := map[string]struct{}{"a": {}}
	if sim := jaccard(map[string]struct{}{}, full); sim != 0 {
		t.Errorf("Expected 0 for empty left set, got %v", sim)
	}
	if sim := jaccard(full, map[string]struct{}{}); sim != 0 {
		t.Errorf("Expected 0 for empty right set, got %v", sim)
	}
}

func TestPairwiseSimilarity_ThresholdCut(t *testing.T) {
	analyzer := NewAnalyzer()

	recipes := []model.Recipe{
		{Title: "Brokkoli Quinoa Mandel"},
		{Title: "Brokkoli Quinoa Cashew"},
	}
	// {brokkoli, quinoa, mandel} vs {brokkoli, quinoa, cashew}: 2/4 = 0.5

	if got := analyzer.PairwiseSimilarity(recipes, 0.45); len(got) != 1 {
		t.Fatalf("Expected 1 candidate at 0.45, got %d", len(got))
	}
	if got := analyzer.PairwiseSimilarity(recipes, 0.5); len(got) != 1 {
		t.Errorf("Expected the exact-threshold pair included at 0.5, got %d", len(got))
	}
	if got := analyzer.PairwiseSimilarity(recipes, 0.55); len(got) != 0 {
		t.Errorf("Expected no candidates at 0.55, got %d", len(got))
	}
}

func TestPairwiseSimilarity_SynonymsBridgeSpelling(t *testing.T) {
	analyzer := NewAnalyzer()

	recipes := []model.Recipe{
		{Title: "Spaghetti Napoli", Ingredients: []string{"500 g Spaghetti", "Tomatensauce", "Knoblauch"}},
		{Title: "Nudeln mit Tomatensosse", Ingredients: []string{"Nudeln", "Tomatensosse", "Kräuter"}},
	}

	got := analyzer.PairwiseSimilarity(recipes, 0.35)
	if len(got) != 1 {
		t.Fatalf("Expected the Napoli pair to be flagged, got %d candidates", len(got))
	}
	c := got[0]
	if c.IndexA != 0 || c.IndexB != 1 {
		t.Errorf("Expected indexes 0/1, got %d/%d", c.IndexA, c.IndexB)
	}
	if c.TitleA != "Spaghetti Napoli" || c.TitleB != "Nudeln mit Tomatensosse" {
		t.Errorf("Expected original titles preserved, got %q / %q", c.TitleA, c.TitleB)
	}
	if c.Similarity < 0.35 || c.Similarity > 1 {
		t.Errorf("Similarity out of range: %v", c.Similarity)
	}
}

func TestPairwiseSimilarity_OrderedPairs(t *testing.T) {
	analyzer := NewAnalyzer()

	recipes := []model.Recipe{
		{Title: "Brokkoli Quinoa Mandel"},
		{Title: "Brokkoli Quinoa Mandel"},
		{Title: "Brokkoli Quinoa Mandel"},
	}

	got := analyzer.PairwiseSimilarity(recipes, 0.9)
	if len(got) != 3 {
		t.Fatalf("Expected 3 identical pairs, got %d", len(got))
	}
	want := [][2]int{{0, 1}, {0, 2}, {1, 2}}
	for i, pair := range want {
		if got[i].IndexA != pair[0] || got[i].IndexB != pair[1] {
			t.Errorf("Pair %d: expected %v, got %d/%d", i, pair, got[i].IndexA, got[i].IndexB)
		}
		if got[i].Similarity != 1 {
			t.Errorf("Pair %d: expected similarity 1, got %v", i, got[i].Similarity)
		}
	}
}

func TestAnalyzeBatch_Summary(t *testing.T) {
	analyzer := NewAnalyzer()

	recipes := []model.Recipe{
		{Title: "Haferfrühstück", Category: "Frühstück", Ingredients: []string{"80 g Haferflocken", "100 g Beeren"}, Steps: []string{"Mischen"}},
		{},
	}

	report := analyzer.AnalyzeBatch(recipes, 0.35)

	if report.Summary.Count != 2 {
		t.Errorf("Expected count 2, got %d", report.Summary.Count)
	}
	// Scores 100 and 33 -> average 66.5
	if report.Summary.AverageQualityScore != 66.5 {
		t.Errorf("Expected average 66.5, got %v", report.Summary.AverageQualityScore)
	}
	if report.Summary.TotalIssues != 3 {
		t.Errorf("Expected 3 total issues, got %d", report.Summary.TotalIssues)
	}
	if report.Summary.TotalWarnings != 1 {
		t.Errorf("Expected 1 total warning, got %d", report.Summary.TotalWarnings)
	}
	if report.SimilarityThreshold != 0.35 {
		t.Errorf("Expected threshold echoed, got %v", report.SimilarityThreshold)
	}
	if len(report.Items) != 2 {
		t.Errorf("Expected 2 items, got %d", len(report.Items))
	}
	if report.Summary.SimilarCandidates != len(report.SimilarCandidates) {
		t.Errorf("Candidate count mismatch: summary %d, list %d",
			report.Summary.SimilarCandidates, len(report.SimilarCandidates))
	}
}

func TestAnalyzeBatch_Empty(t *testing.T) {
	analyzer := NewAnalyzer()

	report := analyzer.AnalyzeBatch(nil, 0.35)

	if report.Summary.Count != 0 {
		t.Errorf("Expected count 0, got %d", report.Summary.Count)
	}
	if report.Summary.AverageQualityScore != 0.0 {
		t.Errorf("Expected average 0.0, got %v", report.Summary.AverageQualityScore)
	}
	if report.Items == nil || report.SimilarCandidates == nil {
		t.Errorf("Expected empty non-nil slices in the degenerate report")
	}
}
