package analyze

import (
	"strings"
	"testing"

	"github.com/izebair/Rezepte/internal/model"
)

func TestAnalyze_CompleteRecipeScoresHigh(t *testing.T) {
	a := NewAnalyzer()

	item := a.Analyze(model.Recipe{
		Title:       "Haferfrühstück",
		Category:    "Frühstück",
		Ingredients: []string{"80 g Haferflocken", "100 g Beeren"},
		Steps:       []string{"Mischen"},
	})

	if len(item.Issues) != 0 {
		t.Errorf("Expected no issues, got %v", item.Issues)
	}
	// Hafer + Beeren are two protective hits: bonus applies
	if item.Health.ProtectiveHits < 2 {
		t.Errorf("Expected at least 2 protective hits, got %d", item.Health.ProtectiveHits)
	}
	if item.QualityScore != 100 {
		t.Errorf("Expected score capped at 100, got %d", item.QualityScore)
	}
	if item.Health.ProstateCancer != model.SuitabilityOK || item.Health.BreastCancer != model.SuitabilityOK {
		t.Errorf("Expected suitable labels, got %+v", item.Health)
	}
}

func TestAnalyze_MissingEverything(t *testing.T) {
	a := NewAnalyzer()

	item := a.Analyze(model.Recipe{})

	if len(item.Issues) != 3 {
		t.Fatalf("Expected 3 issues (title, ingredients, steps), got %v", item.Issues)
	}
	if len(item.Warnings) != 1 || item.Warnings[0] != "Kategorie fehlt" {
		t.Fatalf("Expected only the category warning, got %v", item.Warnings)
	}
	// 100 - 3*20 - 1*7 = 33
	if item.QualityScore != 33 {
		t.Errorf("Expected score 33, got %d", item.QualityScore)
	}
	if item.Title != model.UnknownTitle {
		t.Errorf("Expected sentinel title, got %q", item.Title)
	}
	if len(item.Suggestions) != 1 {
		t.Errorf("Expected exactly one suggestion, got %v", item.Suggestions)
	}
}

func TestAnalyze_UnknownTitleCountsAsMissing(t *testing.T) {
	a := NewAnalyzer()

	item := a.Analyze(model.Recipe{
		Title:       "unbekannt",
		Ingredients: []string{"Wasser"},
		Steps:       []string{"Kochen"},
	})

	found := false
	for _, iss := range item.Issues {
		if iss == "Titel fehlt oder ist unklar" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected title issue for sentinel title, got %v", item.Issues)
	}
}

func TestAnalyze_ProcessedMeatRisk(t *testing.T) {
	a := NewAnalyzer()

	item := a.Analyze(model.Recipe{
		Title:       "Carbonara",
		Category:    "Pasta",
		Ingredients: []string{"200 g Spaghetti", "Pancetta", "2 Eier"},
		Steps:       []string{"Kochen", "Mischen"},
	})

	if !hasFlag(item.Health.RiskFlags, model.RiskProcessedMeat) {
		t.Fatalf("Expected processed_meat flag, got %v", item.Health.RiskFlags)
	}
	warned := false
	for _, w := range item.Warnings {
		if strings.Contains(w, "Verarbeitetes Fleisch") {
			warned = true
		}
	}
	if !warned {
		t.Errorf("Expected processed meat warning, got %v", item.Warnings)
	}
	if item.Health.ProstateCancer != model.SuitabilityConditional {
		t.Errorf("Expected conditional prostate label, got %q", item.Health.ProstateCancer)
	}
	if item.Health.BreastCancer != model.SuitabilityConditional {
		t.Errorf("Expected conditional breast label, got %q", item.Health.BreastCancer)
	}
}

func TestAnalyze_HighSugarWarning(t *testing.T) {
	a := NewAnalyzer()

	item := a.Analyze(model.Recipe{
		Title:       "Sirupkuchen",
		Category:    "Kuchen",
		Ingredients: []string{"200 g Zucker", "100 ml Sirup", "300 g Mehl"},
		Steps:       []string{"Backen"},
	})

	if !hasFlag(item.Health.RiskFlags, model.RiskHighSugar) {
		t.Fatalf("Expected high_sugar flag, got %v", item.Health.RiskFlags)
	}
	warned := false
	for _, w := range item.Warnings {
		if strings.Contains(w, "Zuckeranteil") {
			warned = true
		}
	}
	if !warned {
		t.Errorf("Expected sugar warning, got %v", item.Warnings)
	}
	// Sugar alone never downgrades the suitability labels
	if item.Health.ProstateCancer != model.SuitabilityOK {
		t.Errorf("Expected suitable prostate label, got %q", item.Health.ProstateCancer)
	}
}

func TestAnalyze_MeasurementCoverage(t *testing.T) {
	a := NewAnalyzer()

	// 4 of 5 ingredients without measure, threshold is max(2, 5/2) = 2
	item := a.Analyze(model.Recipe{
		Title:       "Eintopf",
		Category:    "Suppen",
		Ingredients: []string{"500 g Kartoffeln", "Sellerie", "Lauch", "Petersilie", "Pfeffer"},
		Steps:       []string{"Kochen"},
	})

	found := false
	for _, w := range item.Warnings {
		if w == "Viele Zutaten ohne klare Mengenangaben" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected measurement warning, got %v", item.Warnings)
	}
}

func TestAnalyze_MeasurementVariantsRecognized(t *testing.T) {
	a := NewAnalyzer()

	item := a.Analyze(model.Recipe{
		Title:    "Teig",
		Category: "Backen",
		Ingredients: []string{
			"200g Mehl", "1,5 l Wasser", "2 EL Öl", "1 TL Salz", "3 Stück Eier", "1 Prise Muskat",
		},
		Steps: []string{"Kneten"},
	})

	for _, w := range item.Warnings {
		if w == "Viele Zutaten ohne klare Mengenangaben" {
			t.Errorf("All ingredients carry measures, got warning anyway: %v", item.Warnings)
		}
	}
}

func TestAnalyze_ScoreBounds(t *testing.T) {
	a := NewAnalyzer()

	recipes := []model.Recipe{
		{},
		{Title: "X"},
		{Title: "Wurstsalat", Ingredients: []string{"Wurst", "Speck", "Salami", "Zucker"}},
		{Title: "Gemüse", Category: "Veggie", Ingredients: []string{"Brokkoli", "Spinat", "Linsen"}, Steps: []string{"Dünsten"}},
	}
	for i, r := range recipes {
		item := a.Analyze(r)
		if item.QualityScore < 0 || item.QualityScore > 100 {
			t.Errorf("Recipe %d: score %d out of bounds", i, item.QualityScore)
		}
	}
}
