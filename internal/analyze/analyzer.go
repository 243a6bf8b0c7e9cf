package analyze

import (
	"regexp"
	"strings"

	"github.com/izebair/Rezepte/internal/model"
)

// riskGroup ties a risk flag to its ingredient needle words. Groups are
// evaluated in order so flags appear deterministically in the report.
type riskGroup struct {
	flag    string
	needles []string
}

var riskGroups = []riskGroup{
	{model.RiskProcessedMeat, []string{"pancetta", "speck", "salami", "wurst", "schinken", "bacon"}},
	{model.RiskRedMeat, []string{"rind", "schwein", "hackfleisch"}},
	{model.RiskHighSugar, []string{"zucker", "sirup"}},
}

// protectiveIngredients are nutrient-dense components counted as
// protective hits
var protectiveIngredients = []string{
	"brokkoli", "beeren", "hafer", "linsen", "hülsenfrüchte", "spinat", "kurkuma", "nüsse", "leinsamen",
}

// Analyzer evaluates per-recipe quality and health rules
type Analyzer struct {
	measureRe *regexp.Regexp
}

// NewAnalyzer creates a new analyzer
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		measureRe: regexp.MustCompile(`(?i)\b\d+[\d.,]*\s*(g|kg|ml|l|tl|el|stk|stück|prise|tasse|cup)\b`),
	}
}

// Analyze evaluates one recipe. It is a pure function: malformed fields
// degrade to defaults and every input yields a well-formed item.
func (a *Analyzer) Analyze(recipe model.Recipe) model.AnalysisItem {
	title := strings.TrimSpace(recipe.Title)
	category := strings.TrimSpace(recipe.Category)
	ingredients := cleanList(recipe.Ingredients)
	steps := cleanList(recipe.Steps)

	issues := make([]string, 0)
	warnings := make([]string, 0)
	suggestions := make([]string, 0)

	if title == "" || strings.EqualFold(title, model.UnknownTitle) {
		issues = append(issues, "Titel fehlt oder ist unklar")
	}
	if category == "" {
		warnings = append(warnings, "Kategorie fehlt")
	}
	if len(ingredients) == 0 {
		issues = append(issues, "Zutaten fehlen")
	}
	if len(steps) == 0 {
		issues = append(issues, "Zubereitungsschritte fehlen")
	}

	withoutMeasure := 0
	for _, ing := range ingredients {
		if !a.measureRe.MatchString(ing) {
			withoutMeasure++
		}
	}
	if len(ingredients) > 0 && withoutMeasure > max(2, len(ingredients)/2) {
		warnings = append(warnings, "Viele Zutaten ohne klare Mengenangaben")
	}

	joined := strings.ToLower(strings.Join(ingredients, " | "))

	riskFlags := make([]string, 0)
	for _, group := range riskGroups {
		if containsAny(joined, group.needles) {
			riskFlags = append(riskFlags, group.flag)
		}
	}

	protectiveHits := 0
	for _, w := range protectiveIngredients {
		if strings.Contains(joined, w) {
			protectiveHits++
		}
	}
	if protectiveHits >= 2 {
		suggestions = append(suggestions, "Rezept enthält mehrere nährstoffreiche Komponenten")
	} else {
		suggestions = append(suggestions, "Optional mehr ballaststoffreiche Zutaten/Kräuter ergänzen")
	}

	if hasFlag(riskFlags, model.RiskProcessedMeat) {
		warnings = append(warnings, "Verarbeitetes Fleisch erkannt – ggf. durch pflanzliche Alternative ersetzen")
	}
	if hasFlag(riskFlags, model.RiskHighSugar) {
		warnings = append(warnings, "Zuckeranteil prüfen und ggf. reduzieren")
	}

	prostate := model.SuitabilityOK
	breast := model.SuitabilityOK
	if hasFlag(riskFlags, model.RiskProcessedMeat) || hasFlag(riskFlags, model.RiskRedMeat) {
		prostate = model.SuitabilityConditional
		breast = model.SuitabilityConditional
	}

	score := 100 - 20*len(issues) - 7*len(warnings)
	if protectiveHits >= 2 {
		score += 5
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	if title == "" {
		title = model.UnknownTitle
	}

	return model.AnalysisItem{
		Title:        title,
		QualityScore: score,
		Issues:       issues,
		Warnings:     warnings,
		Suggestions:  suggestions,
		Health: model.Health{
			ProstateCancer: prostate,
			BreastCancer:   breast,
			RiskFlags:      riskFlags,
			ProtectiveHits: protectiveHits,
		},
		MedicalDisclaimer: model.MedicalDisclaimer,
	}
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}

func hasFlag(flags []string, flag string) bool {
	for _, f := range flags {
		if f == flag {
			return true
		}
	}
	return false
}
