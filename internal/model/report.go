package model

// Suitability labels for the health assessment
const (
	SuitabilityOK          = "geeignet"
	SuitabilityConditional = "bedingt"
)

// Risk flag identifiers triggered by ingredient keyword matches
const (
	RiskProcessedMeat = "processed_meat"
	RiskRedMeat       = "red_meat"
	RiskHighSugar     = "high_sugar"
)

// MedicalDisclaimer is attached to every analysis item. The heuristics are
// rule-based hints, not medical advice.
const MedicalDisclaimer = "Automatisch erzeugte Hinweise ersetzen keine medizinische Beratung."

// Health is the per-recipe health assessment
type Health struct {
	ProstateCancer string   `json:"prostata_krebs"` // geeignet | bedingt
	BreastCancer   string   `json:"brustkrebs"`     // geeignet | bedingt
	RiskFlags      []string `json:"risk_flags"`
	ProtectiveHits int      `json:"protective_hits"`
}

// AnalysisItem is the scorer output for one recipe
type AnalysisItem struct {
	Title             string   `json:"titel"`
	QualityScore      int      `json:"quality_score"` // 0-100
	Issues            []string `json:"issues"`        // structural defects
	Warnings          []string `json:"warnings"`      // soft quality problems
	Suggestions       []string `json:"suggestions"`
	Health            Health   `json:"health"`
	MedicalDisclaimer string   `json:"medical_disclaimer"`
}

// SimilarityCandidate is a pair of recipes whose normalized token sets
// meet the similarity threshold. IndexA < IndexB always holds.
type SimilarityCandidate struct {
	IndexA     int     `json:"index_a"`
	TitleA     string  `json:"titel_a"`
	IndexB     int     `json:"index_b"`
	TitleB     string  `json:"titel_b"`
	Similarity float64 `json:"similarity"` // Jaccard index, rounded to 3 decimals
}

// Summary aggregates the per-recipe results of a batch
type Summary struct {
	Count               int     `json:"count"`
	AverageQualityScore float64 `json:"average_quality_score"` // rounded to 1 decimal, 0.0 for empty batch
	TotalIssues         int     `json:"total_issues"`
	TotalWarnings       int     `json:"total_warnings"`
	SimilarCandidates   int     `json:"similar_candidates"`
}

// BatchReport is the complete analysis report for one input run
type BatchReport struct {
	Summary             Summary               `json:"summary"`
	SimilarityThreshold float64               `json:"similarity_threshold"`
	SimilarCandidates   []SimilarityCandidate `json:"similar_candidates"`
	Items               []AnalysisItem        `json:"items"`
}
