package model

// Recipe is one structured recipe extracted from a text block.
// JSON field names follow the original German report format.
type Recipe struct {
	Title       string   `json:"titel"`                 // "Unbekannt" when the block has no usable title
	Category    string   `json:"kategorie,omitempty"`   // empty when no category header was found
	Ingredients []string `json:"zutaten"`               // list markers stripped, entries trimmed
	Steps       []string `json:"schritte"`              // list markers stripped, entries trimmed
	Servings    string   `json:"portionen,omitempty"`   // free text, e.g. "4 Personen"
	Time        string   `json:"zeit,omitempty"`        // free text, e.g. "30 Minuten"
	Difficulty  string   `json:"schwierigkeit,omitempty"`
	Images      []string `json:"bilder"`                // http/https URLs only
	Raw         string   `json:"raw"`                   // original block, kept for traceability
}

// UnknownTitle is the sentinel used when a block yields no title.
const UnknownTitle = "Unbekannt"
