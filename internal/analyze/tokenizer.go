package analyze

import (
	"regexp"
	"strings"
)

// wordRe extracts maximal runs of letters, including umlauts and ß
var wordRe = regexp.MustCompile(`\p{L}+`)

// stopwords are function words and bare unit words that carry no meaning
// for similarity comparison
var stopwords = map[string]struct{}{
	"und": {}, "oder": {}, "mit": {}, "ohne": {}, "für": {}, "nach": {},
	"der": {}, "die": {}, "das": {}, "den": {}, "dem": {}, "des": {},
	"ein": {}, "eine": {}, "einem": {}, "einen": {}, "einer": {},
	"in": {}, "im": {}, "an": {}, "am": {}, "auf": {}, "aus": {},
	"von": {}, "vom": {}, "zu": {}, "zum": {}, "zur": {}, "bei": {},
	"g": {}, "kg": {}, "ml": {}, "l": {}, "el": {}, "tl": {},
	"stk": {}, "prise": {}, "dose": {}, "etwas": {},
}

// synonyms folds spelling variants and near-synonyms onto one canonical
// token so that e.g. "Spaghetti Napoli" and "Nudeln mit Tomatensosse"
// compare as related
var synonyms = map[string]string{
	"spaghetti":    "nudeln",
	"pasta":        "nudeln",
	"penne":        "nudeln",
	"tagliatelle":  "nudeln",
	"napoli":       "tomatensosse",
	"tomatensauce": "tomatensosse",
	"tomatensoße":  "tomatensosse",
	"sauce":        "sosse",
	"soße":         "sosse",
	"möhre":        "karotten",
	"möhren":       "karotten",
	"karotte":      "karotten",
	"kraeuter":     "kräuter",
}

// Tokenize normalizes text into a set of comparison tokens: letter runs,
// lowercased, stopwords dropped, synonyms folded. Empty input yields an
// empty set.
func Tokenize(text string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, word := range wordRe.FindAllString(text, -1) {
		word = strings.ToLower(word)
		if _, stop := stopwords[word]; stop {
			continue
		}
		if canonical, ok := synonyms[word]; ok {
			word = canonical
		}
		if word == "" {
			continue
		}
		tokens[word] = struct{}{}
	}
	return tokens
}
