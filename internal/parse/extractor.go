package parse

import (
	"regexp"
	"strings"

	"github.com/izebair/Rezepte/internal/model"
)

// sectionKind identifies one recognized header section within a block
type sectionKind int

const (
	sectionCategory sectionKind = iota
	sectionIngredients
	sectionInstructions
	sectionServings
	sectionTime
	sectionDifficulty
	sectionImages
)

// sectionKeywords maps each section to its header keyword alternation.
// A header is a standalone line of one of these keywords with an optional
// trailing colon, matched case-insensitively.
var sectionKeywords = map[sectionKind]string{
	sectionCategory:     `kategorie`,
	sectionIngredients:  `zutaten`,
	sectionInstructions: `zubereitung|anleitung`,
	sectionServings:     `portionen|servieren`,
	sectionTime:         `zeit|dauer|zubereitungszeit`,
	sectionDifficulty:   `schwierigkeit|schwierigkeitsgrad`,
	sectionImages:       `bilder|bild|foto|fotos|image|images`,
}

// Extractor parses recipe blocks into structured records. It owns its
// compiled matcher table; construct it once via NewExtractor and reuse it
// across blocks.
type Extractor struct {
	sections  map[sectionKind]*regexp.Regexp
	anyHeader *regexp.Regexp // combined pattern, the stop boundary for every section scan
	titleLine *regexp.Regexp
	bullet    *regexp.Regexp
	numbered  *regexp.Regexp
	urlLine   *regexp.Regexp
	blankRun  *regexp.Regexp
}

// NewExtractor builds the matcher table
func NewExtractor() *Extractor {
	sections := make(map[sectionKind]*regexp.Regexp, len(sectionKeywords))
	alts := make([]string, 0, len(sectionKeywords))
	for kind, words := range sectionKeywords {
		sections[kind] = regexp.MustCompile(`(?im)^(?:` + words + `)\s*:?\s*$`)
		alts = append(alts, words)
	}

	return &Extractor{
		sections:  sections,
		anyHeader: regexp.MustCompile(`(?im)^(?:` + strings.Join(alts, "|") + `)\s*:?\s*$`),
		titleLine: regexp.MustCompile(titlePattern),
		bullet:    regexp.MustCompile(`^\s*[-*\x{2022}]\s+`),
		numbered:  regexp.MustCompile(`^\s*\d+[.)]\s+`),
		urlLine:   regexp.MustCompile(`(?i)^https?://`),
		blankRun:  regexp.MustCompile(`\n\s*\n+`),
	}
}

// Parse extracts the structured fields of one recipe block. It never
// fails: missing sections yield empty values and the raw block is kept
// verbatim.
func (e *Extractor) Parse(block string) model.Recipe {
	lines := strings.Split(block, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t\r")
	}
	text := strings.Join(lines, "\n")

	title := model.UnknownTitle
	if m := e.titleLine.FindStringSubmatch(text); m != nil {
		title = strings.TrimSpace(m[1])
	} else {
		for _, l := range lines {
			if strings.TrimSpace(l) != "" {
				title = strings.TrimSpace(l)
				break
			}
		}
	}

	ingredients := e.listSection(sectionIngredients, text)
	steps := e.listSection(sectionInstructions, text)

	// List markers come off before the URL filter, so bulleted image
	// lines still count.
	images := make([]string, 0)
	for _, l := range e.listSection(sectionImages, text) {
		if e.urlLine.MatchString(l) {
			images = append(images, l)
		}
	}

	// Header-less blocks: everything after the first line splits on blank
	// runs into at most two chunks, ingredients first, steps second. Fewer
	// than two chunks leaves steps empty; that is an input-quality limit,
	// not something to outsmart.
	if len(ingredients) == 0 && len(steps) == 0 && len(lines) > 1 {
		rest := strings.TrimSpace(strings.Join(lines[1:], "\n"))
		if rest != "" {
			chunks := e.blankRun.Split(rest, -1)
			if len(chunks) >= 1 {
				ingredients = nonBlankLines(chunks[0])
			}
			if len(chunks) >= 2 {
				steps = nonBlankLines(chunks[1])
			}
		}
	}

	return model.Recipe{
		Title:       title,
		Category:    e.firstLine(sectionCategory, text),
		Ingredients: ingredients,
		Steps:       steps,
		Servings:    e.firstLine(sectionServings, text),
		Time:        e.firstLine(sectionTime, text),
		Difficulty:  e.firstLine(sectionDifficulty, text),
		Images:      images,
		Raw:         block,
	}
}

// section returns the text between a section header and the next
// recognized header (or end of block), trimmed. Empty when the header is
// absent.
func (e *Extractor) section(kind sectionKind, text string) string {
	loc := e.sections[kind].FindStringIndex(text)
	if loc == nil {
		return ""
	}
	rest := text[loc[1]:]
	if next := e.anyHeader.FindStringIndex(rest); next != nil {
		rest = rest[:next[0]]
	}
	return strings.TrimSpace(rest)
}

// firstLine returns the first non-blank line of a section
func (e *Extractor) firstLine(kind sectionKind, text string) string {
	for _, l := range strings.Split(e.section(kind, text), "\n") {
		if l = strings.TrimSpace(l); l != "" {
			return l
		}
	}
	return ""
}

// listSection returns the non-blank lines of a section with leading
// bullet ("-", "*", "•") and numbered ("1.", "2)") list markers removed.
func (e *Extractor) listSection(kind sectionKind, text string) []string {
	items := make([]string, 0)
	for _, l := range strings.Split(e.section(kind, text), "\n") {
		if strings.TrimSpace(l) == "" {
			continue
		}
		l = e.bullet.ReplaceAllString(l, "")
		l = e.numbered.ReplaceAllString(l, "")
		items = append(items, strings.TrimSpace(l))
	}
	return items
}

func nonBlankLines(chunk string) []string {
	out := make([]string, 0)
	for _, l := range strings.Split(chunk, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}
