package parse

import (
	"regexp"
	"strings"
)

// titlePattern matches an explicit title line ("Titel: Chili con Carne").
// The splitter and the extractor each compile their own matcher from it.
const titlePattern = `(?im)^(?:titel|title)\s*:\s*(.+)$`

var (
	titleLineRe = regexp.MustCompile(titlePattern)
	// Fallback separator between recipes: 3+ consecutive line breaks.
	blankRunRe = regexp.MustCompile(`(?:\r?\n){3,}`)
)

// SplitBlocks divides raw input text into recipe-sized blocks.
// Title-anchored input is preferred because it is unambiguous: every
// "Titel:"/"Title:" line starts a block that spans to the next title line.
// Without title lines, runs of three or more line breaks separate recipes.
func SplitBlocks(text string) []string {
	matches := titleLineRe.FindAllStringIndex(text, -1)
	if len(matches) > 0 {
		blocks := make([]string, 0, len(matches))
		for i, m := range matches {
			end := len(text)
			if i+1 < len(matches) {
				end = matches[i+1][0]
			}
			if block := strings.TrimSpace(text[m[0]:end]); block != "" {
				blocks = append(blocks, block)
			}
		}
		return blocks
	}

	var blocks []string
	for _, part := range blankRunRe.Split(text, -1) {
		if part = strings.TrimSpace(part); part != "" {
			blocks = append(blocks, part)
		}
	}
	return blocks
}
