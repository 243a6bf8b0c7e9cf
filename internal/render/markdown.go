package render

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/izebair/Rezepte/internal/model"
)

// Markdown renders a recipe as a Markdown document: title heading, a meta
// line with servings/time/difficulty, an unordered ingredient list, an
// ordered step list and image links. Extraction guarantees the list
// entries are pre-cleaned, so no further sanitization happens here.
func Markdown(r model.Recipe) string {
	var b strings.Builder

	title := r.Title
	if title == "" {
		title = model.UnknownTitle
	}
	fmt.Fprintf(&b, "# %s\n", title)

	var meta []string
	if r.Servings != "" {
		meta = append(meta, "Portionen: "+r.Servings)
	}
	if r.Time != "" {
		meta = append(meta, "Zeit: "+r.Time)
	}
	if r.Difficulty != "" {
		meta = append(meta, "Schwierigkeit: "+r.Difficulty)
	}
	if len(meta) > 0 {
		fmt.Fprintf(&b, "\n%s\n", strings.Join(meta, " • "))
	}

	if len(r.Ingredients) > 0 {
		b.WriteString("\n## Zutaten\n\n")
		for _, ing := range r.Ingredients {
			fmt.Fprintf(&b, "- %s\n", ing)
		}
	}

	if len(r.Steps) > 0 {
		b.WriteString("\n## Zubereitung\n\n")
		for i, step := range r.Steps {
			fmt.Fprintf(&b, "%d. %s\n", i+1, step)
		}
	}

	if len(r.Images) > 0 {
		b.WriteString("\n## Bilder\n\n")
		for _, url := range r.Images {
			fmt.Fprintf(&b, "![%s](%s)\n", title, url)
		}
	}

	return b.String()
}

// PageHTML converts a recipe to the full XHTML document the note API
// expects: the Markdown rendering passed through goldmark, wrapped in a
// minimal document skeleton with the page title.
func PageHTML(r model.Recipe, pageTitle string) (string, error) {
	var body bytes.Buffer
	if err := goldmark.Convert([]byte(Markdown(r)), &body); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}

	if pageTitle == "" {
		pageTitle = r.Title
	}
	if pageTitle == "" {
		pageTitle = model.UnknownTitle
	}

	var doc strings.Builder
	doc.WriteString("<!DOCTYPE html>\n<html>\n  <head>\n")
	doc.WriteString("    <meta charset=\"utf-8\" />\n")
	fmt.Fprintf(&doc, "    <title>%s</title>\n", html.EscapeString(pageTitle))
	doc.WriteString("  </head>\n  <body>\n")
	doc.Write(body.Bytes())
	doc.WriteString("  </body>\n</html>\n")
	return doc.String(), nil
}
