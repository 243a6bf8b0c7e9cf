package render

import (
	"strings"
	"testing"

	"github.com/izebair/Rezepte/internal/model"
)

func TestMarkdown_FullRecipe(t *testing.T) {
	r := model.Recipe{
		Title:       "Linsensuppe",
		Servings:    "4",
		Time:        "45 Minuten",
		Difficulty:  "einfach",
		Ingredients: []string{"250 g Linsen", "1 Zwiebel"},
		Steps:       []string{"Zwiebel anbraten", "Linsen zugeben"},
		Images:      []string{"https://example.com/suppe.jpg"},
	}

	md := Markdown(r)

	if !strings.HasPrefix(md, "# Linsensuppe\n") {
		t.Errorf("Expected title heading, got %q", md)
	}
	if !strings.Contains(md, "Portionen: 4 • Zeit: 45 Minuten • Schwierigkeit: einfach") {
		t.Errorf("Expected meta line, got %q", md)
	}
	if !strings.Contains(md, "## Zutaten\n\n- 250 g Linsen\n- 1 Zwiebel\n") {
		t.Errorf("Expected ingredient bullets, got %q", md)
	}
	if !strings.Contains(md, "## Zubereitung\n\n1. Zwiebel anbraten\n2. Linsen zugeben\n") {
		t.Errorf("Expected numbered steps, got %q", md)
	}
	if !strings.Contains(md, "![Linsensuppe](https://example.com/suppe.jpg)") {
		t.Errorf("Expected image link, got %q", md)
	}
}

func TestMarkdown_SparseRecipe(t *testing.T) {
	md := Markdown(model.Recipe{Title: "Toast"})

	if md != "# Toast\n" {
		t.Errorf("Expected bare heading only, got %q", md)
	}
}

func TestMarkdown_EmptyTitleFallsBack(t *testing.T) {
	md := Markdown(model.Recipe{})

	if !strings.HasPrefix(md, "# "+model.UnknownTitle) {
		t.Errorf("Expected sentinel title, got %q", md)
	}
}

func TestPageHTML_Document(t *testing.T) {
	r := model.Recipe{
		Title:       "Linsensuppe",
		Ingredients: []string{"250 g Linsen"},
		Steps:       []string{"Kochen"},
	}

	doc, err := PageHTML(r, "[Vegetarisch] Linsensuppe")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !strings.HasPrefix(doc, "<!DOCTYPE html>") {
		t.Errorf("Expected document skeleton, got %q", doc)
	}
	if !strings.Contains(doc, "<title>[Vegetarisch] Linsensuppe</title>") {
		t.Errorf("Expected page title, got %q", doc)
	}
	if !strings.Contains(doc, "<h1>Linsensuppe</h1>") {
		t.Errorf("Expected rendered heading, got %q", doc)
	}
	if !strings.Contains(doc, "<li>250 g Linsen</li>") {
		t.Errorf("Expected rendered ingredient, got %q", doc)
	}
	if !strings.Contains(doc, "<ol>") {
		t.Errorf("Expected ordered step list, got %q", doc)
	}
}

func TestPageHTML_TitleEscaped(t *testing.T) {
	doc, err := PageHTML(model.Recipe{Title: "A <b> B"}, "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(doc, "<title>A &lt;b&gt; B</title>") {
		t.Errorf("Expected escaped title, got %q", doc)
	}
}

func TestPageHTML_EmptyTitlesFallBack(t *testing.T) {
	doc, err := PageHTML(model.Recipe{}, "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(doc, "<title>"+model.UnknownTitle+"</title>") {
		t.Errorf("Expected sentinel page title, got %q", doc)
	}
}
