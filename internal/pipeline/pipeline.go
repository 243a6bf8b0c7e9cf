package pipeline

import (
	"fmt"
	"os"

	"github.com/izebair/Rezepte/internal/analyze"
	"github.com/izebair/Rezepte/internal/model"
	"github.com/izebair/Rezepte/internal/parse"
)

// Pipeline wires the parsing and analysis stages together
type Pipeline struct {
	extractor *parse.Extractor
	analyzer  *analyze.Analyzer
}

// New creates a pipeline
func New() *Pipeline {
	return &Pipeline{
		extractor: parse.NewExtractor(),
		analyzer:  analyze.NewAnalyzer(),
	}
}

// ParseText splits raw text into blocks and extracts one recipe per block
func (p *Pipeline) ParseText(text string) []model.Recipe {
	blocks := parse.SplitBlocks(text)
	recipes := make([]model.Recipe, 0, len(blocks))
	for _, block := range blocks {
		recipes = append(recipes, p.extractor.Parse(block))
	}
	return recipes
}

// ParseFile reads and parses a recipe source file
func (p *Pipeline) ParseFile(path string) ([]model.Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input file: %w", err)
	}
	return p.ParseText(string(data)), nil
}

// Analyze runs the batch analysis over already-parsed recipes
func (p *Pipeline) Analyze(recipes []model.Recipe, threshold float64) *model.BatchReport {
	return p.analyzer.AnalyzeBatch(recipes, threshold)
}

// AnalyzeFile parses a source file and analyzes the whole batch
func (p *Pipeline) AnalyzeFile(path string, threshold float64) ([]model.Recipe, *model.BatchReport, error) {
	recipes, err := p.ParseFile(path)
	if err != nil {
		return nil, nil, err
	}
	return recipes, p.Analyze(recipes, threshold), nil
}
