package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/izebair/Rezepte/internal/model"
	"github.com/izebair/Rezepte/internal/render"
	"github.com/izebair/Rezepte/internal/route"
	"github.com/izebair/Rezepte/internal/worker"
)

// NoteService is the slice of the Graph client the importer depends on
type NoteService interface {
	ResolveSection(ctx context.Context, sectionName, notebookName string) (string, error)
	CreatePage(ctx context.Context, sectionID, html string) (string, error)
}

// ImportOptions controls one import run
type ImportOptions struct {
	Notebook       string
	SectionID      string // explicit target section, bypasses routing
	DryRun         bool
	SkipDuplicates bool // skip index_b of every similarity candidate
	SkipUnfit      bool // skip recipes with structural issues
}

// ImportResult is the per-recipe outcome of an import run
type ImportResult struct {
	Index   int
	Title   string
	Section string
	PageID  string
	Skipped string // non-empty when the recipe was skipped, with the reason
	Error   error
}

// Err implements worker.Result
func (r *ImportResult) Err() error { return r.Error }

// Importer turns parsed recipes into note pages. Failures and skips are
// reported per recipe; the batch always runs to completion.
type Importer struct {
	notes  NoteService
	router *route.Router
	pool   *worker.Pool
	log    *zap.Logger
}

// NewImporter creates an importer. notes may be nil for dry runs.
func NewImporter(notes NoteService, router *route.Router, workers int, log *zap.Logger) *Importer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Importer{
		notes:  notes,
		router: router,
		pool:   worker.NewPool(workers),
		log:    log,
	}
}

// SkipSet computes which recipe indices an import run must skip, with the
// reason per index. Items with structural issues are unfit; the second
// member of every similarity pair is a duplicate candidate.
func SkipSet(report *model.BatchReport, opts ImportOptions) map[int]string {
	skip := make(map[int]string)
	if opts.SkipUnfit {
		for i, item := range report.Items {
			if len(item.Issues) > 0 {
				skip[i] = fmt.Sprintf("unvollständig: %s", item.Issues[0])
			}
		}
	}
	if opts.SkipDuplicates {
		for _, c := range report.SimilarCandidates {
			if _, done := skip[c.IndexB]; !done {
				skip[c.IndexB] = fmt.Sprintf("mögliches Duplikat von %q (%.3f)", c.TitleA, c.Similarity)
			}
		}
	}
	return skip
}

// Run imports a batch. The report must come from the same recipe slice so
// skip indices line up.
func (im *Importer) Run(ctx context.Context, recipes []model.Recipe, report *model.BatchReport, opts ImportOptions) []ImportResult {
	skip := SkipSet(report, opts)

	results := make([]ImportResult, 0, len(recipes))
	jobs := make([]worker.Job, 0, len(recipes))
	for i, rec := range recipes {
		if reason, skipped := skip[i]; skipped {
			im.log.Info("recipe skipped",
				zap.String("titel", rec.Title),
				zap.String("reason", reason))
			results = append(results, ImportResult{Index: i, Title: rec.Title, Skipped: reason})
			continue
		}
		jobs = append(jobs, &publishJob{im: im, index: i, recipe: rec, opts: opts})
	}

	for _, res := range im.pool.Run(ctx, jobs) {
		r := res.(*ImportResult)
		if r.Error != nil {
			im.log.Error("page creation failed",
				zap.String("titel", r.Title),
				zap.Error(r.Error))
		} else if !opts.DryRun {
			im.log.Info("page created",
				zap.String("titel", r.Title),
				zap.String("section", r.Section),
				zap.String("page_id", r.PageID))
		}
		results = append(results, *r)
	}
	return results
}

type publishJob struct {
	im     *Importer
	index  int
	recipe model.Recipe
	opts   ImportOptions
}

// Execute publishes one recipe as a note page
func (j *publishJob) Execute(ctx context.Context) worker.Result {
	im := j.im
	res := &ImportResult{Index: j.index, Title: j.recipe.Title}

	section, pageTitle := im.router.Resolve(j.recipe.Category, j.recipe.Title)
	res.Section = section

	if j.opts.DryRun {
		im.log.Info("dry-run: recipe parsed",
			zap.String("titel", j.recipe.Title),
			zap.String("section", section),
			zap.Int("zutaten", len(j.recipe.Ingredients)),
			zap.Int("schritte", len(j.recipe.Steps)))
		return res
	}

	html, err := render.PageHTML(j.recipe, pageTitle)
	if err != nil {
		res.Error = fmt.Errorf("render %q: %w", j.recipe.Title, err)
		return res
	}

	sectionID := j.opts.SectionID
	if sectionID == "" {
		sectionID, err = im.notes.ResolveSection(ctx, section, j.opts.Notebook)
		if err != nil {
			res.Error = fmt.Errorf("resolve section %q: %w", section, err)
			return res
		}
	}

	pageID, err := im.notes.CreatePage(ctx, sectionID, html)
	if err != nil {
		res.Error = fmt.Errorf("create page %q: %w", j.recipe.Title, err)
		return res
	}
	res.PageID = pageID
	return res
}
