package analyze

import (
	"math"
	"strings"

	"github.com/izebair/Rezepte/internal/model"
)

// PairwiseSimilarity compares every recipe pair by the Jaccard index of
// their normalized token sets (title plus ingredients) and returns the
// pairs at or above the threshold, ordered by ascending (index_a, index_b).
// Quadratic in the batch size, which is fine for human-curated recipe
// collections. Each recipe is tokenized once up front.
func (a *Analyzer) PairwiseSimilarity(recipes []model.Recipe, threshold float64) []model.SimilarityCandidate {
	sets := make([]map[string]struct{}, len(recipes))
	for i, r := range recipes {
		sets[i] = Tokenize(r.Title + " " + strings.Join(r.Ingredients, " "))
	}

	candidates := make([]model.SimilarityCandidate, 0)
	for i := 0; i < len(recipes); i++ {
		for j := i + 1; j < len(recipes); j++ {
			sim := jaccard(sets[i], sets[j])
			if sim >= threshold {
				candidates = append(candidates, model.SimilarityCandidate{
					IndexA:     i,
					TitleA:     recipes[i].Title,
					IndexB:     j,
					TitleB:     recipes[j].Title,
					Similarity: math.Round(sim*1000) / 1000,
				})
			}
		}
	}
	return candidates
}

// jaccard computes |intersection| / |union|. Degenerate empty sets
// compare as 0, not as an error.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	intersection := 0
	for t := range a {
		if _, ok := b[t]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}
