package selection

import (
	"fmt"

	"github.com/pathgenius/genius/internal/question"
	"github.com/pathgenius/genius/internal/seeded"
)

// CategorySeedStride separates the per-category selection seeds derived
// from the base seed. Category i selects with seed + i*stride, where i
// is the category's position in question.AllCategories().
const CategorySeedStride = 100

// Compose builds a mixed-category question set of totalCount questions:
// ceil(totalCount / categories) from each category pool, concatenated in
// canonical category order, truncated to totalCount, then shuffled once
// with the base seed so category blocks interleave.
//
// Truncation drops from the tail of the concatenation, so categories
// late in canonical order lose questions first whenever the per-category
// allocation overshoots the total. That bias is part of the observed
// output and kept deliberately.
//
// Empty category pools contribute nothing and shift the truncation
// boundary; the result length is min(totalCount, total available).
func Compose(pools map[question.Category][]question.Question, totalCount int, seed int64) []question.Question {
	if totalCount < 0 {
		panic(fmt.Sprintf("selection: negative totalCount %d", totalCount))
	}
	if totalCount == 0 {
		return nil
	}

	cats := question.AllCategories()
	perCategory := (totalCount + len(cats) - 1) / len(cats)

	var combined []question.Question
	for i, cat := range cats {
		catSeed := seed + int64(i)*CategorySeedStride
		picked, _, _ := Select(pools[cat], perCategory, catSeed)
		combined = append(combined, picked...)
	}

	if len(combined) > totalCount {
		combined = combined[:totalCount]
	}

	seeded.Shuffle(combined, seed)
	return combined
}
