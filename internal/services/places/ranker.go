package places

import (
	"sort"

	"github.com/ternarybob/smarttravellers/internal/models"
)

// Rank sorts by rating then review count, both descending, keeping provider
// order for exact ties, and truncates to topN (topN <= 0 keeps everything).
func Rank(places []models.Place, topN int) []models.Place {
	ranked := make([]models.Place, len(places))
	copy(ranked, places)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Rating != ranked[j].Rating {
			return ranked[i].Rating > ranked[j].Rating
		}
		return ranked[i].Reviews > ranked[j].Reviews
	})

	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
