package classify

import (
	"sort"

	"github.com/yvynation/zonepack/internal/core/domain"
)

// hectaresPerPixel converts 30 m pixels to hectares.
const hectaresPerPixel = 0.09

// FromHistogram converts a class histogram into an analysis table:
// class names resolved for the dataset, pixel counts converted to
// hectares at 30 m resolution, percentages over the total, rows ordered
// by descending area with the class id breaking ties.
func FromHistogram(dataset string, histogram map[int]int64) domain.Table {
	var total int64
	for _, count := range histogram {
		total += count
	}

	table := make(domain.Table, 0, len(histogram))
	for classID, count := range histogram {
		row := domain.TableRow{
			ClassID:    classID,
			ClassName:  ClassName(dataset, classID),
			PixelCount: count,
			AreaHa:     float64(count) * hectaresPerPixel,
		}
		if total > 0 {
			row.Percentage = float64(count) / float64(total) * 100
		}
		table = append(table, row)
	}

	sort.Slice(table, func(i, j int) bool {
		if table[i].AreaHa != table[j].AreaHa {
			return table[i].AreaHa > table[j].AreaHa
		}
		return table[i].ClassID < table[j].ClassID
	})
	return table
}
