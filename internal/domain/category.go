package domain

// CategorySummary - сводка по всем ресторанам одной кухни
type CategorySummary struct {
	Category    string       `json:"category"`
	Count       int          `json:"count"`
	Restaurants []Restaurant `json:"restaurants"`
	// Center - среднее арифметическое координат ресторанов категории
	Center Coordinate `json:"center"`
}

// AggregateCategories группирует рестораны по тегу кухни в порядке первого
// появления тега. Дубликаты не отбрасываются. Сводка создаётся только при
// первом ресторане, поэтому Count >= 1 и деление ниже безопасно.
func AggregateCategories(restaurants []Restaurant) []CategorySummary {
	summaries := make([]CategorySummary, 0)
	sums := make([]Coordinate, 0)
	index := make(map[string]int)

	for _, r := range restaurants {
		i, ok := index[r.Style]
		if !ok {
			i = len(summaries)
			index[r.Style] = i
			summaries = append(summaries, CategorySummary{Category: r.Style})
			sums = append(sums, Coordinate{})
		}

		summaries[i].Count++
		summaries[i].Restaurants = append(summaries[i].Restaurants, r)
		sums[i].Lat += r.Latitude
		sums[i].Lng += r.Longitude
	}

	for i := range summaries {
		n := float64(summaries[i].Count)
		summaries[i].Center = Coordinate{
			Lat: sums[i].Lat / n,
			Lng: sums[i].Lng / n,
		}
	}

	return summaries
}
