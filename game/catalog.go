package game

// cardPattern describes a card relative to its own color: cost[i] is charged in
// color (own+i) mod NumRealColors.
type cardPattern struct {
	points int
	cost   [NumRealColors]int
}

var tierPatterns = [NumTiers][]cardPattern{
	{ // Tier 1, eight per color
		{0, [5]int{0, 1, 1, 1, 1}},
		{0, [5]int{0, 1, 2, 1, 1}},
		{0, [5]int{0, 2, 2, 0, 1}},
		{0, [5]int{1, 0, 0, 1, 3}},
		{0, [5]int{0, 0, 0, 2, 1}},
		{0, [5]int{0, 2, 0, 2, 0}},
		{0, [5]int{0, 0, 0, 3, 0}},
		{1, [5]int{0, 0, 4, 0, 0}},
	},
	{ // Tier 2, six per color
		{1, [5]int{0, 3, 2, 2, 0}},
		{1, [5]int{2, 3, 0, 3, 0}},
		{2, [5]int{0, 0, 1, 4, 2}},
		{2, [5]int{0, 0, 0, 5, 3}},
		{2, [5]int{0, 5, 0, 0, 0}},
		{3, [5]int{6, 0, 0, 0, 0}},
	},
	{ // Tier 3, four per color
		{3, [5]int{0, 3, 3, 5, 3}},
		{4, [5]int{0, 0, 0, 0, 7}},
		{4, [5]int{3, 0, 0, 3, 6}},
		{5, [5]int{3, 0, 0, 0, 7}},
	},
}

var noblePatterns = []cardPattern{
	{NoblePoints, [5]int{4, 4, 0, 0, 0}},
	{NoblePoints, [5]int{3, 3, 3, 0, 0}},
}

// Catalog returns a fresh copy of every development card, grouped by tier.
// Card ids are unique across tiers.
func Catalog() [NumTiers][]Card {
	var decks [NumTiers][]Card
	id := 1
	for tier, patterns := range tierPatterns {
		decks[tier] = make([]Card, 0, len(patterns)*NumRealColors)
		for color := Color(0); color < NumRealColors; color++ {
			for _, pattern := range patterns {
				decks[tier] = append(decks[tier], Card{
					ID:     id,
					Tier:   tier + 1,
					Color:  color,
					Points: pattern.points,
					Cost:   rotate(pattern.cost, color),
				})
				id++
			}
		}
	}
	return decks
}

// NobleCatalog returns a fresh copy of every noble.
func NobleCatalog() []Noble {
	nobles := make([]Noble, 0, len(noblePatterns)*NumRealColors)
	id := 1
	for _, pattern := range noblePatterns {
		for color := Color(0); color < NumRealColors; color++ {
			nobles = append(nobles, Noble{
				ID:     id,
				Points: pattern.points,
				Cost:   rotate(pattern.cost, color),
			})
			id++
		}
	}
	return nobles
}

func rotate(relative [NumRealColors]int, own Color) CoinSet {
	var cost CoinSet
	for i, n := range relative {
		cost[(int(own)+i)%NumRealColors] = n
	}
	return cost
}
