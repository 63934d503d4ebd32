package game

// Card is a development card. Buying it grants a permanent discount of its color.
type Card struct {
	ID     int     `json:"id"`
	Tier   int     `json:"tier"` // 1, 2 or 3
	Color  Color   `json:"color"`
	Points int     `json:"points"`
	Cost   CoinSet `json:"cost"`
}

// Noble is claimed automatically once a player's discounts cover its cost.
type Noble struct {
	ID     int     `json:"id"`
	Points int     `json:"points"`
	Cost   CoinSet `json:"cost"`
}
