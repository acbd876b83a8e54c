package shared

// Scale returns ceil(base * pct / 100). Every damage, heal and cost value in
// the game is derived this way.
func Scale(base, pct int) int {
	product := base * pct
	scaled := product / 100
	if product%100 > 0 {
		scaled++
	}
	return scaled
}
