package render

// The island is a fixed motif anchored at the water field's island row: a
// palm crown and trunk above the baseline, and a sand triangle widening by
// two columns per row from the baseline down. Expressed as a rule table
// rather than inline arithmetic so the shape reads off the source.

// islandRule styles a set of column offsets (relative to mid-width) on one
// row offset (relative to the island base row).
type islandRule struct {
	dy    int
	cols  []int
	style Style
}

var islandMotif = []islandRule{
	{dy: -5, cols: []int{-3, -1, 1}, style: styleCrown},
	{dy: -4, cols: []int{-2, -1, 0}, style: styleCrown},
	{dy: -3, cols: []int{-3, 1}, style: styleCrown},
	{dy: -3, cols: []int{-1}, style: styleTrunk},
	{dy: -2, cols: []int{0}, style: styleTrunk},
	{dy: -1, cols: []int{0}, style: styleTrunk},
}

// islandStyleAt reports whether the cell belongs to the island silhouette
// and with which style. mid is the terminal mid-width column, baseRow the
// row the sand triangle starts on.
func islandStyleAt(x, y, mid, baseRow int) (Style, bool) {
	dy := y - baseRow

	if dy >= 0 {
		// Sand triangle: half-width 1 at the base row, +2 per row below
		half := 1 + 2*dy
		if x >= mid-half && x <= mid+half {
			return styleSand, true
		}
		return Style{}, false
	}

	for _, rule := range islandMotif {
		if rule.dy != dy {
			continue
		}
		for _, dx := range rule.cols {
			if x == mid+dx {
				return rule.style, true
			}
		}
	}
	return Style{}, false
}
