// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

// AssociateTitle selects the title immediately above a table: the match
// with the greatest Top strictly less than tableTop. When several matches
// share that position the first one in scan order wins. ok is false when
// no title sits above the table; such tables are skipped, not an error.
func AssociateTitle(titles []TitleMatch, tableTop float64) (title TitleMatch, ok bool) {
	best := -1
	for i, t := range titles {
		if t.Top >= tableTop {
			continue
		}
		if best < 0 || t.Top > titles[best].Top {
			best = i
		}
	}
	if best < 0 {
		return TitleMatch{}, false
	}
	return titles[best], true
}
