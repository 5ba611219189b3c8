package engine

// DropRow returns the row the active piece would rest on after falling
// straight down from the current cursor row in column x, orientation r.
// It returns SpawnRow when the piece does not fit at the current row, or
// when no row above the floor stops it (a column outside the walls).
//
// Results are cached per orientation and column. A cached row below the
// cursor is still valid because the field only changes when a new piece
// is assigned, which clears the cache.
func (p *Playfield) DropRow(x, r int) int {
	r = mod4(r)
	y := p.cursor.Y

	slot := -1
	if i := x + Overhang; i >= 0 && i < len(p.drops[r]) {
		slot = i
		if d := p.drops[r][i]; d > y {
			return d
		}
	}

	if !p.IsLegal(x, y, r) {
		return SpawnRow
	}
	d := y
	for d <= p.height && p.IsLegal(x, d+1, r) {
		d++
	}
	if d > p.height {
		return SpawnRow
	}
	if slot >= 0 {
		p.drops[r][slot] = d
	}
	return d
}

func (p *Playfield) invalidateDrops() {
	for r := range p.drops {
		for i := range p.drops[r] {
			p.drops[r][i] = SpawnRow
		}
	}
}
