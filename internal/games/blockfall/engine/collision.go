package engine

// IsLegal reports whether the active piece fits at (x, y) in orientation r.
func (p *Playfield) IsLegal(x, y, r int) bool {
	return p.fits(p.active, x, y, r)
}

func (p *Playfield) fits(k Kind, x, y, r int) bool {
	for _, o := range k.Offsets(r) {
		if p.field.Contains(x+o.X, y+o.Y) {
			return false
		}
	}
	return true
}

// TryRotate resolves a rotation by turn quarter turns from (x, y, r).
// Candidates are tried in order: in place, shifted by -turn, shifted by
// +turn; with row bump enabled the same three are then tried one row
// lower. The first legal candidate wins.
func (p *Playfield) TryRotate(x, y, r, turn int) (Cursor, bool) {
	to := mod4(r + turn)
	rows := []int{y}
	if p.rowBump {
		rows = append(rows, y+1)
	}
	for _, ry := range rows {
		for _, dx := range [3]int{0, -turn, turn} {
			if p.IsLegal(x+dx, ry, to) {
				return Cursor{X: x + dx, Y: ry, R: to}, true
			}
		}
	}
	return Cursor{X: x, Y: y, R: r}, false
}
