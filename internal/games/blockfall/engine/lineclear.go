package engine

// ClearResult describes a lock and the rows it cleared.
type ClearResult struct {
	// Locked holds the absolute cells merged into the field.
	Locked []Cell
	// Full is the number of rows cleared.
	Full int
	// Fulls lists the cleared rows by their pre-shift index, bottom first.
	Fulls []int
	// Shift maps every pre-shift row in [-Overhang, height) to its new row.
	// Cleared rows map into the overhang and are removed.
	Shift map[int]int
	// Topmost is height minus the number of rows that held cells before
	// the clear. It is only computed when Full > 0.
	Topmost int

	height int
}

// PerfectClear reports whether the clear left the field empty.
func (r ClearResult) PerfectClear() bool {
	return r.Full > 0 && r.Full+r.Topmost == r.height
}

// IsFull reports whether pre-shift row y was cleared.
func (r ClearResult) IsFull(y int) bool {
	for _, f := range r.Fulls {
		if f == y {
			return true
		}
	}
	return false
}

// Lock merges the active piece into the field at the cursor and removes
// completed rows, shifting everything above them down.
func (p *Playfield) Lock() ClearResult {
	res := ClearResult{
		Locked:  PieceCells(p.active, p.cursor),
		Topmost: p.height,
		height:  p.height,
	}
	for _, c := range res.Locked {
		p.field.Insert(c.X, c.Y)
		i := c.Y + Overhang
		if i < 0 || i >= len(p.rows) {
			continue
		}
		p.rows[i]++
		if p.rows[i] == p.width {
			res.Full++
		}
	}
	if res.Full == 0 {
		return res
	}

	res.Shift = make(map[int]int, p.height+Overhang)
	for y := p.height - 1; y >= -Overhang; y-- {
		i := y + Overhang
		nonEmpty := p.rows[i] != 0
		if p.rows[i] == p.width {
			res.Fulls = append(res.Fulls, y)
			res.Shift[y] = len(res.Fulls) - 1 - Overhang
		} else {
			p.rows[i+len(res.Fulls)] = p.rows[i]
			res.Shift[y] = y + len(res.Fulls)
		}
		if nonEmpty {
			res.Topmost--
		}
	}
	for i := 0; i < res.Full; i++ {
		p.rows[i] = 0
	}

	p.rebuild(res)
	return res
}

// rebuild moves every in-field cell by the shift map and drops cleared rows.
func (p *Playfield) rebuild(res ClearResult) {
	old := p.field.Cells()
	p.field.Clear()
	for _, c := range old {
		inField := c.X >= 0 && c.X < p.width && c.Y >= -Overhang && c.Y < p.height
		if !inField {
			p.field.Insert(c.X, c.Y)
			continue
		}
		if res.IsFull(c.Y) {
			continue
		}
		p.field.Insert(c.X, res.Shift[c.Y])
	}
}
