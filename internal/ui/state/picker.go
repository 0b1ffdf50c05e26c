package state

// Picker tracks which suggestion is highlighted.
type Picker struct {
	Items  []string
	Cursor int
}

// Reset swaps in a new suggestion list. The highlight returns to the first
// row whenever the list changes.
func (p *Picker) Reset(items []string) {
	if equalItems(p.Items, items) {
		p.clamp()
		return
	}
	p.Items = append([]string(nil), items...)
	p.Cursor = 0
}

// Selected returns the highlighted suggestion.
func (p *Picker) Selected() (string, bool) {
	if len(p.Items) == 0 {
		return "", false
	}
	p.clamp()
	return p.Items[p.Cursor], true
}

// MoveUp moves the highlight one row up.
func (p *Picker) MoveUp() bool {
	return p.moveBy(-1)
}

// MoveDown moves the highlight one row down.
func (p *Picker) MoveDown() bool {
	return p.moveBy(1)
}

// MoveHome moves the highlight to the first row.
func (p *Picker) MoveHome() bool {
	if len(p.Items) == 0 {
		p.Cursor = 0
		return false
	}
	old := p.Cursor
	p.Cursor = 0
	return old != p.Cursor
}

// MoveEnd moves the highlight to the last row.
func (p *Picker) MoveEnd() bool {
	n := len(p.Items)
	if n == 0 {
		p.Cursor = 0
		return false
	}
	old := p.Cursor
	p.Cursor = n - 1
	return old != p.Cursor
}

// Set moves the highlight to idx when it is in range.
func (p *Picker) Set(idx int) bool {
	if idx < 0 || idx >= len(p.Items) {
		return false
	}
	old := p.Cursor
	p.Cursor = idx
	return old != p.Cursor
}

func (p *Picker) moveBy(delta int) bool {
	if len(p.Items) == 0 {
		p.Cursor = 0
		return false
	}
	old := p.Cursor
	p.Cursor += delta
	p.clamp()
	return p.Cursor != old
}

func (p *Picker) clamp() {
	if p.Cursor < 0 {
		p.Cursor = 0
	}
	if n := len(p.Items); n > 0 && p.Cursor >= n {
		p.Cursor = n - 1
	}
	if len(p.Items) == 0 {
		p.Cursor = 0
	}
}

func equalItems(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
