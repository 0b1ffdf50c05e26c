package state

import "unicode"

// Line is the editable command text with a rune-based cursor.
type Line struct {
	Text   string
	Cursor int
}

// Set replaces the text and clamps the cursor into range.
func (l *Line) Set(text string, cursor int) {
	l.Text = text
	runes := []rune(text)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	l.Cursor = cursor
}

// Reset replaces the text and parks the cursor at the end.
func (l *Line) Reset(text string) {
	l.Set(text, len([]rune(text)))
}

// CursorPos returns the rune offset of the cursor.
func (l *Line) CursorPos() int {
	runes := []rune(l.Text)
	if l.Cursor < 0 {
		return 0
	}
	if l.Cursor > len(runes) {
		return len(runes)
	}
	return l.Cursor
}

// InsertText inserts text at the cursor position.
func (l *Line) InsertText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(l.Text)
	pos := l.CursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	l.Set(string(updated), pos+len(insert))
	return true
}

// DeleteRuneBackward deletes the rune before the cursor.
func (l *Line) DeleteRuneBackward() bool {
	runes := []rune(l.Text)
	pos := l.CursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1], runes[pos:]...)
	l.Set(string(updated), pos-1)
	return true
}

// DeleteWordBackward deletes the word preceding the cursor.
func (l *Line) DeleteWordBackward() bool {
	runes := []rune(l.Text)
	pos := l.CursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := wordStart(runes, pos)
	updated := append(runes[:i], runes[pos:]...)
	l.Set(string(updated), i)
	return true
}

// MoveStart moves the cursor to the start.
func (l *Line) MoveStart() bool {
	if l.CursorPos() == 0 {
		return false
	}
	l.Cursor = 0
	return true
}

// MoveEnd moves the cursor to the end.
func (l *Line) MoveEnd() bool {
	end := len([]rune(l.Text))
	if l.CursorPos() == end {
		return false
	}
	l.Cursor = end
	return true
}

// MoveWordBackward moves the cursor one word backward.
func (l *Line) MoveWordBackward() bool {
	runes := []rune(l.Text)
	pos := l.CursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := wordStart(runes, pos)
	if i == pos {
		return false
	}
	l.Cursor = i
	return true
}

// MoveWordForward moves the cursor one word forward.
func (l *Line) MoveWordForward() bool {
	runes := []rune(l.Text)
	pos := l.CursorPos()
	if pos >= len(runes) {
		return false
	}
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	if i == pos {
		return false
	}
	l.Cursor = i
	return true
}

// MoveRuneBackward moves the cursor one rune backward.
func (l *Line) MoveRuneBackward() bool {
	if l.CursorPos() == 0 {
		return false
	}
	l.Cursor = l.CursorPos() - 1
	return true
}

// MoveRuneForward moves the cursor one rune forward.
func (l *Line) MoveRuneForward() bool {
	pos := l.CursorPos()
	if pos >= len([]rune(l.Text)) {
		return false
	}
	l.Cursor = pos + 1
	return true
}

func wordStart(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}
