package model

// AddCharacter replaces the active selection, if any, with r and places the
// caret after it. It reports false only when r is not a Unicode scalar value.
func (m *Model) AddCharacter(r rune) bool {
	if !validRune(r) {
		return false
	}
	m.insertRunes(OpAddCharacter, []rune{r})
	return true
}

// Insert decodes s and inserts it like AddCharacter. Empty input is a no-op.
// Malformed input under DecodeStrict returns ErrInvalidUTF8 and leaves the
// model unchanged.
func (m *Model) Insert(s string) (bool, error) {
	if s == "" {
		return false, nil
	}
	runes, err := Decode(s, m.cfg.Decode)
	if err != nil {
		return false, err
	}
	m.insertRunes(OpInsert, runes)
	return true, nil
}

func (m *Model) insertRunes(op Op, runes []rune) {
	change := m.beginChange(op)
	if m.hasSelection() {
		change.deleted = Encode(m.deleteSelected())
	}
	at := clampInt(m.extent, 0, len(m.text))
	m.splice(at, at, runes)
	m.collapse(at + len(runes))
	change.inserted = Encode(runes)
	m.commitChange(change)
}

// Backspace deletes the selection, or the codepoint before the caret.
func (m *Model) Backspace() bool {
	change := m.beginChange(OpBackspace)
	switch {
	case m.hasSelection():
		change.deleted = Encode(m.deleteSelected())
	case m.base > 0:
		at := clampInt(m.base, 1, len(m.text))
		change.deleted = Encode(m.splice(at-1, at, nil))
		m.collapse(at - 1)
	default:
		return false
	}
	m.commitChange(change)
	return true
}

// Delete deletes the selection, or the codepoint after the caret.
func (m *Model) Delete() bool {
	change := m.beginChange(OpDelete)
	switch {
	case m.hasSelection():
		change.deleted = Encode(m.deleteSelected())
	case m.base < len(m.text):
		at := clampInt(m.base, 0, len(m.text)-1)
		change.deleted = Encode(m.splice(at, at+1, nil))
		m.collapse(at)
	default:
		return false
	}
	m.commitChange(change)
	return true
}

// Cut removes the selection and returns it. With no selection it returns an
// empty slice and does not touch the model.
func (m *Model) Cut() []rune {
	if !m.hasSelection() {
		return []rune{}
	}
	change := m.beginChange(OpCut)
	cut := m.deleteSelected()
	change.deleted = Encode(cut)
	m.commitChange(change)
	return cut
}

// SelectAll selects the whole text and moves the directional cursor to its
// end. It reports false for empty text.
func (m *Model) SelectAll() bool {
	if len(m.text) == 0 {
		return false
	}
	change := m.beginChange(OpSelectAll)
	m.base = 0
	m.extent = len(m.text)
	m.cursor = m.extent
	m.commitChange(change)
	return true
}
