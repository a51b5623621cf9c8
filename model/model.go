package model

import "fmt"

// Model is the editing state of one input session: text, selection, and the
// directional cursor used by selection-extend gestures.
//
// A Model is owned by a single caller and is not safe for concurrent use.
type Model struct {
	text []rune

	base   int
	extent int
	cursor int

	clientID int
	cfg      Config

	version       uint64
	dirty         bool
	lastChange    Change
	hasLastChange bool
}

func New(clientID int, cfg Config) *Model {
	if !validDecodePolicy(cfg.Decode) {
		cfg.Decode = DecodeStrict
	}
	return &Model{
		clientID: clientID,
		cfg:      cfg,
	}
}

func (m *Model) ClientID() int { return m.clientID }

func (m *Model) Config() Config { return m.cfg }

func (m *Model) Version() uint64 { return m.version }

// Len returns the text length in codepoints.
func (m *Model) Len() int { return len(m.text) }

func (m *Model) Text() string { return Encode(m.text) }

// Runes returns a copy of the text.
func (m *Model) Runes() []rune { return append([]rune(nil), m.text...) }

func (m *Model) Base() int { return m.base }

func (m *Model) Extent() int { return m.extent }

// SelectionCursor returns the end of the selection that moved last during a
// selection-extend gesture. It always equals Base or Extent.
func (m *Model) SelectionCursor() int { return m.cursor }

func (m *Model) Selection() Selection {
	return Selection{Base: m.base, Extent: m.extent}
}

func (m *Model) hasSelection() bool { return m.base != m.extent }

// SetEditingState replaces the text and selection atomically.
//
// base must not exceed extent and extent must not exceed the codepoint
// length of text. On error the model is left unchanged.
func (m *Model) SetEditingState(base, extent int, text string) error {
	runes, err := Decode(text, m.cfg.Decode)
	if err != nil {
		return err
	}
	return m.SetEditingStateRunes(base, extent, runes)
}

// SetEditingStateRunes is SetEditingState for already-decoded text.
// The model keeps its own copy of text.
func (m *Model) SetEditingStateRunes(base, extent int, text []rune) error {
	if base < 0 || extent < 0 {
		return fmt.Errorf("%w: negative position (base=%d extent=%d)", ErrInvalidSelection, base, extent)
	}
	if base > extent {
		return fmt.Errorf("%w: base %d after extent %d", ErrInvalidSelection, base, extent)
	}
	if extent > len(text) {
		return fmt.Errorf("%w: extent %d beyond text length %d", ErrInvalidSelection, extent, len(text))
	}
	for i, r := range text {
		if !validRune(r) {
			return fmt.Errorf("%w: invalid codepoint %U at %d", ErrInvalidUTF8, r, i)
		}
	}

	change := m.beginChange(OpSetEditingState)
	if !runesEqual(m.text, text) {
		change.deleted = m.Text()
		change.inserted = Encode(text)
		m.text = append([]rune(nil), text...)
		m.dirty = true
	}
	m.base = base
	m.extent = extent
	m.cursor = extent
	m.commitChange(change)
	return nil
}

// GetSelected returns a copy of the selected codepoints, or an empty slice
// when the selection is collapsed.
func (m *Model) GetSelected() []rune {
	if !m.hasSelection() {
		return []rune{}
	}
	s := m.Selection()
	return append([]rune(nil), m.text[s.Start():s.End()]...)
}

// SelectedText is GetSelected encoded as UTF-8.
func (m *Model) SelectedText() string { return Encode(m.GetSelected()) }

// DeleteSelected removes the selected range and collapses the selection to
// its lower bound. With a collapsed selection it only collapses the
// directional cursor onto the caret.
func (m *Model) DeleteSelected() {
	change := m.beginChange(OpDeleteSelected)
	change.deleted = Encode(m.deleteSelected())
	m.commitChange(change)
}

func (m *Model) deleteSelected() []rune {
	var removed []rune
	s := m.Selection()
	start, end := clampInt(s.Start(), 0, len(m.text)), clampInt(s.End(), 0, len(m.text))
	if start < end {
		removed = m.splice(start, end, nil)
	}
	m.collapse(start)
	return removed
}

// splice replaces text[start:end] with ins and returns the removed runes.
// Positions are not adjusted; callers re-derive them.
func (m *Model) splice(start, end int, ins []rune) []rune {
	removed := append([]rune(nil), m.text[start:end]...)
	out := make([]rune, 0, len(m.text)-(end-start)+len(ins))
	out = append(out, m.text[:start]...)
	out = append(out, ins...)
	out = append(out, m.text[end:]...)
	m.text = out
	m.dirty = true
	return removed
}

// collapse places base, extent and the directional cursor at pos.
func (m *Model) collapse(pos int) {
	pos = clampInt(pos, 0, len(m.text))
	m.base = pos
	m.extent = pos
	m.cursor = pos
}

func runesEqual(a, b []rune) bool {
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
