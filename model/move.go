package model

type MoveDir int

const (
	DirBack MoveDir = iota
	DirForward
	DirBeginning
	DirEnd
)

type Move struct {
	Dir    MoveDir
	Extend bool // if true, extends the selection from the directional cursor
}

// Move dispatches to the navigation primitive described by mv and reports
// whether the visible selection changed.
//
// Extend is ignored for DirBeginning and DirEnd.
func (m *Model) Move(mv Move) bool {
	switch mv.Dir {
	case DirBack:
		if mv.Extend {
			return m.MoveSelectBack()
		}
		return m.MoveCursorBack()
	case DirForward:
		if mv.Extend {
			return m.MoveSelectForward()
		}
		return m.MoveCursorForward()
	case DirBeginning:
		v := m.version
		m.MoveCursorToBeginning()
		return m.version != v
	case DirEnd:
		v := m.version
		m.MoveCursorToEnd()
		return m.version != v
	default:
		return false
	}
}

func (m *Model) MoveCursorToBeginning() {
	change := m.beginChange(OpMove)
	m.collapse(0)
	m.commitChange(change)
}

func (m *Model) MoveCursorToEnd() {
	change := m.beginChange(OpMove)
	m.collapse(len(m.text))
	m.commitChange(change)
}

// MoveCursorForward collapses an active selection onto its extent, or moves
// the caret one codepoint forward.
func (m *Model) MoveCursorForward() bool {
	change := m.beginChange(OpMove)
	switch {
	case m.hasSelection():
		m.collapse(m.extent)
	case m.extent < len(m.text):
		m.collapse(m.extent + 1)
	default:
		return false
	}
	m.commitChange(change)
	return true
}

// MoveCursorBack collapses an active selection onto its base, or moves the
// caret one codepoint back.
func (m *Model) MoveCursorBack() bool {
	change := m.beginChange(OpMove)
	switch {
	case m.hasSelection():
		m.collapse(m.base)
	case m.base > 0:
		m.collapse(m.base - 1)
	default:
		return false
	}
	m.commitChange(change)
	return true
}

// MoveSelectForward moves the end held by the directional cursor forward.
//
// While the base end is being dragged, the selection shrinks from the front;
// otherwise the extent grows toward the end of the text.
func (m *Model) MoveSelectForward() bool {
	change := m.beginChange(OpMove)
	switch {
	case m.hasSelection() && m.cursor == m.base && m.base < len(m.text):
		m.base++
		m.cursor = m.base
	case m.extent < len(m.text):
		m.extent++
		m.cursor = m.extent
	default:
		return false
	}
	m.commitChange(change)
	return true
}

// MoveSelectBack mirrors MoveSelectForward: while the extent end is being
// dragged the selection shrinks from the back, otherwise the base grows
// toward the start of the text.
func (m *Model) MoveSelectBack() bool {
	change := m.beginChange(OpMove)
	switch {
	case m.hasSelection() && m.cursor == m.extent && m.extent > 0:
		m.extent--
		m.cursor = m.extent
	case m.base > 0:
		m.base--
		m.cursor = m.base
	default:
		return false
	}
	m.commitChange(change)
	return true
}
