package model

// Op names the operation that produced a Change.
type Op string

const (
	OpSetEditingState Op = "setEditingState"
	OpDeleteSelected  Op = "deleteSelected"
	OpAddCharacter    Op = "addCharacter"
	OpInsert          Op = "insert"
	OpBackspace       Op = "backspace"
	OpDelete          Op = "delete"
	OpCut             Op = "cut"
	OpSelectAll       Op = "selectAll"
	OpMove            Op = "move"
)

// Change describes the most recent effective mutation.
//
// Deleted and Inserted hold the text removed from and added to the buffer;
// both are empty for selection-only changes.
type Change struct {
	Op              Op
	VersionBefore   uint64
	VersionAfter    uint64
	SelectionBefore Selection
	SelectionAfter  Selection
	Deleted         string
	Inserted        string
}

type changeBuilder struct {
	op              Op
	versionBefore   uint64
	selectionBefore Selection
	deleted         string
	inserted        string
}

// LastChange returns the most recent effective change.
func (m *Model) LastChange() (Change, bool) {
	if !m.hasLastChange {
		return Change{}, false
	}
	return m.lastChange, true
}

func (m *Model) beginChange(op Op) changeBuilder {
	m.dirty = false
	return changeBuilder{
		op:              op,
		versionBefore:   m.version,
		selectionBefore: m.Selection(),
	}
}

// commitChange bumps the version when the text or the visible selection
// differs from the state captured by beginChange.
func (m *Model) commitChange(cb changeBuilder) bool {
	sel := m.Selection()
	if !m.dirty && sel == cb.selectionBefore {
		return false
	}
	m.dirty = false
	m.version++
	m.lastChange = Change{
		Op:              cb.op,
		VersionBefore:   cb.versionBefore,
		VersionAfter:    m.version,
		SelectionBefore: cb.selectionBefore,
		SelectionAfter:  sel,
		Deleted:         cb.deleted,
		Inserted:        cb.inserted,
	}
	m.hasLastChange = true
	return true
}
