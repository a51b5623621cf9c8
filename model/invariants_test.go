package model

import (
	"testing"

	"pgregory.net/rapid"
)

func checkInvariants(t *rapid.T, m *Model) {
	n := m.Len()
	if m.Base() < 0 || m.Base() > n {
		t.Fatalf("base %d outside [0,%d]", m.Base(), n)
	}
	if m.Extent() < 0 || m.Extent() > n {
		t.Fatalf("extent %d outside [0,%d]", m.Extent(), n)
	}
	if c := m.SelectionCursor(); c != m.Base() && c != m.Extent() {
		t.Fatalf("cursor %d not in {base %d, extent %d}", c, m.Base(), m.Extent())
	}
}

func TestModel_InvariantsHoldUnderRandomOperations(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := New(1, Config{})
		text := rapid.StringOf(rapid.RuneFrom([]rune{'a', 'b', 'é', '😀', '\n'})).Draw(t, "text")
		n := len([]rune(text))
		extent := rapid.IntRange(0, n).Draw(t, "extent")
		base := rapid.IntRange(0, extent).Draw(t, "base")
		if err := m.SetEditingState(base, extent, text); err != nil {
			t.Fatalf("SetEditingState: %v", err)
		}
		checkInvariants(t, m)

		steps := rapid.IntRange(1, 60).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			before := m.GetState()
			v := m.Version()
			var changed bool
			switch rapid.IntRange(0, 12).Draw(t, "op") {
			case 0:
				changed = m.AddCharacter(rapid.RuneFrom([]rune{'x', 'ß', '𝄞'}).Draw(t, "rune"))
			case 1:
				changed, _ = m.Insert(rapid.StringOf(rapid.RuneFrom([]rune{'y', '😀'})).Draw(t, "insert"))
			case 2:
				changed = m.Backspace()
			case 3:
				changed = m.Delete()
			case 4:
				changed = len(m.Cut()) > 0
			case 5:
				changed = m.SelectAll()
			case 6:
				m.MoveCursorToBeginning()
				changed = m.Version() != v
			case 7:
				m.MoveCursorToEnd()
				changed = m.Version() != v
			case 8:
				changed = m.MoveCursorForward()
			case 9:
				changed = m.MoveCursorBack()
			case 10:
				changed = m.MoveSelectForward()
			case 11:
				changed = m.MoveSelectBack()
			case 12:
				m.DeleteSelected()
				changed = m.Version() != v
			}
			checkInvariants(t, m)
			if !changed && m.GetState() != before {
				t.Fatalf("state changed without a change report: %+v -> %+v", before, m.GetState())
			}
		}
	})
}

func TestModel_CutRestoresWithInsert(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringOf(rapid.RuneFrom([]rune{'a', 'é', '😀'})).Draw(t, "text")
		n := len([]rune(text))
		extent := rapid.IntRange(0, n).Draw(t, "extent")
		base := rapid.IntRange(0, extent).Draw(t, "base")

		m := New(1, Config{})
		if err := m.SetEditingState(base, extent, text); err != nil {
			t.Fatalf("SetEditingState: %v", err)
		}
		selected := m.SelectedText()
		cut := m.Cut()
		if string(cut) != selected {
			t.Fatalf("cut=%q, want %q", string(cut), selected)
		}
		if _, err := m.Insert(string(cut)); err != nil {
			t.Fatalf("Insert: %v", err)
		}
		if m.Text() != text {
			t.Fatalf("text=%q, want %q", m.Text(), text)
		}
	})
}
