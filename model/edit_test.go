package model

import (
	"errors"
	"testing"
)

func TestModel_AddCharacter_AppendsFromEmpty(t *testing.T) {
	m := New(1, Config{})

	if !m.AddCharacter('a') || !m.AddCharacter('b') {
		t.Fatalf("expected AddCharacter to report change")
	}
	if got, want := m.Text(), "ab"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if m.Base() != 2 || m.Extent() != 2 || m.SelectionCursor() != 2 {
		t.Fatalf("positions=(%d,%d,%d), want (2,2,2)", m.Base(), m.Extent(), m.SelectionCursor())
	}
}

func TestModel_AddCharacter_ReplacesSelection(t *testing.T) {
	m := newWithState(t, "hello", 1, 4)

	m.AddCharacter('i')
	if got, want := m.Text(), "hio"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if m.Base() != 2 || m.Extent() != 2 {
		t.Fatalf("selection=(%d,%d), want (2,2)", m.Base(), m.Extent())
	}
}

func TestModel_AddCharacter_RejectsInvalidRune(t *testing.T) {
	m := newWithState(t, "ab", 1, 1)
	v := m.Version()

	for _, r := range []rune{0xD800, 0x110000, -1} {
		if m.AddCharacter(r) {
			t.Fatalf("AddCharacter(%U) reported change", r)
		}
	}
	if got, want := m.Text(), "ab"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got := m.Version(); got != v {
		t.Fatalf("version=%d, want %d", got, v)
	}
}

func TestModel_Insert(t *testing.T) {
	m := newWithState(t, "ad", 1, 1)

	changed, err := m.Insert("bc")
	if err != nil || !changed {
		t.Fatalf("Insert=(%v, %v), want (true, nil)", changed, err)
	}
	if got, want := m.Text(), "abcd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if m.Base() != 3 || m.Extent() != 3 {
		t.Fatalf("selection=(%d,%d), want (3,3)", m.Base(), m.Extent())
	}
}

func TestModel_Insert_ReplacesSelection(t *testing.T) {
	m := newWithState(t, "hello world", 6, 11)

	if _, err := m.Insert("there"); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if got, want := m.Text(), "hello there"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if m.Base() != 11 || m.Extent() != 11 {
		t.Fatalf("selection=(%d,%d), want (11,11)", m.Base(), m.Extent())
	}
}

func TestModel_Insert_EmptyIsNoOp(t *testing.T) {
	m := newWithState(t, "hello", 1, 3)
	v := m.Version()

	changed, err := m.Insert("")
	if err != nil || changed {
		t.Fatalf("Insert=(%v, %v), want (false, nil)", changed, err)
	}
	if got, want := m.SelectedText(), "el"; got != want {
		t.Fatalf("selected=%q, want %q", got, want)
	}
	if got := m.Version(); got != v {
		t.Fatalf("version=%d, want %d", got, v)
	}
}

func TestModel_Insert_MalformedStrict(t *testing.T) {
	m := newWithState(t, "hello", 1, 3)

	changed, err := m.Insert("x\xc3")
	if !errors.Is(err, ErrInvalidUTF8) || changed {
		t.Fatalf("Insert=(%v, %v), want (false, %v)", changed, err, ErrInvalidUTF8)
	}
	if got, want := m.Text(), "hello"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestModel_Insert_MalformedReplace(t *testing.T) {
	m := New(1, Config{Decode: DecodeReplace})

	changed, err := m.Insert("x\xffy")
	if err != nil || !changed {
		t.Fatalf("Insert=(%v, %v), want (true, nil)", changed, err)
	}
	if got, want := m.Text(), "x�y"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := m.Extent(), 3; got != want {
		t.Fatalf("extent=%d, want %d", got, want)
	}
}

func TestModel_Insert_NonBMPRoundTrip(t *testing.T) {
	in := "a😀b𝄞"
	m := New(1, Config{})

	if _, err := m.Insert(in); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if got, want := m.Len(), 4; got != want {
		t.Fatalf("len=%d, want %d", got, want)
	}
	st := m.GetState()
	if got := st.Editing.Text; got != in {
		t.Fatalf("state text=%q, want %q", got, in)
	}
	if got := []byte(st.Editing.Text); string(got) != string([]byte(in)) {
		t.Fatalf("state bytes=%x, want %x", got, []byte(in))
	}
	if got, want := st.Editing.SelectionExtent, 4; got != want {
		t.Fatalf("extent=%d, want %d", got, want)
	}
}

func TestModel_Backspace(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		base, extent int
		wantChanged  bool
		wantText     string
		wantPos      int
	}{
		{name: "select all", text: "hello", base: 0, extent: 5, wantChanged: true, wantText: "", wantPos: 0},
		{name: "caret mid", text: "hello", base: 3, extent: 3, wantChanged: true, wantText: "helo", wantPos: 2},
		{name: "caret start", text: "hello", base: 0, extent: 0, wantChanged: false, wantText: "hello", wantPos: 0},
		{name: "empty", text: "", base: 0, extent: 0, wantChanged: false, wantText: "", wantPos: 0},
		{name: "non-bmp", text: "a😀", base: 2, extent: 2, wantChanged: true, wantText: "a", wantPos: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newWithState(t, tt.text, tt.base, tt.extent)
			if got := m.Backspace(); got != tt.wantChanged {
				t.Fatalf("changed=%v, want %v", got, tt.wantChanged)
			}
			if got := m.Text(); got != tt.wantText {
				t.Fatalf("text=%q, want %q", got, tt.wantText)
			}
			if m.Base() != tt.wantPos || m.Extent() != tt.wantPos {
				t.Fatalf("selection=(%d,%d), want (%d,%d)", m.Base(), m.Extent(), tt.wantPos, tt.wantPos)
			}
		})
	}
}

func TestModel_Delete(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		base, extent int
		wantChanged  bool
		wantText     string
		wantPos      int
	}{
		{name: "selection", text: "hello", base: 1, extent: 3, wantChanged: true, wantText: "hlo", wantPos: 1},
		{name: "caret mid", text: "hello", base: 1, extent: 1, wantChanged: true, wantText: "hllo", wantPos: 1},
		{name: "caret end", text: "hello", base: 5, extent: 5, wantChanged: false, wantText: "hello", wantPos: 5},
		{name: "empty", text: "", base: 0, extent: 0, wantChanged: false, wantText: "", wantPos: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newWithState(t, tt.text, tt.base, tt.extent)
			if got := m.Delete(); got != tt.wantChanged {
				t.Fatalf("changed=%v, want %v", got, tt.wantChanged)
			}
			if got := m.Text(); got != tt.wantText {
				t.Fatalf("text=%q, want %q", got, tt.wantText)
			}
			if m.Base() != tt.wantPos || m.Extent() != tt.wantPos {
				t.Fatalf("selection=(%d,%d), want (%d,%d)", m.Base(), m.Extent(), tt.wantPos, tt.wantPos)
			}
		})
	}
}

func TestModel_Cut(t *testing.T) {
	m := newWithState(t, "hello world", 0, 5)

	cut := m.Cut()
	if got, want := string(cut), "hello"; got != want {
		t.Fatalf("cut=%q, want %q", got, want)
	}
	if got, want := m.Text(), " world"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if m.Base() != 0 || m.Extent() != 0 {
		t.Fatalf("selection=(%d,%d), want (0,0)", m.Base(), m.Extent())
	}
}

func TestModel_Cut_EmptySelection(t *testing.T) {
	m := newWithState(t, "hello", 2, 2)
	v := m.Version()

	if cut := m.Cut(); len(cut) != 0 {
		t.Fatalf("cut=%q, want empty", string(cut))
	}
	if got, want := m.Text(), "hello"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got := m.Version(); got != v {
		t.Fatalf("version=%d, want %d", got, v)
	}
	if _, ok := m.LastChange(); !ok {
		t.Fatalf("expected last change from SetEditingState to remain")
	}
}

func TestModel_SelectAll(t *testing.T) {
	m := newWithState(t, "hello", 2, 2)

	if !m.SelectAll() {
		t.Fatalf("expected SelectAll to report change")
	}
	if m.Base() != 0 || m.Extent() != 5 || m.SelectionCursor() != 5 {
		t.Fatalf("positions=(%d,%d,%d), want (0,5,5)", m.Base(), m.Extent(), m.SelectionCursor())
	}
}

func TestModel_SelectAll_Empty(t *testing.T) {
	m := New(1, Config{})

	if m.SelectAll() {
		t.Fatalf("expected SelectAll on empty text to report no change")
	}
	if m.Base() != 0 || m.Extent() != 0 {
		t.Fatalf("selection=(%d,%d), want (0,0)", m.Base(), m.Extent())
	}
}
