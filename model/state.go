package model

import (
	"encoding/json"
	"fmt"
)

const (
	// ComposingNone marks the composing range as absent.
	ComposingNone = -1

	AffinityDownstream = "downstream"
)

// EditingState is the host-facing projection of a Model.
type EditingState struct {
	ComposingBase          int    `json:"composingBase"`
	ComposingExtent        int    `json:"composingExtent"`
	SelectionAffinity      string `json:"selectionAffinity"`
	SelectionBase          int    `json:"selectionBase"`
	SelectionExtent        int    `json:"selectionExtent"`
	SelectionIsDirectional bool   `json:"selectionIsDirectional"`
	Text                   string `json:"text"`
}

// State pairs the editing state with the session it belongs to.
//
// It encodes as the two-element JSON array [clientID, editingState].
type State struct {
	ClientID int
	Editing  EditingState
}

// GetState returns a snapshot of the current text and selection.
func (m *Model) GetState() State {
	return State{
		ClientID: m.clientID,
		Editing: EditingState{
			ComposingBase:          ComposingNone,
			ComposingExtent:        ComposingNone,
			SelectionAffinity:      AffinityDownstream,
			SelectionBase:          m.base,
			SelectionExtent:        m.extent,
			SelectionIsDirectional: false,
			Text:                   Encode(m.text),
		},
	}
}

func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{s.ClientID, s.Editing})
}

func (s *State) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return fmt.Errorf("model: state must be a 2-element array, got %d elements", len(raw))
	}
	var out State
	if err := json.Unmarshal(raw[0], &out.ClientID); err != nil {
		return err
	}
	if err := json.Unmarshal(raw[1], &out.Editing); err != nil {
		return err
	}
	*s = out
	return nil
}
