package editor

import "github.com/iw2rmb/textinput/model"

// ChangeEvent reports the editing state after an effective change.
type ChangeEvent struct {
	Session string
	Version uint64

	// State is what the plugin sends to the host for this version.
	State model.State
}

func buildChangeEvent(session string, m *model.Model) ChangeEvent {
	return ChangeEvent{
		Session: session,
		Version: m.Version(),
		State:   m.GetState(),
	}
}
