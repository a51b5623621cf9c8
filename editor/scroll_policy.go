package editor

import tea "github.com/charmbracelet/bubbletea"

// ScrollPolicy controls whether the viewport may scroll away from the caret.
type ScrollPolicy int

const (
	// ScrollAllowManual lets the mouse wheel scroll the viewport.
	ScrollAllowManual ScrollPolicy = iota
	// ScrollFollowCursorOnly ignores wheel events; only caret moves scroll.
	ScrollFollowCursorOnly
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.cfg.ScrollPolicy == ScrollFollowCursorOnly && isWheel(msg) {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func isWheel(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}
