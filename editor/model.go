package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/textinput/channel"
	"github.com/iw2rmb/textinput/model"
)

// Model is a Bubble Tea component that renders and drives a plugin session.
type Model struct {
	cfg Config

	focused bool

	viewport viewport.Model
	xOffset  int

	lastSession string
	lastVersion uint64

	err error
}

func New(cfg Config) Model {
	m := Model{
		cfg:      cfg.withDefaults(),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.syncFromPlugin()
	m.rebuildContent()
	return m
}

func (m Model) Plugin() *channel.Plugin { return m.cfg.Plugin }

// Err returns the error from the most recent plugin call, if any.
func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.followCursor()
	m.rebuildContent()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m = m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}

	// The host may also have changed the session through method calls.
	if m.syncFromPlugin() {
		m.followCursor()
		m.rebuildContent()
	}
	return m, nil
}

func (m Model) View() string { return m.viewport.View() }

func (m *Model) textModel() *model.Model {
	if m.cfg.Plugin == nil {
		return nil
	}
	return m.cfg.Plugin.Model()
}

// syncFromPlugin reports whether the session or its version changed since
// the last call, and fires OnChange for effective changes.
func (m *Model) syncFromPlugin() bool {
	var session string
	var version uint64
	tm := m.textModel()
	if tm != nil {
		session = m.cfg.Plugin.Session()
		version = tm.Version()
	}
	if session == m.lastSession && version == m.lastVersion {
		return false
	}
	sameSession := session == m.lastSession
	m.lastSession = session
	m.lastVersion = version
	if tm != nil && sameSession && m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(session, tm))
	}
	return true
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

// followCursor scrolls so the extent stays visible.
func (m *Model) followCursor() {
	tm := m.textModel()
	if tm == nil {
		m.xOffset = 0
		m.viewport.SetYOffset(0)
		return
	}
	row, line, col := caretLocation(tm)

	if w := m.contentWidth(); w > 0 {
		cell := cellOfCaret(line, col, m.cfg.TabWidth)
		if cell < m.xOffset {
			m.xOffset = cell
		} else if cell >= m.xOffset+w {
			m.xOffset = cell - w + 1
		}
	}

	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	// SetYOffset clamps against content height, so refresh content first.
	m.rebuildContent()
	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
	} else if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}
