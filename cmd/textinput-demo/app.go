package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/textinput/editor"
	"github.com/iw2rmb/textinput/internal/log"
)

const statusLines = 4 + maxOutbound

type appKeys struct {
	Quit   key.Binding
	Reset  key.Binding
	Toggle key.Binding
}

func defaultAppKeys() appKeys {
	return appKeys{
		Quit:   key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
		Reset:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset text")),
		Toggle: key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open/close client")),
	}
}

// hostSyncMsg asks the editor to pick up state changed by the host.
type hostSyncMsg struct{}

type app struct {
	host   *host
	editor editor.Model
	keys   appKeys
	help   help.Model
	err    error

	subtle lipgloss.Style
	width  int
}

func newApp(h *host, ed editor.Model) app {
	return app{
		host:   h,
		editor: ed,
		keys:   defaultAppKeys(),
		help:   help.New(),
		subtle: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

func (a app) Init() tea.Cmd { return nil }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.help.Width = msg.Width
		a.editor = a.editor.SetSize(msg.Width, editorHeight(msg.Height))
		return a, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Reset):
			a.err = a.host.reset(context.Background())
			return a.sync()
		case key.Matches(msg, a.keys.Toggle):
			a.err = a.host.toggle(context.Background())
			return a.sync()
		}
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	if err := a.editor.Err(); err != nil {
		a.err = err
	}
	return a, cmd
}

func (a app) sync() (tea.Model, tea.Cmd) {
	if a.err != nil {
		log.ErrorErr(log.CatApp, "host call", a.err)
	}
	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(hostSyncMsg{})
	return a, cmd
}

func (a app) View() string {
	return a.editor.View() + "\n" + a.status()
}

func (a app) status() string {
	lines := make([]string, 0, statusLines)

	head := fmt.Sprintf("changes: %d  version: %d", a.host.changes, a.host.last.Version)
	if s := a.host.plugin.Session(); s != "" {
		head += "  session: " + s[:8]
	} else {
		head += "  no client"
	}
	lines = append(lines, head)

	if a.err != nil {
		lines = append(lines, "error: "+a.err.Error())
	} else {
		lines = append(lines, "")
	}

	lines = append(lines, a.subtle.Render("outbound:"))
	for i := 0; i < maxOutbound; i++ {
		if i >= len(a.host.sent) {
			lines = append(lines, "")
			continue
		}
		out := a.host.sent[len(a.host.sent)-1-i]
		lines = append(lines, truncate(out.method+" "+out.raw, a.width))
	}

	lines = append(lines, a.help.ShortHelpView(append(editor.DefaultKeyMap().ShortHelp(),
		a.keys.Reset, a.keys.Toggle, a.keys.Quit)))
	return strings.Join(lines, "\n")
}

func truncate(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r)) > width {
		r = r[:len(r)-1]
	}
	return string(r)
}

func editorHeight(total int) int {
	h := total - statusLines - 1
	if h < 0 {
		return 0
	}
	return h
}
