package editor

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/textinput/channel"
	"github.com/iw2rmb/textinput/internal/log"
)

func (m Model) updateKey(msg tea.KeyMsg) Model {
	if !m.focused || m.cfg.Plugin == nil {
		return m
	}
	p := m.cfg.Plugin
	ctx := context.Background()

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			_, m.err = p.HandlePaste(ctx, string(msg.Runes))
			m.logErr("paste")
		}
		return m
	}

	km := m.cfg.KeyMap
	ev, ok := channel.KeyEvent{}, true
	switch {
	case key.Matches(msg, km.ShiftLeft):
		ev = channel.KeyEvent{Key: channel.KeyLeft, Shift: true}
	case key.Matches(msg, km.ShiftRight):
		ev = channel.KeyEvent{Key: channel.KeyRight, Shift: true}
	case key.Matches(msg, km.Left):
		ev = channel.KeyEvent{Key: channel.KeyLeft}
	case key.Matches(msg, km.Right):
		ev = channel.KeyEvent{Key: channel.KeyRight}
	case key.Matches(msg, km.Home):
		ev = channel.KeyEvent{Key: channel.KeyHome}
	case key.Matches(msg, km.End):
		ev = channel.KeyEvent{Key: channel.KeyEnd}
	case key.Matches(msg, km.SelectAll):
		ev = channel.KeyEvent{Key: channel.KeySelectAll}
	case key.Matches(msg, km.Copy):
		ev = channel.KeyEvent{Key: channel.KeyCopy}
	case key.Matches(msg, km.Backspace):
		ev, ok = channel.KeyEvent{Key: channel.KeyBackspace}, !m.cfg.ReadOnly
	case key.Matches(msg, km.Delete):
		ev, ok = channel.KeyEvent{Key: channel.KeyDelete}, !m.cfg.ReadOnly
	case key.Matches(msg, km.Cut):
		ev = channel.KeyEvent{Key: channel.KeyCut}
		if m.cfg.ReadOnly {
			ev.Key = channel.KeyCopy
		}
	case key.Matches(msg, km.Paste):
		ev, ok = channel.KeyEvent{Key: channel.KeyPaste}, !m.cfg.ReadOnly
	case key.Matches(msg, km.Enter):
		ev, ok = channel.KeyEvent{Key: channel.KeyEnter}, !m.cfg.ReadOnly
	default:
		if !m.cfg.ReadOnly {
			m.typeRunes(ctx, msg)
		}
		return m
	}

	if ok {
		_, m.err = p.HandleKey(ctx, ev)
		m.logErr(ev.Key.String())
	}
	return m
}

func (m *Model) typeRunes(ctx context.Context, msg tea.KeyMsg) {
	var runes []rune
	switch {
	case msg.Type == tea.KeyTab:
		runes = []rune{'\t'}
	case msg.Type == tea.KeySpace:
		runes = []rune{' '}
	case msg.Type == tea.KeyRunes && !msg.Alt:
		runes = msg.Runes
	}
	for _, r := range runes {
		if _, m.err = m.cfg.Plugin.HandleChar(ctx, r); m.err != nil {
			m.logErr("char")
			return
		}
	}
}

func (m *Model) logErr(action string) {
	if m.err != nil {
		log.ErrorErr(log.CatEditor, "plugin call failed", m.err, "action", action)
	}
}
