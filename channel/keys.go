package channel

import (
	"context"

	"github.com/iw2rmb/textinput/internal/log"
	"github.com/iw2rmb/textinput/model"
)

// Key is a platform-independent editing key.
type Key int

const (
	KeyBackspace Key = iota
	KeyDelete
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeySelectAll
	KeyCut
	KeyCopy
	KeyPaste
	KeyEnter
)

func (k Key) String() string {
	switch k {
	case KeyBackspace:
		return "backspace"
	case KeyDelete:
		return "delete"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	case KeySelectAll:
		return "selectAll"
	case KeyCut:
		return "cut"
	case KeyCopy:
		return "copy"
	case KeyPaste:
		return "paste"
	case KeyEnter:
		return "enter"
	default:
		return "unknown"
	}
}

// KeyEvent is a key press. Shift extends the selection for Left and Right.
type KeyEvent struct {
	Key   Key
	Shift bool
}

// HandleKey applies ev to the active session and reports whether the editing
// state changed. Changes are sent to the host before returning.
func (p *Plugin) HandleKey(ctx context.Context, ev KeyEvent) (bool, error) {
	m := p.model
	if m == nil {
		log.Debug(log.CatChannel, "key ignored without client", "key", ev.Key)
		return false, nil
	}

	switch ev.Key {
	case KeyBackspace:
		return p.notify(ctx, m.Backspace())
	case KeyDelete:
		return p.notify(ctx, m.Delete())
	case KeyLeft:
		return p.notify(ctx, m.Move(model.Move{Dir: model.DirBack, Extend: ev.Shift}))
	case KeyRight:
		return p.notify(ctx, m.Move(model.Move{Dir: model.DirForward, Extend: ev.Shift}))
	case KeyHome:
		return p.notify(ctx, m.Move(model.Move{Dir: model.DirBeginning}))
	case KeyEnd:
		return p.notify(ctx, m.Move(model.Move{Dir: model.DirEnd}))
	case KeySelectAll:
		return p.notify(ctx, m.SelectAll())
	case KeyCopy:
		p.writeClipboard(m.SelectedText())
		return false, nil
	case KeyCut:
		cut := m.Cut()
		if len(cut) == 0 {
			return false, nil
		}
		p.writeClipboard(model.Encode(cut))
		return p.notify(ctx, true)
	case KeyPaste:
		if p.opt.Clipboard == nil {
			return false, nil
		}
		s, err := p.opt.Clipboard.ReadText()
		if err != nil {
			log.Warn(log.CatChannel, "clipboard read failed", "error", err)
			return false, nil
		}
		return p.HandlePaste(ctx, s)
	case KeyEnter:
		if m.Config().InputType.Name == MultilineInputType {
			return p.notify(ctx, m.AddCharacter('\n'))
		}
		return false, p.send(ctx, MethodPerformAction, []any{m.ClientID(), m.Config().InputAction})
	default:
		return false, nil
	}
}

// Clipboard failures never fail the key press.
func (p *Plugin) writeClipboard(s string) {
	if p.opt.Clipboard == nil || s == "" {
		return
	}
	if err := p.opt.Clipboard.WriteText(s); err != nil {
		log.Warn(log.CatChannel, "clipboard write failed", "error", err)
	}
}
