package channel

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/iw2rmb/textinput/internal/log"
	"github.com/iw2rmb/textinput/model"
)

// Sender delivers an encoded outbound message to the host.
type Sender interface {
	Send(ctx context.Context, message []byte) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, message []byte) error

func (f SenderFunc) Send(ctx context.Context, message []byte) error { return f(ctx, message) }

// Clipboard provides clipboard access for cut, copy and paste keys.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// Options configures a Plugin.
type Options struct {
	Sender    Sender
	Clipboard Clipboard

	// Decode is applied to every session's model.
	Decode model.DecodePolicy
}

// Plugin routes method calls and key input to the active session.
//
// A Plugin is driven by one owner at a time and is not safe for concurrent
// use.
type Plugin struct {
	opt Options

	model   *model.Model
	session string
	visible bool
}

func New(opt Options) *Plugin {
	return &Plugin{opt: opt}
}

// Model returns the active session's model, or nil without a client.
func (p *Plugin) Model() *model.Model { return p.model }

// Session returns the active session id, or "" without a client.
func (p *Plugin) Session() string { return p.session }

// Visible reports whether the host asked for the input to be shown.
func (p *Plugin) Visible() bool { return p.visible }

// HandleMessage decodes and dispatches one inbound message.
func (p *Plugin) HandleMessage(ctx context.Context, msg []byte) error {
	call, err := DecodeMethodCall(msg)
	if err != nil {
		log.ErrorErr(log.CatChannel, "decode method call", err)
		return err
	}
	return p.HandleMethodCall(ctx, call)
}

// HandleMethodCall applies one inbound method call.
func (p *Plugin) HandleMethodCall(ctx context.Context, call MethodCall) error {
	switch call.Method {
	case MethodSetClient:
		clientID, cfg, err := decodeSetClient(call.Args)
		if err != nil {
			log.ErrorErr(log.CatChannel, "setClient", err)
			return err
		}
		cfg.Decode = p.opt.Decode
		p.model = model.New(clientID, cfg)
		p.session = uuid.NewString()
		log.Info(log.CatChannel, "client set",
			"session", p.session,
			"client", clientID,
			"action", cfg.InputAction,
			"type", cfg.InputType.Name)
		return nil

	case MethodClearClient:
		if p.model != nil {
			log.Info(log.CatChannel, "client cleared", "session", p.session, "client", p.model.ClientID())
		}
		p.model = nil
		p.session = ""
		return nil

	case MethodSetEditingState:
		if p.model == nil {
			log.Warn(log.CatChannel, "setEditingState without client")
			return fmt.Errorf("%s: %w", call.Method, ErrNoClient)
		}
		st, err := decodeEditingState(call.Args)
		if err != nil {
			log.ErrorErr(log.CatChannel, "setEditingState", err, "session", p.session)
			return err
		}
		runes, err := model.Decode(st.text, p.opt.Decode)
		if err != nil {
			log.ErrorErr(log.CatChannel, "setEditingState", err, "session", p.session)
			return err
		}
		// The host reports "no selection" as -1; treat it as a caret at the end.
		if st.base < 0 || st.extent < 0 {
			st.base, st.extent = len(runes), len(runes)
		}
		if err := p.model.SetEditingStateRunes(st.base, st.extent, runes); err != nil {
			log.ErrorErr(log.CatChannel, "setEditingState", err, "session", p.session)
			return err
		}
		log.Debug(log.CatChannel, "editing state set",
			"session", p.session, "base", st.base, "extent", st.extent, "len", len(runes))
		return nil

	case MethodShow:
		p.visible = true
		return nil

	case MethodHide:
		p.visible = false
		return nil

	default:
		log.Warn(log.CatChannel, "unknown method", "method", call.Method)
		return fmt.Errorf("%w: %s", ErrUnknownMethod, call.Method)
	}
}

// HandleChar inserts r into the active session.
func (p *Plugin) HandleChar(ctx context.Context, r rune) (bool, error) {
	if p.model == nil {
		log.Debug(log.CatChannel, "char ignored without client")
		return false, nil
	}
	return p.notify(ctx, p.model.AddCharacter(r))
}

// HandlePaste inserts externally supplied text into the active session.
// CRLF and CR line endings are normalized to LF.
func (p *Plugin) HandlePaste(ctx context.Context, s string) (bool, error) {
	if p.model == nil {
		log.Debug(log.CatChannel, "paste ignored without client")
		return false, nil
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	changed, err := p.model.Insert(s)
	if err != nil {
		log.ErrorErr(log.CatChannel, "paste", err, "session", p.session)
		return false, err
	}
	return p.notify(ctx, changed)
}

// UpdateState sends the current editing state to the host.
func (p *Plugin) UpdateState(ctx context.Context) error {
	if p.model == nil {
		return ErrNoClient
	}
	return p.send(ctx, MethodUpdateEditingState, p.model.GetState())
}

func (p *Plugin) notify(ctx context.Context, changed bool) (bool, error) {
	if !changed {
		return false, nil
	}
	return true, p.UpdateState(ctx)
}

func (p *Plugin) send(ctx context.Context, method string, args any) error {
	if p.opt.Sender == nil {
		return nil
	}
	msg, err := EncodeMethodCall(method, args)
	if err != nil {
		log.ErrorErr(log.CatChannel, "encode outbound", err, "method", method)
		return err
	}
	if err := p.opt.Sender.Send(ctx, msg); err != nil {
		log.ErrorErr(log.CatChannel, "send outbound", err, "method", method, "session", p.session)
		return fmt.Errorf("send %s: %w", method, err)
	}
	log.Debug(log.CatChannel, "sent", "method", method, "session", p.session, "bytes", len(msg))
	return nil
}
