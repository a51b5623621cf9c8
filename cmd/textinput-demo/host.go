package main

import (
	"context"
	"fmt"

	"github.com/iw2rmb/textinput/channel"
	"github.com/iw2rmb/textinput/editor"
	"github.com/iw2rmb/textinput/internal/config"
	"github.com/iw2rmb/textinput/internal/log"
)

const maxOutbound = 5

type outbound struct {
	method string
	raw    string
}

// host plays the framework side of the channel: it issues method calls to
// the plugin and records what the plugin sends back.
type host struct {
	cfg config.Config

	plugin   *channel.Plugin
	attached bool

	sent    []outbound
	changes int
	last    editor.ChangeEvent
}

func newHost(cfg config.Config) *host {
	return &host{cfg: cfg}
}

// Send implements channel.Sender.
func (h *host) Send(_ context.Context, msg []byte) error {
	call, err := channel.DecodeMethodCall(msg)
	if err != nil {
		return fmt.Errorf("host: %w", err)
	}
	h.sent = append(h.sent, outbound{method: call.Method, raw: call.Args.Raw})
	if len(h.sent) > maxOutbound {
		h.sent = h.sent[len(h.sent)-maxOutbound:]
	}
	return nil
}

func (h *host) recordChange(ev editor.ChangeEvent) {
	h.changes++
	h.last = ev
}

func (h *host) call(ctx context.Context, method string, args any) error {
	msg, err := channel.EncodeMethodCall(method, args)
	if err != nil {
		return err
	}
	return h.plugin.HandleMessage(ctx, msg)
}

// open attaches a new client and pushes the configured text with the caret
// at the end.
func (h *host) open(ctx context.Context, p *channel.Plugin) error {
	h.plugin = p
	setClient := []any{h.cfg.Client, map[string]any{
		"inputAction": h.cfg.InputAction,
		"inputType":   map[string]any{"name": h.cfg.InputType},
	}}
	if err := h.call(ctx, channel.MethodSetClient, setClient); err != nil {
		return err
	}
	h.attached = true
	if err := h.reset(ctx); err != nil {
		return err
	}
	return h.call(ctx, channel.MethodShow, nil)
}

// reset replaces the session text with the configured text.
func (h *host) reset(ctx context.Context) error {
	return h.call(ctx, channel.MethodSetEditingState, map[string]any{
		"text":            h.cfg.Text,
		"selectionBase":   -1,
		"selectionExtent": -1,
	})
}

// toggle clears the client when one is attached and reopens it otherwise.
func (h *host) toggle(ctx context.Context) error {
	if !h.attached {
		return h.open(ctx, h.plugin)
	}
	h.attached = false
	log.Info(log.CatApp, "closing client", "client", h.cfg.Client)
	return h.call(ctx, channel.MethodClearClient, nil)
}
