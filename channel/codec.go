package channel

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/iw2rmb/textinput/model"
)

// Name is the channel the plugin listens on.
const Name = "flutter/textinput"

const (
	MethodSetClient       = "TextInput.setClient"
	MethodClearClient     = "TextInput.clearClient"
	MethodSetEditingState = "TextInput.setEditingState"
	MethodShow            = "TextInput.show"
	MethodHide            = "TextInput.hide"

	MethodUpdateEditingState = "TextInputClient.updateEditingState"
	MethodPerformAction      = "TextInputClient.performAction"
)

const (
	keyInputAction   = "inputAction"
	keyInputTypeName = "inputType.name"

	keySelectionBase   = "selectionBase"
	keySelectionExtent = "selectionExtent"
	keyText            = "text"
)

// MultilineInputType is the input type name for which Enter inserts a
// newline instead of performing the input action.
const MultilineInputType = "TextInputType.multiline"

var (
	ErrNoClient      = errors.New("channel: no active client")
	ErrUnknownMethod = errors.New("channel: unknown method")
	ErrMalformedCall = errors.New("channel: malformed method call")
)

// MethodCall is a decoded inbound message.
type MethodCall struct {
	Method string
	Args   gjson.Result
}

// DecodeMethodCall parses a {"method", "args"} envelope.
func DecodeMethodCall(msg []byte) (MethodCall, error) {
	if !gjson.ValidBytes(msg) {
		return MethodCall{}, fmt.Errorf("%w: invalid json", ErrMalformedCall)
	}
	res := gjson.ParseBytes(msg)
	if !res.IsObject() {
		return MethodCall{}, fmt.Errorf("%w: envelope is not an object", ErrMalformedCall)
	}
	method := res.Get("method")
	if method.Type != gjson.String || method.String() == "" {
		return MethodCall{}, fmt.Errorf("%w: missing method", ErrMalformedCall)
	}
	return MethodCall{Method: method.String(), Args: res.Get("args")}, nil
}

// EncodeMethodCall builds a {"method", "args"} envelope. args is encoded
// with encoding/json.
func EncodeMethodCall(method string, args any) ([]byte, error) {
	raw, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("encode %s args: %w", method, err)
	}
	out, err := sjson.SetBytes([]byte(`{}`), "method", method)
	if err != nil {
		return nil, err
	}
	return sjson.SetRawBytes(out, "args", raw)
}

// decodeSetClient reads [clientId, {inputAction, inputType: {name}}].
func decodeSetClient(args gjson.Result) (int, model.Config, error) {
	if !args.IsArray() {
		return 0, model.Config{}, fmt.Errorf("%w: %s args must be an array", ErrMalformedCall, MethodSetClient)
	}
	parts := args.Array()
	if len(parts) != 2 {
		return 0, model.Config{}, fmt.Errorf("%w: %s expects 2 args, got %d", ErrMalformedCall, MethodSetClient, len(parts))
	}
	if parts[0].Type != gjson.Number {
		return 0, model.Config{}, fmt.Errorf("%w: client id must be a number", ErrMalformedCall)
	}
	if !parts[1].IsObject() {
		return 0, model.Config{}, fmt.Errorf("%w: client config must be an object", ErrMalformedCall)
	}
	cfg := model.Config{
		InputAction: parts[1].Get(keyInputAction).String(),
		InputType:   model.InputType{Name: parts[1].Get(keyInputTypeName).String()},
	}
	return int(parts[0].Int()), cfg, nil
}

type editingStateArgs struct {
	base, extent int
	text         string
}

// decodeEditingState reads {selectionBase, selectionExtent, text}.
func decodeEditingState(args gjson.Result) (editingStateArgs, error) {
	if !args.IsObject() {
		return editingStateArgs{}, fmt.Errorf("%w: %s args must be an object", ErrMalformedCall, MethodSetEditingState)
	}
	text := args.Get(keyText)
	if text.Type != gjson.String {
		return editingStateArgs{}, fmt.Errorf("%w: text must be a string", ErrMalformedCall)
	}
	out := editingStateArgs{text: text.String(), base: -1, extent: -1}
	if v := args.Get(keySelectionBase); v.Exists() {
		out.base = int(v.Int())
	}
	if v := args.Get(keySelectionExtent); v.Exists() {
		out.extent = int(v.Int())
	}
	return out, nil
}
