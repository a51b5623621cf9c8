// Package channel implements the text input plugin that sits between a host
// runtime and the editing model.
//
// Inbound method calls and outbound client messages are JSON objects of the
// form {"method": "...", "args": ...}. The plugin owns at most one active
// session; each session is backed by a model.Model.
package channel
