// Package editor provides a Bubble Tea component that acts as the platform
// input layer for a channel.Plugin.
//
// The component translates key messages into plugin key events and renders
// the active session's text, selection, and caret. It never edits text on
// its own: every mutation goes through the plugin so the host is notified.
package editor
