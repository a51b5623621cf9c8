package editor

import "github.com/iw2rmb/textinput/channel"

// Config configures the editor Model.
type Config struct {
	// Plugin owns the input session. Required.
	Plugin *channel.Plugin

	KeyMap KeyMap
	Style  Style

	ShowLineNums bool

	// ScrollPolicy defaults to ScrollAllowManual.
	ScrollPolicy ScrollPolicy

	// TabWidth is the tab stop distance in cells. Default: 4.
	TabWidth int

	// ReadOnly disables every key that would edit text. Navigation and copy
	// still work.
	ReadOnly bool

	// Placeholder is shown while the plugin has no active client.
	Placeholder string

	// OnChange is called once per effective change of the editing state.
	OnChange func(ChangeEvent)
}

func (c Config) withDefaults() Config {
	if c.TabWidth <= 0 {
		c.TabWidth = 4
	}
	if c.KeyMap.isZero() {
		c.KeyMap = DefaultKeyMap()
	}
	if c.Placeholder == "" {
		c.Placeholder = "no active input client"
	}
	return c
}
