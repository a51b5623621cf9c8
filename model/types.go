package model

// Selection is the raw selection pair. Either end may be the lower one.
type Selection struct {
	Base   int
	Extent int
}

// Start returns the lower bound of the selected range.
func (s Selection) Start() int { return minInt(s.Base, s.Extent) }

// End returns the upper bound of the selected range.
func (s Selection) End() int { return maxInt(s.Base, s.Extent) }

func (s Selection) IsCollapsed() bool {
	return s.Base == s.Extent
}

func (s Selection) Len() int {
	return s.End() - s.Start()
}

// InputType carries the keyboard type requested by the client.
type InputType struct {
	Name string
}

// Config is captured at construction and never changes for a session.
type Config struct {
	InputAction string
	InputType   InputType

	// Decode selects how malformed UTF-8 input is handled.
	Decode DecodePolicy
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
