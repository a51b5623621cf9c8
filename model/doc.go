// Package model implements the codepoint-accurate text input state for a
// single input session.
//
// Positions are 0-based codepoint offsets into the current text.
// A selection is the unordered pair (Base, Extent); the selected range is
// half-open: [min(Base, Extent), max(Base, Extent)).
package model
