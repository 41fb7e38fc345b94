package heatmap

// Mode identifies the active color encoding.
type Mode int

const (
	// ColorByChange colors cells by their relative change against the
	// reference row.
	ColorByChange Mode = iota
	// ColorByHeatmap colors cells by absolute value over the global
	// min/max of all rendered columns.
	ColorByHeatmap
)

// Next returns the other mode. The cycle has exactly two states.
func (m Mode) Next() Mode {
	if m == ColorByChange {
		return ColorByHeatmap
	}
	return ColorByChange
}

func (m Mode) String() string {
	if m == ColorByHeatmap {
		return "byHeatmap"
	}
	return "byChange"
}

// ModeState owns the mutable color mode of one rendered instance. It
// starts at ColorByChange and advances only while toggling is enabled.
type ModeState struct {
	mode   Mode
	toggle bool
}

// NewModeState returns the initial state for a rendered instance.
func NewModeState(toggleEnabled bool) *ModeState {
	return &ModeState{mode: ColorByChange, toggle: toggleEnabled}
}

// Current returns the active mode.
func (s *ModeState) Current() Mode {
	return s.mode
}

// Advance cycles to the next mode and returns it. When toggling is
// disabled it returns the current mode unchanged.
func (s *ModeState) Advance() Mode {
	if s.toggle {
		s.mode = s.mode.Next()
	}
	return s.mode
}
