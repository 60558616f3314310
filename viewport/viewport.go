// Package viewport classifies terminal dimensions into named, ordered
// breakpoint buckets and reports when the active bucket changes.
package viewport

// Viewport is one entry in an ordered breakpoint ladder. A viewport is
// active when its MinWidth is the largest threshold not exceeding the
// current width.
type Viewport struct {
	// Name uniquely identifies the viewport within its ladder.
	Name string `json:"name"`

	// MinWidth is the inclusive lower bound, in columns.
	MinWidth int `json:"min_width"`

	// Meta carries caller-defined data. The tracker never reads it.
	Meta map[string]string `json:"meta,omitempty"`
}

// DefaultViewports returns the standard five-step ladder. The ladder must be
// sorted ascending by MinWidth and should start at 0 so every width
// classifies; the tracker assumes both and validates neither.
func DefaultViewports() []Viewport {
	return []Viewport{
		{Name: "xs", MinWidth: 0},
		{Name: "sm", MinWidth: 576},
		{Name: "md", MinWidth: 768},
		{Name: "lg", MinWidth: 992},
		{Name: "xl", MinWidth: 1200},
	}
}

// TerminalViewports returns a ladder scaled to terminal columns rather than
// display pixels: an 80-column classic terminal is compact, 120 standard,
// 160 wide.
func TerminalViewports() []Viewport {
	return []Viewport{
		{Name: "tiny", MinWidth: 0},
		{Name: "compact", MinWidth: 80},
		{Name: "standard", MinWidth: 120},
		{Name: "wide", MinWidth: 160},
	}
}

// classify scans the ladder from the highest threshold down and returns the
// first viewport whose MinWidth does not exceed width, or nil if none
// qualifies (possible only with a ladder that has no 0 floor).
func classify(ladder []Viewport, width int) *Viewport {
	for i := len(ladder) - 1; i >= 0; i-- {
		if ladder[i].MinWidth <= width {
			vp := ladder[i]
			return &vp
		}
	}
	return nil
}

// find resolves an identifier to a viewport. An int matches MinWidth, a
// string matches Name. Scans from the end like classify; names are unique so
// direction only matters for fidelity with classification order. Returns nil
// for an unresolved identifier or an unsupported type.
func find(ladder []Viewport, id any) *Viewport {
	switch v := id.(type) {
	case int:
		for i := len(ladder) - 1; i >= 0; i-- {
			if ladder[i].MinWidth == v {
				vp := ladder[i]
				return &vp
			}
		}
	case string:
		for i := len(ladder) - 1; i >= 0; i-- {
			if ladder[i].Name == v {
				vp := ladder[i]
				return &vp
			}
		}
	}
	return nil
}
