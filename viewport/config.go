package viewport

// ChangeFunc is invoked when the active viewport changes. active is the
// newly classified viewport; previous is the one it replaced, nil when no
// prior classification exists. initial is true only for the one-time fire
// requested via FireOnChangeOnInit, which bypasses the changed-name gate.
type ChangeFunc func(active Viewport, previous *Viewport, width, height int, initial bool)

// Config configures a Tracker. The zero value is usable: unset fields are
// filled from DefaultConfig by Initialize.
type Config struct {
	// OnChange is called synchronously whenever the active viewport's name
	// changes. Default: no-op.
	OnChange ChangeFunc

	// FireOnChangeOnInit requests one unconditional OnChange invocation
	// during Initialize, with initial=true. Default: false.
	FireOnChangeOnInit bool

	// Viewports is the breakpoint ladder, sorted ascending by MinWidth with
	// a 0 floor. Default: DefaultViewports.
	Viewports []Viewport
}

// DefaultConfig returns the configuration used for fields left unset.
func DefaultConfig() Config {
	return Config{
		OnChange:           func(Viewport, *Viewport, int, int, bool) {},
		FireOnChangeOnInit: false,
		Viewports:          DefaultViewports(),
	}
}

// withDefaults fills unset fields from DefaultConfig. Recognized fields are
// exactly OnChange, FireOnChangeOnInit and Viewports; a set field replaces
// the default wholesale.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.OnChange == nil {
		c.OnChange = def.OnChange
	}
	if c.Viewports == nil {
		c.Viewports = def.Viewports
	}
	return c
}
