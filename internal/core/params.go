package core

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
)

// ParameterControl describes an adjustable parameter that should be exposed on
// the control panel. Steps and bounds are optional.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step int

	Min    int
	Max    int
	HasMin bool
	HasMax bool
}

// Clamp limits v to the control's bounds.
func (c ParameterControl) Clamp(v int) int {
	if c.HasMin && v < c.Min {
		return c.Min
	}
	if c.HasMax && v > c.Max {
		return c.Max
	}
	return v
}

// ParameterControlsProvider exposes the list of panel-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// IntParameterSetter allows panel interactions to update integer parameters.
type IntParameterSetter interface {
	IntParameter(key string) (int, bool)
	SetIntParameter(key string, value int) bool
}
