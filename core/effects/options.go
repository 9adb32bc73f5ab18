package effects

// Tunable parameter bounds. Values outside these ranges are clamped, never
// rejected: composition must not fail for any numeric input.
const (
	MinIntensity = 1
	MaxIntensity = 10
	MinBaseSize  = 8
	MaxBaseSize  = 100

	DefaultIntensity = 5
	DefaultBaseSize  = 16
)

// Options holds the tunable parameters shared by all effects.
// The zero value is usable: Clamped fills in defaults.
type Options struct {
	// Intensity scales curve amplitude, 1-10.
	Intensity int

	// BaseSize is the base font size in pixels before curve offsets.
	BaseSize int
}

// Clamped returns a copy with zero values defaulted and out-of-range values
// clamped into their valid bounds. Curve functions always receive clamped
// options, so they never have to re-validate.
func (o Options) Clamped() Options {
	if o.Intensity == 0 {
		o.Intensity = DefaultIntensity
	}
	o.Intensity = min(max(o.Intensity, MinIntensity), MaxIntensity)

	if o.BaseSize == 0 {
		o.BaseSize = DefaultBaseSize
	}
	o.BaseSize = min(max(o.BaseSize, MinBaseSize), MaxBaseSize)

	return o
}
