package effects

import "math"

// CurveKind names a size curve shape. Curve evaluation is dispatched by kind
// in Offset, keeping effect definitions pure data.
type CurveKind string

const (
	CurveWave   CurveKind = "wave"
	CurveRise   CurveKind = "rise"
	CurveFall   CurveKind = "fall"
	CurvePulse  CurveKind = "pulse"
	CurveZigzag CurveKind = "zigzag"
)

// Offset computes the font size offset in pixels for the character at
// charIndex among totalNonSpace non-space characters.
//
// charIndex counts only non-space characters; spaces never advance the
// curve. For monotonic curves the progress fraction is charIndex over
// totalNonSpace-1, with the denominator floored at 1 so single-character
// and empty texts evaluate to the start-of-curve value instead of NaN.
func Offset(kind CurveKind, charIndex, totalNonSpace int, opts Options) float64 {
	opts = opts.Clamped()
	amp := float64(opts.Intensity)

	span := totalNonSpace - 1
	if span < 1 {
		span = 1
	}
	progress := float64(charIndex) / float64(span)

	switch kind {
	case CurveWave:
		return math.Sin(float64(charIndex)*0.9) * amp * 1.6
	case CurveRise:
		return progress * amp * 2.4
	case CurveFall:
		return (1 - progress) * amp * 2.4
	case CurvePulse:
		return math.Abs(math.Sin(float64(charIndex)*0.7)) * amp * 2.0
	case CurveZigzag:
		if charIndex%2 == 0 {
			return amp * 1.2
		}
		return -amp * 1.2
	default:
		return 0
	}
}
