package pxlmath

import (
	"math"

	"github.com/chewxy/math32"
)

const (
	// Epsilon is the float32 machine epsilon (FLT_EPSILON). Squared
	// magnitudes below it are treated as zero length.
	Epsilon float32 = 0x1p-23
	Pi      float32 = 3.14159265359
	HalfPi  float32 = 1.57079632679
	Deg2Rad float32 = 0.01745329252
	Rad2Deg float32 = 57.295779513
)

// Inf returns positive infinity.
func Inf() float32 {
	return math32.Inf(1)
}

// NaN returns an IEEE 754 "not-a-number" value.
func NaN() float32 {
	return math32.NaN()
}

// RSqrt returns 1/sqrt(x).
func RSqrt(x float32) float32 {
	return 1 / math32.Sqrt(x)
}

// FastRSqrt approximates 1/sqrt(x) with the 0x5f3759df bit trick and one
// Newton-Raphson step. For positive x the result is bit-identical to the
// classic routine; its relative error stays under 0.2%. Zero yields +Inf and
// negative or NaN input yields NaN, the same as RSqrt.
func FastRSqrt(x float32) float32 {
	switch {
	case x == 0:
		return math32.Inf(1)
	case x < 0 || math32.IsNaN(x):
		return math32.NaN()
	}
	i := int32(math.Float32bits(x))
	i = 0x5f3759df - (i >> 1)
	y := math.Float32frombits(uint32(i))
	// The conversion stops the compiler fusing the step into an FMA.
	return y * (1.5 - float32(0.5*x*y*y))
}

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, x))
}

// Lerp interpolates between a and b; t=0 gives a, t=1 gives b.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

func approx(a, b, eps float32) bool {
	return math32.Abs(a-b) <= eps
}

func bitsEqual(a, b float32) bool {
	return math.Float32bits(a) == math.Float32bits(b)
}
