package tween

import (
	"math"
	"strings"
)

// Easing maps linear progress t in [0, 1] to eased progress.
// Every easing here satisfies e(0) = 0 and e(1) = 1.
type Easing func(t float64) float64

// Linear is the identity easing (constant speed)
func Linear(t float64) float64 {
	return t
}

// QuadraticIn starts slow and accelerates: t²
func QuadraticIn(t float64) float64 {
	return t * t
}

// QuadraticOut starts fast and decelerates: 1 - (1-t)²
func QuadraticOut(t float64) float64 {
	return t * (2 - t)
}

// QuadraticInOut accelerates until the midpoint, then decelerates
func QuadraticInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// CubicIn starts slow and accelerates: t³
func CubicIn(t float64) float64 {
	return t * t * t
}

// CubicOut starts fast and decelerates: 1 - (1-t)³
func CubicOut(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// CubicInOut is the cubic variant of QuadraticInOut
func CubicInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// ExpoOut decelerates sharply: 1 - 2^(-10t)
func ExpoOut(t float64) float64 {
	if t >= 1.0 {
		return 1.0
	}
	return 1 - math.Pow(2, -10*t)
}

var easingsByName = map[string]Easing{
	"linear":         Linear,
	"quadraticin":    QuadraticIn,
	"quadraticout":   QuadraticOut,
	"quadraticinout": QuadraticInOut,
	"cubicin":        CubicIn,
	"cubicout":       CubicOut,
	"cubicinout":     CubicInOut,
	"expoout":        ExpoOut,
}

// ByName looks up an easing by its configuration name.
// Matching ignores case, dots, dashes and underscores, so
// "Quadratic.InOut", "quadratic-in-out" and "QuadraticInOut" are equal.
func ByName(name string) (Easing, bool) {
	key := strings.Map(func(r rune) rune {
		switch r {
		case '.', '-', '_', ' ':
			return -1
		}
		return r
	}, strings.ToLower(name))

	e, ok := easingsByName[key]
	return e, ok
}
