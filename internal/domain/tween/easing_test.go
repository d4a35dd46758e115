package tween

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEasings_Endpoints(t *testing.T) {
	for name, e := range easingsByName {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, 0.0, e(0), 1e-9, "e(0) = 0")
			assert.InDelta(t, 1.0, e(1), 1e-9, "e(1) = 1")
		})
	}
}

func TestEasings_Monotonic(t *testing.T) {
	for name, e := range easingsByName {
		t.Run(name, func(t *testing.T) {
			prev := e(0)
			for i := 1; i <= 100; i++ {
				v := e(float64(i) / 100)
				assert.GreaterOrEqual(t, v, prev)
				prev = v
			}
		})
	}
}

func TestQuadraticInOut(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"start", 0.0, 0.0},
		{"quarter", 0.25, 0.125},
		{"midpoint", 0.5, 0.5},
		{"three quarters", 0.75, 0.875},
		{"end", 1.0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, QuadraticInOut(tt.input), 1e-9)
		})
	}
}

func TestCubicOut_AheadOfLinear(t *testing.T) {
	for p := 0.1; p < 1.0; p += 0.1 {
		assert.Greater(t, CubicOut(p), Linear(p))
	}
}

func TestByName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"tween.js style", "Quadratic.InOut", true},
		{"camel case", "QuadraticInOut", true},
		{"kebab case", "quadratic-in-out", true},
		{"snake case", "cubic_out", true},
		{"linear", "Linear", true},
		{"unknown", "Bounce.Out", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := ByName(tt.input)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.NotNil(t, e)
			} else {
				assert.Nil(t, e)
			}
		})
	}

	e, _ := ByName("Quadratic.InOut")
	assert.InDelta(t, QuadraticInOut(0.3), e(0.3), 1e-12)
}
