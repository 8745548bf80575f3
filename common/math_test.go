package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerp(t *testing.T) {
	tests := []struct {
		name    string
		a, b, t float64
		want    float64
	}{
		{"start", 10, 20, 0, 10},
		{"end", 10, 20, 1, 20},
		{"half", 10, 20, 0.5, 15},
		{"backwards", 20, 10, 0.25, 17.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Lerp(tt.a, tt.b, tt.t), 1e-9)
		})
	}
}

func TestSmoothed(t *testing.T) {
	s := Smoothed{Factor: 0.5}
	assert.Equal(t, 60.0, s.Add(60))
	assert.Equal(t, 45.0, s.Add(30))
	assert.Equal(t, 45.0, s.Value())
}
