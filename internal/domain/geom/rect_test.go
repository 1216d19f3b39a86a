package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Contains(t *testing.T) {
	r := NewRect(0, 0, 100, 40)

	tests := []struct {
		name   string
		x, y   int
		inside bool
	}{
		{"center", 50, 20, true},
		{"top-left corner", 0, 0, true},
		{"last pixel", 99, 39, true},
		{"right edge", 100, 20, false},
		{"bottom edge", 50, 40, false},
		{"left of rect", -1, 20, false},
		{"above rect", 50, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.inside, r.Contains(tt.x, tt.y))
		})
	}
}

func TestRect_CenterAndMoved(t *testing.T) {
	r := NewRect(10, 20, 100, 40)

	cx, cy := r.Center()
	assert.Equal(t, 60, cx)
	assert.Equal(t, 40, cy)

	m := r.Moved(0, 0)
	assert.Equal(t, Rect{X: 0, Y: 0, Width: 100, Height: 40}, m)
	assert.Equal(t, 10, r.X, "Moved must not modify the receiver")
}
