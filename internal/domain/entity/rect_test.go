package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}

	assert.True(t, a.Overlaps(Rect{X: 5, Y: 5, W: 10, H: 10}))
	assert.False(t, a.Overlaps(Rect{X: 20, Y: 20, W: 10, H: 10}))
	assert.False(t, a.Overlaps(Rect{X: 10, Y: 0, W: 10, H: 10}), "touching edges do not overlap")
	assert.False(t, a.Overlaps(Rect{X: 0, Y: 10, W: 10, H: 10}), "touching edges do not overlap")
}

func TestDegenerateRectNeverOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	zeroW := Rect{X: 5, Y: 5, W: 0, H: 10}
	zeroH := Rect{X: 5, Y: 5, W: 10, H: 0}

	assert.False(t, a.Overlaps(zeroW))
	assert.False(t, zeroW.Overlaps(a))
	assert.False(t, a.Overlaps(zeroH))
}

func TestDepthsReportPenetrationPerSide(t *testing.T) {
	tile := Rect{X: 100, Y: 100, W: 32, H: 32}
	actor := Rect{X: 81, Y: 70, W: 24, H: 32}

	left, right, top, bottom := actor.Depths(tile)
	assert.Equal(t, 5.0, left)
	assert.Equal(t, 51.0, right)
	assert.Equal(t, 2.0, top)
	assert.Equal(t, 62.0, bottom)
}

func TestRightBottom(t *testing.T) {
	r := Rect{X: 3, Y: 4, W: 10, H: 20}
	assert.Equal(t, 13.0, r.Right())
	assert.Equal(t, 24.0, r.Bottom())
}
