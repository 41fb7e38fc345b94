package heatmap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChangeColor_Neutral(t *testing.T) {
	// Zero current value always renders the neutral shade, whatever the
	// reference says.
	cv := CellValues{Current: 0, Reference: 20, Change: -1}
	assert.Equal(t, changeScale.at(neutralChange).Hex(), changeColor(cv).Hex())

	cv = CellValues{Current: 0, Reference: 0, Change: math.NaN()}
	assert.Equal(t, changeScale.at(neutralChange).Hex(), changeColor(cv).Hex())
}

func TestChangeColor_Indeterminate(t *testing.T) {
	cv := CellValues{Current: 10, Reference: 0, Change: math.Inf(1)}
	assert.Equal(t, changeScale.at(indeterminateChange).Hex(), changeColor(cv).Hex())

	cv = CellValues{Current: -10, Reference: 0, Change: math.Inf(-1)}
	assert.Equal(t, changeScale.at(indeterminateChange).Hex(), changeColor(cv).Hex())
}

func TestChangeColor_Clamped(t *testing.T) {
	// A 300% drop colors exactly like a 100% drop.
	big := CellValues{Current: 10, Reference: 40, Change: -3}
	one := CellValues{Current: 10, Reference: 20, Change: -1}
	assert.Equal(t, changeColor(one).Hex(), changeColor(big).Hex())

	big = CellValues{Current: 40, Reference: 10, Change: 3}
	one = CellValues{Current: 20, Reference: 10, Change: 1}
	assert.Equal(t, changeColor(one).Hex(), changeColor(big).Hex())
}

func TestChangeColor_Endpoints(t *testing.T) {
	// The clamp keeps rendered cells off the scale extremes: change -1
	// sits a third of the way up the red..yellow segment, not at red.
	down := changeColor(CellValues{Current: 0.5, Reference: 1, Change: -1}).Hex()
	assert.NotEqual(t, changeScale.at(-1.5).Hex(), down)
	assert.NotEqual(t, changeScale.at(0).Hex(), down)

	neutral := changeColor(CellValues{Current: 10, Reference: 10, Change: 0}).Hex()
	assert.Equal(t, changeScale.at(0).Hex(), neutral)
}

func TestGradientAt(t *testing.T) {
	// Outside the stop range the gradient saturates at the end colors.
	assert.Equal(t, changeScale.at(-1.5).Hex(), changeScale.at(-99).Hex())
	assert.Equal(t, changeScale.at(1.5).Hex(), changeScale.at(99).Hex())

	// Exact stops come back unblended.
	assert.Equal(t, "#ffffbf", changeScale.at(0).Hex())
	assert.Equal(t, "#ff0000", changeScale.at(-1.5).Hex())
	assert.Equal(t, "#008000", changeScale.at(1.5).Hex())
}

func TestHeatScale(t *testing.T) {
	hs := heatScale{min: 0, max: 100}

	assert.Equal(t, bluesScale.at(0).Hex(), hs.color(0).Hex())
	// The top of the domain maps to the compressed end of the ramp, not
	// the darkest blue.
	assert.Equal(t, bluesScale.at(heatCompression).Hex(), hs.color(100).Hex())
	assert.NotEqual(t, bluesScale.at(1).Hex(), hs.color(100).Hex())
}

func TestHeatScale_DegenerateDomain(t *testing.T) {
	hs := heatScale{min: 42, max: 42}
	assert.Equal(t, bluesScale.at(0).Hex(), hs.color(42).Hex())
}

func TestColorFor_Dispatch(t *testing.T) {
	cv := CellValues{Current: 50, Reference: 100, Change: -0.5}
	hs := heatScale{min: 0, max: 100}

	assert.Equal(t, changeColor(cv).Hex(), colorFor(ColorByChange, cv, hs).Hex())
	assert.Equal(t, hs.color(50).Hex(), colorFor(ColorByHeatmap, cv, hs).Hex())
}

func TestTextColorFor(t *testing.T) {
	assert.Equal(t, "white", textColorFor(mustHex("#08306b")))
	assert.Equal(t, "black", textColorFor(mustHex("#ffffbf")))
}
