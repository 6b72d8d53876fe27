package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLengthInches(t *testing.T) {
	l, ok := ParseLength("1.5in")
	require.True(t, ok)
	assert.Equal(t, UnitIn, l.Unit)
	assert.InDelta(t, 1.5, l.Inches(), 1e-9)
}

func TestParseLengthCentimeters(t *testing.T) {
	l, ok := ParseLength("2.54cm")
	require.True(t, ok)
	assert.Equal(t, UnitIn, l.Unit)
	assert.InDelta(t, 1.0, l.Inches(), 1e-9)
}

func TestParseLengthPicaIsSixthInch(t *testing.T) {
	l, ok := ParseLength("6pi")
	require.True(t, ok)
	assert.InDelta(t, 1.0, l.Inches(), 1e-9)
}

func TestParseLengthPointAndPixelBothSeventySecondInch(t *testing.T) {
	pt, ok := ParseLength("72pt")
	require.True(t, ok)
	assert.InDelta(t, 1.0, pt.Inches(), 1e-9)

	px, ok := ParseLength("72px")
	require.True(t, ok)
	assert.InDelta(t, 1.0, px.Inches(), 1e-9)
}

func TestParseLengthBareNumberIsPercent(t *testing.T) {
	l, ok := ParseLength("150")
	require.True(t, ok)
	assert.Equal(t, UnitPercent, l.Unit)
	assert.InDelta(t, 1.5, l.Value, 1e-9)
}

func TestParseLengthPercentSign(t *testing.T) {
	l, ok := ParseLength("50%")
	require.True(t, ok)
	assert.Equal(t, UnitPercent, l.Unit)
	assert.InDelta(t, 0.5, l.Value, 1e-9)
}

func TestParseLengthRejectsUnknownUnit(t *testing.T) {
	_, ok := ParseLength("3furlongs")
	assert.False(t, ok)
}

func TestParseLengthRejectsEmptyAndGarbage(t *testing.T) {
	_, ok := ParseLength("")
	assert.False(t, ok)

	_, ok = ParseLength("not-a-number")
	assert.False(t, ok)
}
