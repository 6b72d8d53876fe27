package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePropString(t *testing.T) {
	props := ParsePropString("font-weight:bold; color:#ff0000 ;margin-top:1in")
	require.Len(t, props, 3)
	assert.Equal(t, "bold", props["font-weight"])
	assert.Equal(t, "#ff0000", props["color"])
	assert.Equal(t, "1in", props["margin-top"])
}

func TestParsePropStringDropsMalformedEntries(t *testing.T) {
	props := ParsePropString("font-weight:bold;;no-colon-here;:empty-key")
	require.Len(t, props, 1)
	assert.Equal(t, "bold", props["font-weight"])
}

func TestResolveWalksBasedOnChain(t *testing.T) {
	table := Table{
		"Normal": {Name: "Normal", Properties: PropMap{"font-size": "12pt"}},
		"Body Text": {
			Name:       "Body Text",
			BasedOn:    "Normal",
			Properties: PropMap{"margin-top": "1in"},
		},
	}

	resolved := Resolve(table, "Body Text")
	assert.Equal(t, "12pt", resolved.Properties["font-size"])
	assert.Equal(t, "1in", resolved.Properties["margin-top"])
	assert.Equal(t, 0, resolved.OutlineLevel)
}

func TestResolveChildOverridesParent(t *testing.T) {
	table := Table{
		"Normal": {Name: "Normal", Properties: PropMap{"font-size": "12pt"}},
		"Big":    {Name: "Big", BasedOn: "Normal", Properties: PropMap{"font-size": "24pt"}},
	}

	resolved := Resolve(table, "Big")
	assert.Equal(t, "24pt", resolved.Properties["font-size"])
}

func TestResolveBreaksCycles(t *testing.T) {
	table := Table{
		"A": {Name: "A", BasedOn: "B", Properties: PropMap{"x": "1"}},
		"B": {Name: "B", BasedOn: "A", Properties: PropMap{"y": "2"}},
	}

	resolved := Resolve(table, "A")
	assert.Equal(t, "1", resolved.Properties["x"])
	assert.Equal(t, "2", resolved.Properties["y"])
}

func TestResolveUnknownStyleIsEmptyOverlay(t *testing.T) {
	resolved := Resolve(Table{}, "Nonexistent")
	assert.Empty(t, resolved.Properties)
	assert.Equal(t, 0, resolved.OutlineLevel)
}

func TestResolveHeadingLevel(t *testing.T) {
	table := Table{"Heading 2": {Name: "Heading 2"}}
	resolved := Resolve(table, "Heading 2")
	assert.Equal(t, 2, resolved.OutlineLevel)
}

func TestResolveHeadingLevelOutOfRangeIsNotAHeading(t *testing.T) {
	table := Table{"Heading 10": {Name: "Heading 10"}}
	resolved := Resolve(table, "Heading 10")
	assert.Equal(t, 0, resolved.OutlineLevel)
}

func TestResolveIntoOverlaysExistingMap(t *testing.T) {
	table := Table{"Bold": {Name: "Bold", Properties: PropMap{"font-weight": "bold"}}}
	out := PropMap{"font-size": "10pt"}

	level := ResolveInto(table, "Bold", out)
	assert.Equal(t, 0, level)
	assert.Equal(t, "bold", out["font-weight"])
	assert.Equal(t, "10pt", out["font-size"])
}
