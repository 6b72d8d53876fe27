package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLangLanguageOnly(t *testing.T) {
	tag := ParseLang("en")
	assert.Equal(t, "en", tag.Language)
	assert.Empty(t, tag.Country)
	assert.Empty(t, tag.Script)
}

func TestParseLangLanguageAndCountry(t *testing.T) {
	tag := ParseLang("en-US")
	assert.Equal(t, "en", tag.Language)
	assert.Equal(t, "US", tag.Country)
	assert.Empty(t, tag.Script)
}

func TestParseLangLanguageScriptAndCountry(t *testing.T) {
	tag := ParseLang("zh-Hant-TW")
	assert.Equal(t, "zh", tag.Language)
	assert.Equal(t, "Hant", tag.Script)
	assert.Equal(t, "TW", tag.Country)
}

func TestParseLangRejectsNonLanguageFirstSegment(t *testing.T) {
	tag := ParseLang("NOTALANG")
	assert.Empty(t, tag.Language)
}

func TestParseLangTagRoundTrips(t *testing.T) {
	tag := ParseLang("en-US")
	assert.Equal(t, "en-US", tag.Tag().String())
}

func TestParseLangTagUndefinedForEmpty(t *testing.T) {
	tag := ParseLang("")
	assert.Equal(t, "und", tag.Tag().String())
}
