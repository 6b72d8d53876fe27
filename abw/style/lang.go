package style

import (
	"strings"

	"golang.org/x/text/language"
)

// LangTag is the informally parsed decomposition of an AbiWord `lang`
// attribute value. The grammar is not BCP 47: it is a small heuristic
// over '-'/'_'-separated segments -- lowercase 2-3 letters is a language,
// a following uppercase 2-letter segment is a country, anything else is a
// script, and a later uppercase 2-letter segment after a script is still a
// country.
type LangTag struct {
	Language string
	Country  string
	Script   string
}

// ParseLang decomposes a lang attribute value per the heuristic above. It
// returns the zero LangTag if the first segment does not look like a
// language code.
func ParseLang(s string) LangTag {
	segs := strings.FieldsFunc(s, func(r rune) bool { return r == '-' || r == '_' })
	var tag LangTag
	if len(segs) == 0 || !isLowerLen(segs[0], 2, 3) {
		return tag
	}
	tag.Language = segs[0]

	if len(segs) > 1 {
		if isUpperLen(segs[1], 2, 2) {
			tag.Country = segs[1]
		} else {
			tag.Script = segs[1]
		}
	}
	if len(segs) > 2 && tag.Script != "" {
		if isUpperLen(segs[2], 2, 2) {
			tag.Country = segs[2]
		}
	}
	return tag
}

func isLowerLen(s string, min, max int) bool {
	if len(s) < min || len(s) > max {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

func isUpperLen(s string, min, max int) bool {
	if len(s) < min || len(s) > max {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// Tag builds a golang.org/x/text/language.Tag from the parsed components,
// for consumers that want a canonical BCP 47 tag rather than the raw
// decomposition. It returns language.Und if Language is empty or the
// components do not form a valid tag.
func (t LangTag) Tag() language.Tag {
	if t.Language == "" {
		return language.Und
	}
	parts := []string{t.Language}
	if t.Script != "" {
		parts = append(parts, t.Script)
	}
	if t.Country != "" {
		parts = append(parts, t.Country)
	}
	tag, err := language.Parse(strings.Join(parts, "-"))
	if err != nil {
		return language.Und
	}
	return tag
}
