package style

// DateFormatPart is one component of a tokenized date/time format string,
// either a literal text run or a single format-token translation.
type DateFormatPart struct {
	IsText    bool
	Text      string
	ValueType string // "year", "month", "day", "day-of-week", "hours", "minutes", "seconds", "am-pm"
	Long      bool   // number:style=long
	Textual   bool   // number:textual=true (month spelled out)
}

// ConvertDateFormat tokenizes a printf-style date format string using the
// fixed token set %Y %y %B %b %h %m %e %d %A %a %H %I %M %S %p %%, folding
// runs of literal text between tokens into single text parts. Unknown
// '%'-escapes are dropped (their token contributes nothing); a literal '%'
// not starting a recognized escape is folded into the surrounding text via
// the '%%' escape.
func ConvertDateFormat(format string) []DateFormatPart {
	var parts []DateFormatPart
	var text []rune

	flushText := func() {
		if len(text) > 0 {
			parts = append(parts, DateFormatPart{IsText: true, Text: string(text)})
			text = text[:0]
		}
	}

	r := []rune(format)
	for i := 0; i < len(r); i++ {
		if r[i] != '%' || i+1 == len(r) {
			text = append(text, r[i])
			continue
		}
		i++
		ch := r[i]
		if ch == '%' {
			text = append(text, '%')
			continue
		}
		flushText()
		switch ch {
		case 'Y':
			parts = append(parts, DateFormatPart{ValueType: "year", Long: true})
		case 'y':
			parts = append(parts, DateFormatPart{ValueType: "year"})
		case 'B':
			parts = append(parts, DateFormatPart{ValueType: "month", Long: true, Textual: true})
		case 'b', 'h':
			parts = append(parts, DateFormatPart{ValueType: "month", Textual: true})
		case 'm':
			parts = append(parts, DateFormatPart{ValueType: "month"})
		case 'e':
			parts = append(parts, DateFormatPart{ValueType: "day", Long: true})
		case 'd':
			parts = append(parts, DateFormatPart{ValueType: "day"})
		case 'A':
			parts = append(parts, DateFormatPart{ValueType: "day-of-week", Long: true})
		case 'a':
			parts = append(parts, DateFormatPart{ValueType: "day-of-week"})
		case 'H':
			parts = append(parts, DateFormatPart{ValueType: "hours", Long: true})
		case 'I':
			parts = append(parts, DateFormatPart{ValueType: "hours"})
		case 'M':
			parts = append(parts, DateFormatPart{ValueType: "minutes", Long: true})
		case 'S':
			parts = append(parts, DateFormatPart{ValueType: "seconds", Long: true})
		case 'p':
			parts = append(parts, DateFormatPart{ValueType: "am-pm"})
		default:
			// unrecognized escape: contributes nothing
		}
	}
	flushText()
	return parts
}
