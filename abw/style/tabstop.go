package style

import "strings"

type TabAlign int

const (
	TabLeft TabAlign = iota
	TabCenter
	TabChar
	TabRight
)

type TabLeader int

const (
	TabLeaderNone TabLeader = iota
	TabLeaderDot
	TabLeaderDash
	TabLeaderUnderscore
)

// TabStop is one resolved entry of a paragraph's tabstops property.
type TabStop struct {
	PositionIn float64
	Align      TabAlign
	Leader     TabLeader
}

// ParseTabStops parses a ','-separated list of tab stop entries, each of
// the form "position/align-char[leader-digit]" (e.g. "2.5in/L1"). Entries
// that fail to parse are dropped; the rest of the list is still returned.
func ParseTabStops(s string) []TabStop {
	s = strings.Trim(s, ", ")
	if s == "" {
		return nil
	}
	var out []TabStop
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if ts, ok := ParseTabStop(entry); ok {
			out = append(out, ts)
		}
	}
	return out
}

// ParseTabStop parses a single "position/align-char[leader-digit]" entry.
// The position must be an absolute length (any unit ParseLength normalizes
// to inches); a bare number or a percentage is rejected.
func ParseTabStop(s string) (TabStop, bool) {
	s = strings.Trim(s, "/ ")
	if s == "" {
		return TabStop{}, false
	}
	parts := strings.SplitN(s, "/", 2)
	if len(parts) < 2 {
		return TabStop{}, false
	}
	posStr := strings.TrimSpace(parts[0])
	length, ok := ParseLength(posStr)
	if !ok || length.Unit != UnitIn {
		return TabStop{}, false
	}

	rest := strings.TrimSpace(parts[1])
	ts := TabStop{PositionIn: length.Value, Align: TabLeft}
	if rest != "" {
		switch rest[0] {
		case 'L':
			ts.Align = TabLeft
		case 'C':
			ts.Align = TabCenter
		case 'D':
			ts.Align = TabChar
		case 'R':
			ts.Align = TabRight
		default:
			ts.Align = TabLeft
		}
	}
	if len(rest) > 1 {
		switch rest[1] {
		case '3':
			ts.Leader = TabLeaderUnderscore
		case '2':
			ts.Leader = TabLeaderDash
		case '1':
			ts.Leader = TabLeaderDot
		}
	}
	return ts, true
}
