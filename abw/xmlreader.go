package abw

import (
	"encoding/xml"
	"io"
)

// TokenKind discriminates the non-trivial token shapes the reader emits.
type TokenKind int

const (
	TokenStart TokenKind = iota
	TokenEnd
	TokenText
	TokenCdata
	TokenEOF
)

// Token is one non-trivial unit of the document, with whitespace-only text
// already suppressed.
type Token struct {
	Kind  TokenKind
	Tag   TagID
	Name  string
	Attrs map[string]string
	Text  string
	Empty bool // true when Kind == TokenStart and the element's end immediately follows its start (<x/> or <x></x>); no TokenEnd is emitted for it
}

// XmlReader is a pull parser over a (possibly inflated) Input. It exposes
// one token at a time and tracks enough position information to detect a
// stuck decoder.
type XmlReader struct {
	dec *xml.Decoder

	stashed []xml.Token // at most one token borrowed while peeking for self-close

	lastOffset int64
	stuckCount int
	stuck      bool
}

// NewXmlReader constructs a reader over input starting at its current
// position (the caller is responsible for seeking to 0 between passes).
func NewXmlReader(input Input) *XmlReader {
	dec := xml.NewDecoder(readerAdapter{input})
	dec.Strict = false
	dec.Entity = xml.HTMLEntity
	return &XmlReader{dec: dec, lastOffset: -1}
}

type readerAdapter struct{ Input }

func (r readerAdapter) Read(p []byte) (int, error) {
	return r.Input.Read(p)
}

// Stuck reports whether the watchdog has declared the stream unrecoverable.
func (r *XmlReader) Stuck() bool {
	return r.stuck
}

func (r *XmlReader) rawToken() (xml.Token, error) {
	if len(r.stashed) > 0 {
		tok := r.stashed[0]
		r.stashed = r.stashed[1:]
		return tok, nil
	}
	return r.dec.Token()
}

// Next returns the next non-trivial token, or a TokenEOF token once the
// stream is exhausted. If the reader becomes stuck, it returns
// ErrMalformedStream.
func (r *XmlReader) Next() (Token, error) {
	for {
		tok, err := r.rawToken()
		if err == io.EOF {
			return Token{Kind: TokenEOF}, nil
		}
		if err != nil {
			offset := r.dec.InputOffset()
			if offset == r.lastOffset {
				r.stuckCount++
			} else {
				r.stuckCount = 1
				r.lastOffset = offset
			}
			if r.stuckCount >= 2 {
				r.stuck = true
				return Token{}, ErrMalformedStream
			}
			continue
		}
		r.stuckCount = 0

		switch t := tok.(type) {
		case xml.StartElement:
			attrs := make(map[string]string, len(t.Attr))
			for _, a := range t.Attr {
				attrs[a.Name.Local] = a.Value
			}
			empty := r.isImmediatelyClosed(t.Name)
			return Token{Kind: TokenStart, Tag: LookupTag(t.Name.Local), Name: t.Name.Local, Attrs: attrs, Empty: empty}, nil
		case xml.EndElement:
			return Token{Kind: TokenEnd, Tag: LookupTag(t.Name.Local), Name: t.Name.Local}, nil
		case xml.CharData:
			text := string(t)
			if isAllWhitespace(text) {
				continue
			}
			return Token{Kind: TokenText, Text: text}, nil
		default:
			continue
		}
	}
}

// isImmediatelyClosed peeks one token ahead to detect a self-closing
// element (encoding/xml always synthesizes a matching EndElement for
// <tag/>, immediately following the StartElement with nothing between).
// Any token that is not that matching EndElement is stashed for the next
// call to rawToken.
func (r *XmlReader) isImmediatelyClosed(name xml.Name) bool {
	tok, err := r.dec.Token()
	if err != nil {
		return false
	}
	if end, ok := tok.(xml.EndElement); ok && end.Name == name {
		return true
	}
	r.stashed = append(r.stashed, tok)
	return false
}

func isAllWhitespace(s string) bool {
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r':
		default:
			return false
		}
	}
	return true
}
