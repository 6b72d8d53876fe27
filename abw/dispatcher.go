package abw

import (
	"encoding/base64"
	"strings"

	"github.com/pgavlin/abiword-kit/abw/list"
	"github.com/pgavlin/abiword-kit/abw/style"
	"github.com/sirupsen/logrus"
)

// Dispatcher drives the two-pass parse: a styles/data pre-pass followed
// by the content pass, both walking the same (possibly inflated) input
// from its start.
type Dispatcher struct {
	log *logrus.Logger
}

// NewDispatcher returns a Dispatcher that logs debug-level diagnostics
// (unknown tags, unknown field types) to log. A nil log
// defaults to logrus.StandardLogger().
func NewDispatcher(log *logrus.Logger) *Dispatcher {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Dispatcher{log: log}
}

// Parse runs both passes over input and streams the resulting event
// sequence to consumer. It returns false (with a non-nil error) if either
// pass fails; whatever output the content pass had already buffered
// before the failure is not delivered, since OutputBuffer.Write only runs
// after a fully successful pass two.
func (d *Dispatcher) Parse(input Input, consumer Consumer) (bool, error) {
	dec := NewDecompressor(input)

	styles, err := d.runStylesPass(dec)
	if err != nil {
		return false, err
	}

	if _, err := dec.Seek(0, SeekSet); err != nil {
		return false, ErrMalformedStream
	}

	content, err := d.runContentPass(dec, styles)
	if err != nil {
		return false, err
	}

	content.Out.Write(consumer)
	return true, nil
}

func (d *Dispatcher) runStylesPass(input Input) (*StylesCollector, error) {
	reader := NewXmlReader(input)
	collector := NewStylesCollector(d.log)

	var dataName, dataMime string
	var dataBuf strings.Builder
	var dataBase64 bool
	inData := false

	for {
		tok, err := reader.Next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokenEOF {
			break
		}
		switch tok.Kind {
		case TokenStart:
			switch tok.Tag {
			case TagTable:
				collector.OpenTable()
			case TagCell:
				collector.OpenCell(tok.Attrs["props"])
			case TagD:
				inData = true
				dataName = tok.Attrs["name"]
				dataMime = tok.Attrs["mime-type"]
				dataBase64 = findBool(tok.Attrs["base64"])
				dataBuf.Reset()
				if tok.Empty {
					collector.CollectData(dataName, dataMime, decodeData(dataBuf.String(), dataBase64))
					inData = false
				}
			case TagL:
				id, _ := findInt(tok.Attrs["id"])
				parentID, _ := findInt(tok.Attrs["parentid"])
				start, _ := findInt(tok.Attrs["start-value"])
				kind := list.Unordered
				if n, ok := findInt(tok.Attrs["type"]); ok && n != 0 {
					kind = list.Ordered
				}
				collector.CollectList(uint32(id), kind, tok.Attrs["list-decimal"], tok.Attrs["list-delim"], uint32(parentID), start)
			}
		case TokenEnd:
			switch tok.Tag {
			case TagTable:
				collector.CloseTable()
			case TagCell:
				collector.CloseCell()
			case TagD:
				collector.CollectData(dataName, dataMime, decodeData(dataBuf.String(), dataBase64))
				inData = false
			}
		case TokenText:
			if inData {
				dataBuf.WriteString(tok.Text)
			}
		}
	}
	if reader.Stuck() {
		return nil, ErrMalformedStream
	}
	return collector, nil
}

// findBool matches ABWParser.cpp's findBool grammar: true/yes (any case
// variant the source recognizes) are truthy, everything else is falsy.
func findBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "yes":
		return true
	default:
		return false
	}
}

func decodeData(raw string, isBase64 bool) []byte {
	if !isBase64 {
		return []byte(raw)
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	return decoded
}

func (d *Dispatcher) runContentPass(input Input, styles *StylesCollector) (*ContentCollector, error) {
	reader := NewXmlReader(input)
	collector := NewContentCollector(d.log, make(style.Table), styles.TableWidths, styles.ListElements, styles.Data)
	collector.openDocument()

	var metadataKey string
	var metadataText strings.Builder
	inMetadata := false

	for {
		tok, err := reader.Next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokenEOF {
			break
		}
		switch tok.Kind {
		case TokenStart:
			if tok.Tag == TagAbiword {
				collector.state.DocumentLang = tok.Attrs["lang"]
				continue
			}
			if tok.Tag == TagMetadata {
				inMetadata = true
				metadataKey = tok.Attrs["key"]
				metadataText.Reset()
				if tok.Empty {
					collector.SetMetadata(metadataKey, metadataText.String())
					inMetadata = false
				}
				continue
			}
			if err := d.dispatchStart(collector, tok); err != nil {
				return nil, err
			}
		case TokenEnd:
			if tok.Tag == TagMetadata {
				collector.SetMetadata(metadataKey, metadataText.String())
				inMetadata = false
				continue
			}
			d.dispatchEnd(collector, tok)
		case TokenText:
			if inMetadata {
				metadataText.WriteString(tok.Text)
				continue
			}
			collector.InsertText(tok.Text)
		}
	}
	if reader.Stuck() {
		return nil, ErrMalformedStream
	}
	collector.closePageSpan()
	collector.Out.Add(Element{Kind: EndDocument})
	return collector, nil
}

func (d *Dispatcher) dispatchStart(c *ContentCollector, tok Token) error {
	switch tok.Tag {
	case TagPagesize:
		c.CollectPageSize(tok.Attrs)
	case TagSection:
		if id, ok := findInt(tok.Attrs["id"]); ok {
			if typ := tok.Attrs["type"]; strings.HasPrefix(typ, "header") || strings.HasPrefix(typ, "footer") {
				c.CollectHeaderFooter(id, typ)
				return nil
			}
		}
		c.OpenSectionTag(tok.Attrs)
	case TagP:
		c.OpenParagraphOrListElement(tok.Attrs)
		if tok.Empty {
			c.CloseParagraphOrListElement()
		}
	case TagC:
		c.OpenSpanTag(tok.Attrs)
		if tok.Empty {
			c.CloseSpanTag()
		}
	case TagS:
		c.CollectTextStyle(tok.Attrs)
	case TagA:
		c.openSpan(nil)
		href := tok.Attrs["href"]
		c.Out.Add(Element{Kind: OpenLink, Props: Props{"xlink:href": href}})
		if tok.Empty {
			c.Out.Add(Element{Kind: CloseLink})
		}
	case TagFoot:
		c.OpenFootnote()
	case TagEndnote:
		c.OpenEndnote()
	case TagTable:
		c.OpenTable(tok.Attrs["props"])
	case TagCell:
		c.OpenCell(tok.Attrs["props"])
	case TagImage:
		c.InsertImage(tok.Attrs["dataid"])
	case TagBr:
		c.InsertLineBreak()
	case TagCbr:
		c.InsertColumnBreak()
	case TagPbr:
		c.InsertPageBreak()
	case TagField:
		c.OpenField(tok.Attrs["type"])
		if tok.Empty {
			c.CloseField()
		}
	case TagHistory, TagRevisions, TagIgnoredwords:
		// recognized, structurally skippable: no output
	case TagFrame:
		c.OpenFrame(tok.Attrs)
	case TagUnknown:
		c.log.WithField("name", tok.Name).Debug("abw: skipping unknown tag")
	}
	return nil
}

func (d *Dispatcher) dispatchEnd(c *ContentCollector, tok Token) {
	switch tok.Tag {
	case TagSection:
		if c.state.ParsingContext == ContextHeader || c.state.ParsingContext == ContextFooter {
			c.CloseHeaderFooter()
			return
		}
		c.CloseSectionTag()
	case TagP:
		c.CloseParagraphOrListElement()
	case TagC:
		c.CloseSpanTag()
	case TagA:
		c.Out.Add(Element{Kind: CloseLink})
	case TagFoot:
		c.CloseFootnote()
	case TagEndnote:
		c.CloseEndnote()
	case TagTable:
		c.CloseTable()
	case TagCell:
		c.CloseCell()
	case TagField:
		c.CloseField()
	case TagFrame:
		c.CloseFrame()
	}
}
