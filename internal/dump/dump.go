// Package dump implements a minimal structural Consumer used to observe
// the event sequence a Dispatcher emits, for the CLIs and for package
// tests. It is not a renderer: it records/prints the open/close/insert
// calls it receives, nothing more.
package dump

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/pgavlin/abiword-kit/abw"
)

// LoadInput reads the file at path and, if its XML prolog declares a
// non-UTF-8 encoding, transcodes it to UTF-8 before handing the bytes to
// an abw.Input. AbiWord documents are not guaranteed to be UTF-8 on disk
// (the format predates that becoming the default), and abw.XmlReader
// itself takes no position on source encoding, so this companion
// reader path is where that translation belongs: outside the core, at
// the boundary where bytes first enter it.
func LoadInput(path string) (abw.Input, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dump: read %s: %w", path, err)
	}

	reader, err := charset.NewReader(strings.NewReader(string(raw)), "")
	if err != nil {
		// Not a recognized/declared-encoding issue: use the raw bytes
		// as-is, matching the inflate-failure pass-through contract
		// abw.Decompressor uses for its own best-effort fallback.
		return abw.NewBytesInput(raw), nil
	}
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return abw.NewBytesInput(raw), nil
	}
	return abw.NewBytesInput(decoded), nil
}

// Event is one recorded Consumer call.
type Event struct {
	Name  string
	Props abw.Props
	Text  string
	ID    int
}

// Recorder is a Consumer that appends every call it receives to Events,
// in order. Used by package tests to assert on the emitted sequence
// without needing a real rendering backend.
type Recorder struct {
	Events []Event
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) record(name string, props abw.Props) {
	r.Events = append(r.Events, Event{Name: name, Props: props})
}

func (r *Recorder) OpenDocument(props abw.Props)  { r.record("open-document", props) }
func (r *Recorder) EndDocument()                  { r.record("end-document", nil) }
func (r *Recorder) OpenPageSpan(props abw.Props)   { r.record("open-page-span", props) }
func (r *Recorder) ClosePageSpan()                 { r.record("close-page-span", nil) }
func (r *Recorder) OpenSection(props abw.Props)    { r.record("open-section", props) }
func (r *Recorder) CloseSection()                  { r.record("close-section", nil) }

func (r *Recorder) OpenHeader(props abw.Props, id int) {
	r.Events = append(r.Events, Event{Name: "open-header", Props: props, ID: id})
}
func (r *Recorder) CloseHeader() { r.record("close-header", nil) }

func (r *Recorder) OpenFooter(props abw.Props, id int) {
	r.Events = append(r.Events, Event{Name: "open-footer", Props: props, ID: id})
}
func (r *Recorder) CloseFooter() { r.record("close-footer", nil) }

func (r *Recorder) OpenParagraph(props abw.Props) { r.record("open-paragraph", props) }
func (r *Recorder) CloseParagraph()               { r.record("close-paragraph", nil) }

func (r *Recorder) OpenListElement(props abw.Props)          { r.record("open-list-element", props) }
func (r *Recorder) CloseListElement()                        { r.record("close-list-element", nil) }
func (r *Recorder) OpenOrderedListLevel(props abw.Props)     { r.record("open-ordered-list-level", props) }
func (r *Recorder) CloseOrderedListLevel()                   { r.record("close-ordered-list-level", nil) }
func (r *Recorder) OpenUnorderedListLevel(props abw.Props)   { r.record("open-unordered-list-level", props) }
func (r *Recorder) CloseUnorderedListLevel()                 { r.record("close-unordered-list-level", nil) }

func (r *Recorder) OpenSpan(props abw.Props) { r.record("open-span", props) }
func (r *Recorder) CloseSpan()               { r.record("close-span", nil) }
func (r *Recorder) OpenLink(props abw.Props) { r.record("open-link", props) }
func (r *Recorder) CloseLink()               { r.record("close-link", nil) }

func (r *Recorder) OpenTable(props abw.Props)    { r.record("open-table", props) }
func (r *Recorder) CloseTable()                  { r.record("close-table", nil) }
func (r *Recorder) OpenTableRow(props abw.Props) { r.record("open-table-row", props) }
func (r *Recorder) CloseTableRow()               { r.record("close-table-row", nil) }
func (r *Recorder) OpenTableCell(props abw.Props) { r.record("open-table-cell", props) }
func (r *Recorder) CloseTableCell()               { r.record("close-table-cell", nil) }
func (r *Recorder) InsertCoveredTableCell(props abw.Props) {
	r.record("insert-covered-table-cell", props)
}

func (r *Recorder) OpenFrame(props abw.Props) { r.record("open-frame", props) }
func (r *Recorder) CloseFrame()               { r.record("close-frame", nil) }
func (r *Recorder) OpenTextBox(props abw.Props) { r.record("open-text-box", props) }
func (r *Recorder) CloseTextBox()               { r.record("close-text-box", nil) }

func (r *Recorder) OpenFootnote(props abw.Props) { r.record("open-footnote", props) }
func (r *Recorder) CloseFootnote()               { r.record("close-footnote", nil) }
func (r *Recorder) OpenEndnote(props abw.Props)  { r.record("open-endnote", props) }
func (r *Recorder) CloseEndnote()                { r.record("close-endnote", nil) }

func (r *Recorder) InsertText(text string) {
	r.Events = append(r.Events, Event{Name: "insert-text", Text: text})
}
func (r *Recorder) InsertTab()       { r.record("insert-tab", nil) }
func (r *Recorder) InsertSpace()     { r.record("insert-space", nil) }
func (r *Recorder) InsertLineBreak() { r.record("insert-line-break", nil) }
func (r *Recorder) InsertField(props abw.Props)         { r.record("insert-field", props) }
func (r *Recorder) InsertBinaryObject(props abw.Props)  { r.record("insert-binary-object", props) }

var _ abw.Consumer = (*Recorder)(nil)

// Printer is a Consumer that writes one indented line per event to W, in
// the style of a structural trace (not a rendered document): enough to
// eyeball correct nesting and event ordering by hand.
type Printer struct {
	W     io.Writer
	depth int
}

func NewPrinter(w io.Writer) *Printer { return &Printer{W: w} }

func (p *Printer) open(name string, props abw.Props) {
	fmt.Fprintf(p.W, "%s%s%s\n", strings.Repeat("  ", p.depth), name, formatProps(props))
	p.depth++
}

func (p *Printer) close(name string) {
	p.depth--
	if p.depth < 0 {
		p.depth = 0
	}
	fmt.Fprintf(p.W, "%s/%s\n", strings.Repeat("  ", p.depth), name)
}

func (p *Printer) leaf(name string, props abw.Props) {
	fmt.Fprintf(p.W, "%s%s%s\n", strings.Repeat("  ", p.depth), name, formatProps(props))
}

func formatProps(props abw.Props) string {
	if len(props) == 0 {
		return ""
	}
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	b.WriteString(" {")
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		v := props[k]
		if data, ok := v.([]byte); ok {
			fmt.Fprintf(&b, "%s=<%d bytes>", k, len(data))
			continue
		}
		fmt.Fprintf(&b, "%s=%v", k, v)
	}
	b.WriteString("}")
	return b.String()
}

func (p *Printer) OpenDocument(props abw.Props) { p.open("document", props) }
func (p *Printer) EndDocument()                 { p.close("document") }
func (p *Printer) OpenPageSpan(props abw.Props) { p.open("page-span", props) }
func (p *Printer) ClosePageSpan()               { p.close("page-span") }
func (p *Printer) OpenSection(props abw.Props)  { p.open("section", props) }
func (p *Printer) CloseSection()                { p.close("section") }

func (p *Printer) OpenHeader(props abw.Props, id int) {
	p.open(fmt.Sprintf("header[%d]", id), props)
}
func (p *Printer) CloseHeader() { p.close("header") }

func (p *Printer) OpenFooter(props abw.Props, id int) {
	p.open(fmt.Sprintf("footer[%d]", id), props)
}
func (p *Printer) CloseFooter() { p.close("footer") }

func (p *Printer) OpenParagraph(props abw.Props) { p.open("paragraph", props) }
func (p *Printer) CloseParagraph()               { p.close("paragraph") }

func (p *Printer) OpenListElement(props abw.Props)        { p.open("list-element", props) }
func (p *Printer) CloseListElement()                      { p.close("list-element") }
func (p *Printer) OpenOrderedListLevel(props abw.Props)   { p.open("ordered-list-level", props) }
func (p *Printer) CloseOrderedListLevel()                 { p.close("ordered-list-level") }
func (p *Printer) OpenUnorderedListLevel(props abw.Props) { p.open("unordered-list-level", props) }
func (p *Printer) CloseUnorderedListLevel()               { p.close("unordered-list-level") }

func (p *Printer) OpenSpan(props abw.Props) { p.open("span", props) }
func (p *Printer) CloseSpan()               { p.close("span") }
func (p *Printer) OpenLink(props abw.Props) { p.open("link", props) }
func (p *Printer) CloseLink()               { p.close("link") }

func (p *Printer) OpenTable(props abw.Props)     { p.open("table", props) }
func (p *Printer) CloseTable()                   { p.close("table") }
func (p *Printer) OpenTableRow(props abw.Props)  { p.open("table-row", props) }
func (p *Printer) CloseTableRow()                { p.close("table-row") }
func (p *Printer) OpenTableCell(props abw.Props) { p.open("table-cell", props) }
func (p *Printer) CloseTableCell()               { p.close("table-cell") }
func (p *Printer) InsertCoveredTableCell(props abw.Props) {
	p.leaf("covered-table-cell", props)
}

func (p *Printer) OpenFrame(props abw.Props)    { p.open("frame", props) }
func (p *Printer) CloseFrame()                  { p.close("frame") }
func (p *Printer) OpenTextBox(props abw.Props)  { p.open("text-box", props) }
func (p *Printer) CloseTextBox()                { p.close("text-box") }

func (p *Printer) OpenFootnote(props abw.Props) { p.open("footnote", props) }
func (p *Printer) CloseFootnote()               { p.close("footnote") }
func (p *Printer) OpenEndnote(props abw.Props)  { p.open("endnote", props) }
func (p *Printer) CloseEndnote()                { p.close("endnote") }

func (p *Printer) InsertText(text string) {
	fmt.Fprintf(p.W, "%stext %q\n", strings.Repeat("  ", p.depth), text)
}
func (p *Printer) InsertTab()       { p.leaf("tab", nil) }
func (p *Printer) InsertSpace()     { p.leaf("space", nil) }
func (p *Printer) InsertLineBreak() { p.leaf("line-break", nil) }
func (p *Printer) InsertField(props abw.Props)        { p.leaf("field", props) }
func (p *Printer) InsertBinaryObject(props abw.Props) { p.leaf("binary-object", props) }

var _ abw.Consumer = (*Printer)(nil)
