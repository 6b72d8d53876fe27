package dump

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgavlin/abiword-kit/abw"
)

func TestRecorderRecordsEventsInOrder(t *testing.T) {
	r := NewRecorder()
	r.OpenDocument(nil)
	r.OpenPageSpan(abw.Props{"page-width": 8.5})
	r.OpenSection(nil)
	r.OpenParagraph(nil)
	r.OpenSpan(abw.Props{"font-weight": "bold"})
	r.InsertText("hi")
	r.CloseSpan()
	r.CloseParagraph()
	r.CloseSection()
	r.ClosePageSpan()
	r.EndDocument()

	names := make([]string, len(r.Events))
	for i, e := range r.Events {
		names[i] = e.Name
	}
	assert.Equal(t, []string{
		"open-document", "open-page-span", "open-section", "open-paragraph",
		"open-span", "insert-text", "close-span", "close-paragraph",
		"close-section", "close-page-span", "end-document",
	}, names)

	assert.Equal(t, "hi", r.Events[5].Text)
	assert.Equal(t, abw.Props{"font-weight": "bold"}, r.Events[4].Props)
}

func TestRecorderRecordsHeaderFooterID(t *testing.T) {
	r := NewRecorder()
	r.OpenHeader(nil, 3)
	r.CloseHeader()
	r.OpenFooter(nil, 7)
	r.CloseFooter()

	require.Len(t, r.Events, 4)
	assert.Equal(t, 3, r.Events[0].ID)
	assert.Equal(t, 7, r.Events[2].ID)
}

func TestRecorderSatisfiesConsumer(t *testing.T) {
	var _ abw.Consumer = NewRecorder()
}

func TestPrinterIndentsNestedEvents(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.OpenDocument(nil)
	p.OpenSection(nil)
	p.OpenParagraph(nil)
	p.InsertText("hello")
	p.CloseParagraph()
	p.CloseSection()
	p.EndDocument()

	want := "document\n" +
		"  section\n" +
		"    paragraph\n" +
		"      text \"hello\"\n" +
		"    /paragraph\n" +
		"  /section\n" +
		"/document\n"
	assert.Equal(t, want, buf.String())
}

func TestPrinterFormatsBinaryPropAsByteCount(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.InsertBinaryObject(abw.Props{"office:binary-data": []byte{1, 2, 3, 4}})
	assert.Equal(t, "binary-object {office:binary-data=<4 bytes>}\n", buf.String())
}

func TestPrinterFormatsPropsSortedByKey(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.OpenSpan(abw.Props{"font-weight": "bold", "color": "000000"})
	assert.Equal(t, "span {color=000000, font-weight=bold}\n", buf.String())
}

func TestPrinterSatisfiesConsumer(t *testing.T) {
	var _ abw.Consumer = NewPrinter(nil)
}

func TestLoadInputPassesThroughPlainUTF8(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.abw")
	contents := []byte(`<?xml version="1.0" encoding="UTF-8"?><abiword></abiword>`)
	require.NoError(t, os.WriteFile(path, contents, 0o644))

	input, err := LoadInput(path)
	require.NoError(t, err)

	got, err := io.ReadAll(input)
	require.NoError(t, err)
	assert.Contains(t, string(got), "<abiword></abiword>")
}
