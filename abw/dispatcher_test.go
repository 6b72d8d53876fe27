package abw

import (
	"bytes"
	"compress/gzip"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

// recordingConsumer is a minimal Consumer test double that appends one
// record per call; it exists only to assert on the event sequence a
// Dispatcher produces, not to render anything.
type recordingConsumer struct {
	calls []string
	texts []string
}

func (r *recordingConsumer) add(name string) { r.calls = append(r.calls, name) }

func (r *recordingConsumer) OpenDocument(props Props) { r.add("open-document") }
func (r *recordingConsumer) EndDocument()              { r.add("end-document") }
func (r *recordingConsumer) OpenPageSpan(props Props)  { r.add("open-page-span") }
func (r *recordingConsumer) ClosePageSpan()            { r.add("close-page-span") }
func (r *recordingConsumer) OpenSection(props Props)   { r.add("open-section") }
func (r *recordingConsumer) CloseSection()             { r.add("close-section") }
func (r *recordingConsumer) OpenHeader(props Props, id int) { r.add("open-header") }
func (r *recordingConsumer) CloseHeader()                   { r.add("close-header") }
func (r *recordingConsumer) OpenFooter(props Props, id int) { r.add("open-footer") }
func (r *recordingConsumer) CloseFooter()                   { r.add("close-footer") }
func (r *recordingConsumer) OpenParagraph(props Props) { r.add("open-paragraph") }
func (r *recordingConsumer) CloseParagraph()           { r.add("close-paragraph") }
func (r *recordingConsumer) OpenListElement(props Props)        { r.add("open-list-element") }
func (r *recordingConsumer) CloseListElement()                  { r.add("close-list-element") }
func (r *recordingConsumer) OpenOrderedListLevel(props Props)   { r.add("open-ordered-list-level") }
func (r *recordingConsumer) CloseOrderedListLevel()             { r.add("close-ordered-list-level") }
func (r *recordingConsumer) OpenUnorderedListLevel(props Props) { r.add("open-unordered-list-level") }
func (r *recordingConsumer) CloseUnorderedListLevel()           { r.add("close-unordered-list-level") }
func (r *recordingConsumer) OpenSpan(props Props) { r.add("open-span") }
func (r *recordingConsumer) CloseSpan()           { r.add("close-span") }
func (r *recordingConsumer) OpenLink(props Props) { r.add("open-link") }
func (r *recordingConsumer) CloseLink()           { r.add("close-link") }
func (r *recordingConsumer) OpenTable(props Props)    { r.add("open-table") }
func (r *recordingConsumer) CloseTable()              { r.add("close-table") }
func (r *recordingConsumer) OpenTableRow(props Props) { r.add("open-table-row") }
func (r *recordingConsumer) CloseTableRow()           { r.add("close-table-row") }
func (r *recordingConsumer) OpenTableCell(props Props) { r.add("open-table-cell") }
func (r *recordingConsumer) CloseTableCell()           { r.add("close-table-cell") }
func (r *recordingConsumer) InsertCoveredTableCell(props Props) { r.add("insert-covered-table-cell") }
func (r *recordingConsumer) OpenFrame(props Props)   { r.add("open-frame") }
func (r *recordingConsumer) CloseFrame()             { r.add("close-frame") }
func (r *recordingConsumer) OpenTextBox(props Props) { r.add("open-text-box") }
func (r *recordingConsumer) CloseTextBox()           { r.add("close-text-box") }
func (r *recordingConsumer) OpenFootnote(props Props) { r.add("open-footnote") }
func (r *recordingConsumer) CloseFootnote()           { r.add("close-footnote") }
func (r *recordingConsumer) OpenEndnote(props Props)  { r.add("open-endnote") }
func (r *recordingConsumer) CloseEndnote()            { r.add("close-endnote") }
func (r *recordingConsumer) InsertText(text string) {
	r.add("insert-text")
	r.texts = append(r.texts, text)
}
func (r *recordingConsumer) InsertTab()       { r.add("insert-tab") }
func (r *recordingConsumer) InsertSpace()     { r.add("insert-space") }
func (r *recordingConsumer) InsertLineBreak() { r.add("insert-line-break") }
func (r *recordingConsumer) InsertField(props Props)        { r.add("insert-field") }
func (r *recordingConsumer) InsertBinaryObject(props Props) { r.add("insert-binary-object") }

var _ Consumer = (*recordingConsumer)(nil)

const simpleDocument = `<?xml version="1.0"?>
<abiword lang="en-US">
  <section>
    <p>
      <c>Hello, </c>
      <c props="font-weight:bold">world</c>
    </p>
  </section>
</abiword>
`

func TestParseSimpleDocument(t *testing.T) {
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	input := NewBytesInput([]byte(simpleDocument))
	consumer := &recordingConsumer{}

	ok, err := NewDispatcher(log).Parse(input, consumer)
	require.NoError(t, err)
	require.True(t, ok)

	require.Equal(t, []string{
		"open-document",
		"open-page-span",
		"open-section",
		"open-paragraph",
		"open-span",
		"insert-text",
		"close-span",
		"open-span",
		"insert-text",
		"close-span",
		"close-paragraph",
		"close-section",
		"close-page-span",
		"end-document",
	}, consumer.calls)

	assert.Equal(t, []string{"Hello, ", "world"}, consumer.texts)
}

func TestParseEmptyDocumentStillClosesDocument(t *testing.T) {
	input := NewBytesInput([]byte(`<abiword></abiword>`))
	consumer := &recordingConsumer{}

	ok, err := NewDispatcher(nil).Parse(input, consumer)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, []string{"open-document", "end-document"}, consumer.calls)
}

func TestParseGzipCompressedDocument(t *testing.T) {
	compressed := gzipBytes(t, []byte(simpleDocument))
	input := NewBytesInput(compressed)
	consumer := &recordingConsumer{}

	ok, err := NewDispatcher(nil).Parse(input, consumer)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"Hello, ", "world"}, consumer.texts)
}

func TestParseMalformedStreamReturnsError(t *testing.T) {
	// Truncated mid-attribute: the decoder hits EOF while still expecting
	// a closing quote, which encoding/xml reports as a repeating,
	// non-advancing error rather than a clean io.EOF -- exactly what the
	// stuckness watchdog exists to catch.
	input := NewBytesInput([]byte(`<abiword attr="unterminated`))
	consumer := &recordingConsumer{}

	_, err := NewDispatcher(nil).Parse(input, consumer)
	assert.ErrorIs(t, err, ErrMalformedStream)
}
