package abw

// Props is the property bag attached to an OutputElement, using the same
// string-keyed vocabulary the Consumer interface expects (fo:*, style:*,
// text:*, librevenge:*, svg:*, number:*, office:binary-data, xlink:href).
type Props map[string]any

// ElementKind enumerates the OutputElement variants. This replaces the
// 30-odd heap-allocated subclasses of the original collector with a
// single sum type stored by value: only the Props map inside each
// instance holds indirect state.
type ElementKind int

const (
	OpenDocument ElementKind = iota
	EndDocument
	OpenPageSpan
	ClosePageSpan
	OpenSection
	CloseSection
	OpenHeader
	CloseHeader
	OpenFooter
	CloseFooter
	OpenParagraph
	CloseParagraph
	OpenListElement
	CloseListElement
	OpenOrderedListLevel
	CloseOrderedListLevel
	OpenUnorderedListLevel
	CloseUnorderedListLevel
	OpenSpan
	CloseSpan
	OpenLink
	CloseLink
	OpenTable
	CloseTable
	OpenTableRow
	CloseTableRow
	OpenTableCell
	CloseTableCell
	OpenFrame
	CloseFrame
	OpenTextBox
	CloseTextBox
	OpenFootnote
	CloseFootnote
	OpenEndnote
	CloseEndnote
	InsertText
	InsertTab
	InsertSpace
	InsertLineBreak
	InsertField
	InsertBinaryObject
	InsertCoveredTableCell
)

// Element is one emitted document-construction event.
type Element struct {
	Kind  ElementKind
	Props Props
	Text  string // populated for InsertText
	ID    int    // header/footer occurrence id, when applicable
}
