package abw

// Consumer is the emitted, text-document sink contract: one method per
// Element variant, each taking the same Props vocabulary described in
// Element. Implementations may no-op any method; this package ships no
// concrete Consumer beyond test/debug helpers, since a rendering
// implementation (HTML/text/raw) is an out-of-scope collaborator.
type Consumer interface {
	OpenDocument(props Props)
	EndDocument()

	OpenPageSpan(props Props)
	ClosePageSpan()

	OpenSection(props Props)
	CloseSection()

	OpenHeader(props Props, id int)
	CloseHeader()
	OpenFooter(props Props, id int)
	CloseFooter()

	OpenParagraph(props Props)
	CloseParagraph()

	OpenListElement(props Props)
	CloseListElement()
	OpenOrderedListLevel(props Props)
	CloseOrderedListLevel()
	OpenUnorderedListLevel(props Props)
	CloseUnorderedListLevel()

	OpenSpan(props Props)
	CloseSpan()
	OpenLink(props Props)
	CloseLink()

	OpenTable(props Props)
	CloseTable()
	OpenTableRow(props Props)
	CloseTableRow()
	OpenTableCell(props Props)
	CloseTableCell()
	InsertCoveredTableCell(props Props)

	OpenFrame(props Props)
	CloseFrame()
	OpenTextBox(props Props)
	CloseTextBox()

	OpenFootnote(props Props)
	CloseFootnote()
	OpenEndnote(props Props)
	CloseEndnote()

	InsertText(text string)
	InsertTab()
	InsertSpace()
	InsertLineBreak()
	InsertField(props Props)
	InsertBinaryObject(props Props)
}

// Write replays a recorded slice of Elements against a Consumer, in
// order. OutputBuffer.Write uses it to flush each header/footer buffer a
// page span references.
func Write(consumer Consumer, elements []Element) {
	for _, e := range elements {
		writeOne(consumer, e)
	}
}

func writeOne(consumer Consumer, e Element) {
	switch e.Kind {
	case OpenDocument:
		consumer.OpenDocument(e.Props)
	case EndDocument:
		consumer.EndDocument()
	case OpenPageSpan:
		consumer.OpenPageSpan(e.Props)
	case ClosePageSpan:
		consumer.ClosePageSpan()
	case OpenSection:
		consumer.OpenSection(e.Props)
	case CloseSection:
		consumer.CloseSection()
	case OpenHeader:
		consumer.OpenHeader(e.Props, e.ID)
	case CloseHeader:
		consumer.CloseHeader()
	case OpenFooter:
		consumer.OpenFooter(e.Props, e.ID)
	case CloseFooter:
		consumer.CloseFooter()
	case OpenParagraph:
		consumer.OpenParagraph(e.Props)
	case CloseParagraph:
		consumer.CloseParagraph()
	case OpenListElement:
		consumer.OpenListElement(e.Props)
	case CloseListElement:
		consumer.CloseListElement()
	case OpenOrderedListLevel:
		consumer.OpenOrderedListLevel(e.Props)
	case CloseOrderedListLevel:
		consumer.CloseOrderedListLevel()
	case OpenUnorderedListLevel:
		consumer.OpenUnorderedListLevel(e.Props)
	case CloseUnorderedListLevel:
		consumer.CloseUnorderedListLevel()
	case OpenSpan:
		consumer.OpenSpan(e.Props)
	case CloseSpan:
		consumer.CloseSpan()
	case OpenLink:
		consumer.OpenLink(e.Props)
	case CloseLink:
		consumer.CloseLink()
	case OpenTable:
		consumer.OpenTable(e.Props)
	case CloseTable:
		consumer.CloseTable()
	case OpenTableRow:
		consumer.OpenTableRow(e.Props)
	case CloseTableRow:
		consumer.CloseTableRow()
	case OpenTableCell:
		consumer.OpenTableCell(e.Props)
	case CloseTableCell:
		consumer.CloseTableCell()
	case InsertCoveredTableCell:
		consumer.InsertCoveredTableCell(e.Props)
	case OpenFrame:
		consumer.OpenFrame(e.Props)
	case CloseFrame:
		consumer.CloseFrame()
	case OpenTextBox:
		consumer.OpenTextBox(e.Props)
	case CloseTextBox:
		consumer.CloseTextBox()
	case OpenFootnote:
		consumer.OpenFootnote(e.Props)
	case CloseFootnote:
		consumer.CloseFootnote()
	case OpenEndnote:
		consumer.OpenEndnote(e.Props)
	case CloseEndnote:
		consumer.CloseEndnote()
	case InsertText:
		consumer.InsertText(e.Text)
	case InsertTab:
		consumer.InsertTab()
	case InsertSpace:
		consumer.InsertSpace()
	case InsertLineBreak:
		consumer.InsertLineBreak()
	case InsertField:
		consumer.InsertField(e.Props)
	case InsertBinaryObject:
		consumer.InsertBinaryObject(e.Props)
	}
}
