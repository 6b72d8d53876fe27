package abw

// ParsingContext names which structural region content is currently
// routed into.
type ParsingContext int

const (
	ContextSection ParsingContext = iota
	ContextHeader
	ContextFooter
	ContextFrameImage
	ContextFrameTextbox
	ContextFrameUnknown
)

// TableState tracks one level of (possibly nested) table nesting during
// the content pass.
type TableState struct {
	ID            int
	ColumnCount   int
	CurrentRow    int
	RowOpened     bool
	CellOpened    bool
	RowHasCell    bool
	LeftMargin    float64
	HasLeftMargin bool
}

// ContentState captures everything the content pass needs to resume
// correctly across a footnote/endnote boundary; a stack of these is
// pushed/popped on note entry/exit (see ContentCollector.pushNoteState/
// popNoteState).
type ContentState struct {
	// openness flags
	DocumentOpened bool
	PageSpanOpened bool
	SectionOpened  bool
	HeaderOpened   bool
	FooterOpened   bool
	SpanOpened     bool
	ParagraphOrListElementOpened bool
	ListElementOpened            bool

	// page geometry, sticky across sections until changed
	PageWidth, PageHeight                     float64
	MarginLeft, MarginRight, MarginTop, MarginBottom float64

	// current header/footer ids by occurrence, per page span
	HeaderAllID, HeaderLeftID, HeaderFirstID, HeaderLastID int
	FooterAllID, FooterLeftID, FooterFirstID, FooterLastID int

	DeferredPageBreak   bool
	DeferredColumnBreak bool

	CurrentListLevel int
	CurrentListID    uint32
	IsFirstTextInListElement bool

	ParsingContext            ParsingContext
	CurrentHeaderFooterID     int
	CurrentHeaderFooterOccurrence string

	TableStates []TableState

	DocumentLang string
}

// NewContentState returns the zero-value initial state for the start of
// a content pass.
func NewContentState() *ContentState {
	return &ContentState{}
}

// currentTable returns a pointer to the innermost open table state, or
// nil if no table is open.
func (s *ContentState) currentTable() *TableState {
	if len(s.TableStates) == 0 {
		return nil
	}
	return &s.TableStates[len(s.TableStates)-1]
}
