package abw

// Active selects which bucket Add currently writes into. It replaces the
// original collector's raw pointer rebinding (m_elements pointing at
// whichever vector is "current") with a small enum plus a resolver
// method, removing the dangling-pointer risk the pointer version carried.
type Active int

const (
	ActiveBody Active = iota
	ActiveHeader
	ActiveFooter
)

// PageSpanRefs names which header/footer occurrence buffers a page span
// references, in the fixed emission order the buffer replays them: all,
// left, first, last.
type PageSpanRefs struct {
	HeaderAll, HeaderLeft, HeaderFirst, HeaderLast int // 0 means "none"
	FooterAll, FooterLeft, FooterFirst, FooterLast int
}

func (r PageSpanRefs) headerIDs() []int {
	return compactIDs(r.HeaderAll, r.HeaderLeft, r.HeaderFirst, r.HeaderLast)
}

func (r PageSpanRefs) footerIDs() []int {
	return compactIDs(r.FooterAll, r.FooterLeft, r.FooterFirst, r.FooterLast)
}

func compactIDs(ids ...int) []int {
	var out []int
	for _, id := range ids {
		if id != 0 {
			out = append(out, id)
		}
	}
	return out
}

// OutputBuffer accumulates the content pass's emitted Elements into three
// buckets -- body, and one list per header/footer occurrence id -- plus a
// page-anchored frame buffer that gets spliced into the body immediately
// before the next page-span close. Write() replays the body, expanding
// each OpenPageSpan into its referenced header/footer content in order.
type OutputBuffer struct {
	body    []Element
	headers map[int][]Element
	footers map[int][]Element

	pageFrames []Element

	active   Active
	activeID int

	refsByIndex []PageSpanRefs // one entry per OpenPageSpan event in body, in order
}

func NewOutputBuffer() *OutputBuffer {
	return &OutputBuffer{
		headers: make(map[int][]Element),
		footers: make(map[int][]Element),
	}
}

// Add appends e to whichever bucket is currently active. A ClosePageSpan
// arriving while the body bucket is active first flushes any buffered
// page-anchored frame content ahead of the close event.
func (b *OutputBuffer) Add(e Element) {
	switch b.active {
	case ActiveHeader:
		b.headers[b.activeID] = append(b.headers[b.activeID], e)
	case ActiveFooter:
		b.footers[b.activeID] = append(b.footers[b.activeID], e)
	default:
		if e.Kind == ClosePageSpan && len(b.pageFrames) > 0 {
			b.body = append(b.body, b.pageFrames...)
			b.pageFrames = nil
		}
		b.body = append(b.body, e)
	}
}

// AddOpenPageSpan records an OpenPageSpan event and remembers which
// header/footer occurrence buffers it references for replay at Write
// time.
func (b *OutputBuffer) AddOpenPageSpan(props Props, refs PageSpanRefs) {
	b.refsByIndex = append(b.refsByIndex, refs)
	b.Add(Element{Kind: OpenPageSpan, Props: props})
}

// OpenHeader switches the active bucket to the header occurrence buffer
// for id, creating it if necessary, and records the open event into it.
func (b *OutputBuffer) OpenHeader(props Props, id int) {
	b.active = ActiveHeader
	b.activeID = id
	b.headers[id] = append(b.headers[id], Element{Kind: OpenHeader, Props: props, ID: id})
}

// CloseHeader records the close event into the current header buffer and
// restores the active bucket to body.
func (b *OutputBuffer) CloseHeader() {
	b.headers[b.activeID] = append(b.headers[b.activeID], Element{Kind: CloseHeader})
	b.active = ActiveBody
}

func (b *OutputBuffer) OpenFooter(props Props, id int) {
	b.active = ActiveFooter
	b.activeID = id
	b.footers[id] = append(b.footers[id], Element{Kind: OpenFooter, Props: props, ID: id})
}

func (b *OutputBuffer) CloseFooter() {
	b.footers[b.activeID] = append(b.footers[b.activeID], Element{Kind: CloseFooter})
	b.active = ActiveBody
}

// AddPageFrame appends a page-anchored frame's buffered elements to the
// pending splice, which is flushed into the body immediately before the
// next ClosePageSpan event.
func (b *OutputBuffer) AddPageFrame(elements []Element) {
	b.pageFrames = append(b.pageFrames, elements...)
}

// Write replays the body in order, expanding each OpenPageSpan into its
// referenced header/footer content (in all, left, first, last order) in
// between the page-span open and the following body content.
func (b *OutputBuffer) Write(consumer Consumer) {
	refIdx := 0
	for _, e := range b.body {
		writeOne(consumer, e)
		if e.Kind == OpenPageSpan {
			if refIdx < len(b.refsByIndex) {
				refs := b.refsByIndex[refIdx]
				refIdx++
				for _, id := range refs.headerIDs() {
					Write(consumer, b.headers[id])
				}
				for _, id := range refs.footerIDs() {
					Write(consumer, b.footers[id])
				}
			}
		}
	}
}
