package abw

import (
	"strconv"
	"strings"

	"github.com/pgavlin/abiword-kit/abw/list"
	"github.com/pgavlin/abiword-kit/abw/style"
	"github.com/sirupsen/logrus"
)

// ContentCollector is the pass-two state machine. It consumes the same
// dispatch calls as StylesCollector but, unlike the pre-pass, almost
// nothing it does is a no-op: it resolves inherited styles, tracks a deep
// parsing state, and emits a well-nested OutputElement sequence into an
// OutputBuffer.
type ContentCollector struct {
	log *logrus.Logger
	Out *OutputBuffer

	state        *ContentState
	noteStack    []*ContentState
	machineStack []*list.Machine

	styles       style.Table
	tableWidths  map[int]int
	listElements list.Table
	listMachine  *list.Machine
	data         map[string]BinaryData
	metadata     map[string]string

	pendingStyleName       string
	pendingStyleBasedOn    string
	pendingStyleFollowedBy string
	pendingStyleProps      style.PropMap

	frameStack []*frameScope
	headerFooterIDCounter int
	tableCounter int
}

// frameScope tracks one open <frame> while its body is being buffered for
// later splicing (page-anchored) or direct insertion (paragraph-anchored).
type frameScope struct {
	kind      FrameKind
	pageFrame bool
	dataName  string
	savedOut  *OutputBuffer
}

func NewContentCollector(log *logrus.Logger, styles style.Table, tableWidths map[int]int, listElements list.Table, data map[string]BinaryData) *ContentCollector {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &ContentCollector{
		log:          log,
		Out:          NewOutputBuffer(),
		state:        NewContentState(),
		styles:       styles,
		tableWidths:  tableWidths,
		listElements: listElements,
		listMachine:  list.NewMachine(),
		data:         data,
		metadata:     make(map[string]string),
	}
}

// ---- open-on-demand cascade ----

func (c *ContentCollector) openDocument() {
	if c.state.DocumentOpened {
		return
	}
	c.state.DocumentOpened = true
	c.Out.Add(Element{Kind: OpenDocument, Props: Props{}})
}

func (c *ContentCollector) openPageSpan() {
	if c.state.PageSpanOpened {
		return
	}
	c.openDocument()
	c.state.PageSpanOpened = true
	props := Props{}
	if c.state.PageWidth > 0 {
		props["fo:page-width"] = c.state.PageWidth
	}
	if c.state.PageHeight > 0 {
		props["fo:page-height"] = c.state.PageHeight
	}
	refs := PageSpanRefs{
		HeaderAll: c.state.HeaderAllID, HeaderLeft: c.state.HeaderLeftID,
		HeaderFirst: c.state.HeaderFirstID, HeaderLast: c.state.HeaderLastID,
		FooterAll: c.state.FooterAllID, FooterLeft: c.state.FooterLeftID,
		FooterFirst: c.state.FooterFirstID, FooterLast: c.state.FooterLastID,
	}
	c.Out.AddOpenPageSpan(props, refs)
}

func (c *ContentCollector) openSection(props Props) {
	if c.state.SectionOpened {
		return
	}
	c.openPageSpan()
	c.state.SectionOpened = true
	if props == nil {
		props = Props{}
	}
	c.Out.Add(Element{Kind: OpenSection, Props: props})
}

func (c *ContentCollector) openBlock(isListElement bool, props Props) {
	if c.state.ParagraphOrListElementOpened {
		return
	}
	if c.state.ParsingContext == ContextSection {
		c.openSection(nil)
	}
	c.state.ParagraphOrListElementOpened = true
	if props == nil {
		props = Props{}
	}
	if isListElement {
		c.state.ListElementOpened = true
		c.state.IsFirstTextInListElement = true
		c.Out.Add(Element{Kind: OpenListElement, Props: props})
	} else {
		c.Out.Add(Element{Kind: OpenParagraph, Props: props})
	}
}

func (c *ContentCollector) openSpan(props Props) {
	if c.state.SpanOpened {
		return
	}
	if !c.state.ParagraphOrListElementOpened {
		c.openBlock(false, nil)
	}
	c.state.SpanOpened = true
	if props == nil {
		props = Props{}
	}
	c.Out.Add(Element{Kind: OpenSpan, Props: props})
}

// ---- close policy ----

func (c *ContentCollector) closeSpan() {
	if !c.state.SpanOpened {
		return
	}
	c.state.SpanOpened = false
	c.Out.Add(Element{Kind: CloseSpan})
}

func (c *ContentCollector) closeBlock() {
	c.closeSpan()
	if !c.state.ParagraphOrListElementOpened {
		return
	}
	c.state.ParagraphOrListElementOpened = false
	if c.state.ListElementOpened {
		c.state.ListElementOpened = false
		c.Out.Add(Element{Kind: CloseListElement})
	} else {
		c.Out.Add(Element{Kind: CloseParagraph})
	}
}

func (c *ContentCollector) closeAllListLevels() {
	for _, t := range c.listMachine.Change(c.listElements, 0, 0) {
		c.emitListTransition(t)
	}
	c.state.CurrentListLevel = 0
}

func (c *ContentCollector) closeOpenTables() {
	for len(c.state.TableStates) > 0 {
		c.closeTable()
	}
}

func (c *ContentCollector) closeSection() {
	if !c.state.SectionOpened {
		return
	}
	c.closeOpenTables()
	c.closeBlock()
	c.closeAllListLevels()
	c.state.SectionOpened = false
	c.Out.Add(Element{Kind: CloseSection})
}

func (c *ContentCollector) closePageSpan() {
	if !c.state.PageSpanOpened {
		return
	}
	c.closeSection()
	c.state.PageSpanOpened = false
	c.Out.Add(Element{Kind: ClosePageSpan})
}

// ---- document / page size ----

func (c *ContentCollector) CollectPageSize(attrs map[string]string) {
	if w, ok := style.ParseLength(attrs["page-width"]); ok {
		c.state.PageWidth = w.Inches()
	}
	if h, ok := style.ParseLength(attrs["page-height"]); ok {
		c.state.PageHeight = h.Inches()
	}
}

// ---- styles ----

// CollectTextStyle records a <s type="P"|"C"> style definition into the
// shared style table. Both paragraph and character styles share one
// table, matching the source format.
func (c *ContentCollector) CollectTextStyle(attrs map[string]string) {
	name := attrs["name"]
	if name == "" {
		return
	}
	if c.styles == nil {
		c.styles = make(style.Table)
	}
	c.styles[name] = style.Style{
		Name:       name,
		BasedOn:    attrs["basedon"],
		FollowedBy: attrs["followedby"],
		Properties: style.ParsePropString(attrs["props"]),
	}
}

// ---- paragraph / list element ----

// OpenParagraphOrListElement handles <p>: it resolves the requested list
// level/id, applies the list-level machine's transitions, then resolves
// the paragraph's own style and opens the block.
func (c *ContentCollector) OpenParagraphOrListElement(attrs map[string]string) {
	level, hasLevel := findInt(attrs["level"])
	if !hasLevel || level < 1 {
		level = 0
	}
	level = list.Clamp(level)

	listID := uint32(0)
	if n, ok := findInt(attrs["listid"]); ok && n >= 0 {
		listID = uint32(n)
	}
	c.state.CurrentListLevel = level
	c.state.CurrentListID = listID

	isListElement := level > 0
	if isListElement {
		if c.state.ParsingContext == ContextSection {
			c.openSection(nil)
		}
		for _, t := range c.listMachine.Change(c.listElements, level, listID) {
			c.emitListTransition(t)
		}
	} else {
		c.closeAllListLevels()
	}

	props := c.resolveParagraphProps(attrs["style"], attrs["props"])
	c.openBlock(isListElement, props)
}

func (c *ContentCollector) emitListTransition(t list.Transition) {
	kind := OpenUnorderedListLevel
	closeKind := CloseUnorderedListLevel
	if t.Kind == list.Ordered {
		kind = OpenOrderedListLevel
		closeKind = CloseOrderedListLevel
	}
	if t.Open {
		props := Props{}
		if !t.Dummy {
			props["librevenge:list-id"] = t.ListID
			if t.Element.Decimal != "" {
				props["style:num-format"] = t.Element.Decimal
			}
			if t.Element.Start != 0 {
				props["text:start-value"] = t.Element.Start
			}
		}
		c.Out.Add(Element{Kind: kind, Props: props})
	} else {
		c.Out.Add(Element{Kind: closeKind})
	}
}

// CloseParagraphOrListElement handles </p>.
func (c *ContentCollector) CloseParagraphOrListElement() {
	c.closeBlock()
}

// ---- spans ----

func (c *ContentCollector) OpenSpanTag(attrs map[string]string) {
	props := c.resolveCharacterProps(attrs["style"], attrs["props"])
	c.openSpan(props)
}

func (c *ContentCollector) CloseSpanTag() {
	c.closeSpan()
}

// ---- text insertion ----

// InsertText splits text on embedded tabs and runs of 2+ spaces, matching
// the source's separateTabsAndInsertText / separateSpacesAndInsertText,
// and trims a single leading space/tab from the first text of a list
// element (bullet-separator stripping).
func (c *ContentCollector) InsertText(text string) {
	if !c.state.ParagraphOrListElementOpened {
		return
	}
	if c.state.IsFirstTextInListElement {
		if text == " " || text == "\t" {
			c.state.IsFirstTextInListElement = false
			return
		}
		if strings.HasPrefix(text, " ") {
			text = text[1:]
		} else if strings.HasPrefix(text, "\t") {
			text = text[1:]
		}
		c.state.IsFirstTextInListElement = false
	}
	c.openSpan(nil)

	for _, segment := range splitOnTabs(text) {
		if segment.isTab {
			c.Out.Add(Element{Kind: InsertTab})
			continue
		}
		c.insertTextRun(segment.text)
	}
}

func (c *ContentCollector) insertTextRun(text string) {
	start := 0
	runSpaces := 0
	flush := func(end int) {
		if end > start {
			c.Out.Add(Element{Kind: InsertText, Text: text[start:end]})
		}
	}
	i := 0
	for i < len(text) {
		if text[i] == ' ' {
			runSpaces = 0
			j := i
			for j < len(text) && text[j] == ' ' {
				runSpaces++
				j++
			}
			if runSpaces >= 2 {
				flush(i)
				for k := 0; k < runSpaces; k++ {
					c.Out.Add(Element{Kind: InsertSpace})
				}
				start = j
			}
			i = j
			continue
		}
		i++
	}
	flush(len(text))
}

type textSegment struct {
	isTab bool
	text  string
}

func splitOnTabs(s string) []textSegment {
	var out []textSegment
	start := 0
	for i, r := range s {
		if r == '\t' {
			if i > start {
				out = append(out, textSegment{text: s[start:i]})
			}
			out = append(out, textSegment{isTab: true})
			start = i + 1
		}
	}
	if start < len(s) {
		out = append(out, textSegment{text: s[start:]})
	}
	return out
}

// InsertLineBreak handles <br>.
func (c *ContentCollector) InsertLineBreak() {
	if !c.state.ParagraphOrListElementOpened {
		return
	}
	c.openSpan(nil)
	c.Out.Add(Element{Kind: InsertLineBreak})
}

// InsertColumnBreak handles <cbr>: the break applies to the next block,
// not this one.
func (c *ContentCollector) InsertColumnBreak() {
	c.state.DeferredColumnBreak = true
}

// InsertPageBreak handles <pbr>.
func (c *ContentCollector) InsertPageBreak() {
	c.state.DeferredPageBreak = true
}

// ---- sections ----

// OpenSectionTag handles <section type="...">. A section whose type is
// header/footer routes to the header/footer context instead.
func (c *ContentCollector) OpenSectionTag(attrs map[string]string) {
	typ := attrs["type"]
	if strings.HasPrefix(typ, "header") || strings.HasPrefix(typ, "footer") {
		return // handled via CollectHeaderFooter by the dispatcher
	}
	props := c.resolveSectionProps(attrs["props"])
	if cols, ok := findInt(attrs["props-columns"]); ok && cols > 1 {
		props["fo:column-count"] = cols
	}
	c.openSection(props)
}

func (c *ContentCollector) CloseSectionTag() {
	c.closeSection()
}

// CollectHeaderFooter handles the begin of a <section type="header[-occurrence]">
// or footer region: it parses the occurrence, switches the output buffer's
// active bucket, and remembers the id so the next page span references it.
func (c *ContentCollector) CollectHeaderFooter(id int, typ string) {
	kind, occurrence, ok := parseHeaderFooterType(typ)
	if !ok {
		return
	}
	c.state.CurrentHeaderFooterID = id
	c.state.CurrentHeaderFooterOccurrence = occurrence

	switch kind {
	case "header":
		c.state.ParsingContext = ContextHeader
		c.state.HeaderOpened = true
		c.setHeaderID(occurrence, id)
		c.Out.OpenHeader(Props{}, id)
	case "footer":
		c.state.ParsingContext = ContextFooter
		c.state.FooterOpened = true
		c.setFooterID(occurrence, id)
		c.Out.OpenFooter(Props{}, id)
	}
}

// CloseHeaderFooter handles the matching end of the region opened by
// CollectHeaderFooter.
func (c *ContentCollector) CloseHeaderFooter() {
	c.closeOpenTables()
	c.closeBlock()
	c.closeAllListLevels()
	switch c.state.ParsingContext {
	case ContextHeader:
		c.state.HeaderOpened = false
		c.Out.CloseHeader()
	case ContextFooter:
		c.state.FooterOpened = false
		c.Out.CloseFooter()
	}
	c.state.ParsingContext = ContextSection
}

func (c *ContentCollector) setHeaderID(occurrence string, id int) {
	switch occurrence {
	case "all":
		c.state.HeaderAllID = id
	case "left":
		c.state.HeaderLeftID = id
	case "first":
		c.state.HeaderFirstID = id
	case "last":
		c.state.HeaderLastID = id
	}
}

func (c *ContentCollector) setFooterID(occurrence string, id int) {
	switch occurrence {
	case "all":
		c.state.FooterAllID = id
	case "left":
		c.state.FooterLeftID = id
	case "first":
		c.state.FooterFirstID = id
	case "last":
		c.state.FooterLastID = id
	}
}

func parseHeaderFooterType(typ string) (kind, occurrence string, ok bool) {
	parts := strings.SplitN(typ, "-", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	kind = parts[0]
	if kind != "header" && kind != "footer" {
		return "", "", false
	}
	switch parts[1] {
	case "all":
		occurrence = "all"
	case "even":
		occurrence = "left"
	case "first":
		occurrence = "first"
	case "last":
		occurrence = "last"
	default:
		return "", "", false
	}
	return kind, occurrence, true
}

// ---- notes ----

// OpenFootnote handles <foot id="...">: it closes the current span, emits
// the open-footnote bracket, and pushes a fresh state whose preset
// openness flags keep the note body from opening a page span or section
// of its own. Tables and header/footer sections inside the note body are
// not suppressed.
func (c *ContentCollector) OpenFootnote() {
	c.closeSpan()
	c.Out.Add(Element{Kind: OpenFootnote, Props: Props{}})
	c.pushNoteState()
}

func (c *ContentCollector) CloseFootnote() {
	c.popNoteState()
	c.Out.Add(Element{Kind: CloseFootnote})
}

func (c *ContentCollector) OpenEndnote() {
	c.closeSpan()
	c.Out.Add(Element{Kind: OpenEndnote, Props: Props{}})
	c.pushNoteState()
}

func (c *ContentCollector) CloseEndnote() {
	c.popNoteState()
	c.Out.Add(Element{Kind: CloseEndnote})
}

// pushScopedState suspends the current parsing state and list-level
// machine and installs fresh ones for an embedded scope (a note or a
// frame body): presetting the document, page-span and section openness
// flags makes the open-on-demand cascade a no-op for this scope, and a
// frame ParsingContext keeps paragraph-level opens away from openSection.
// Tables and header/footer sections opened inside the scope are not
// suppressed. Only the note-specific output brackets are emitted by the
// footnote/endnote callers themselves.
func (c *ContentCollector) pushScopedState(ctx ParsingContext) {
	c.noteStack = append(c.noteStack, c.state)
	c.machineStack = append(c.machineStack, c.listMachine)
	fresh := NewContentState()
	fresh.DocumentOpened = true
	fresh.PageSpanOpened = true
	fresh.SectionOpened = true
	fresh.ParsingContext = ctx
	c.state = fresh
	c.listMachine = list.NewMachine()
}

func (c *ContentCollector) popScopedState() {
	c.closeOpenTables()
	c.closeBlock()
	c.closeAllListLevels()
	if len(c.noteStack) == 0 {
		return
	}
	c.state = c.noteStack[len(c.noteStack)-1]
	c.noteStack = c.noteStack[:len(c.noteStack)-1]
	c.listMachine = c.machineStack[len(c.machineStack)-1]
	c.machineStack = c.machineStack[:len(c.machineStack)-1]
}

func (c *ContentCollector) pushNoteState() { c.pushScopedState(ContextSection) }
func (c *ContentCollector) popNoteState()  { c.popScopedState() }

// ---- property translation ----

func (c *ContentCollector) resolveParagraphProps(styleName, inlineProps string) Props {
	merged := make(style.PropMap)
	outlineLevel := 0
	if styleName != "" {
		outlineLevel = style.ResolveInto(c.styles, styleName, merged)
	}
	merged.Overlay(style.ParsePropString(inlineProps))

	props := Props{}
	if outlineLevel > 0 {
		props["text:outline-level"] = outlineLevel
	}
	for _, side := range []string{"left", "right", "top", "bottom"} {
		if v, ok := merged["margin-"+side]; ok {
			if l, ok := style.ParseLength(v); ok {
				props["fo:margin-"+side] = l.Inches()
			}
		}
	}
	if v, ok := merged["text-indent"]; ok {
		if l, ok := style.ParseLength(v); ok {
			props["fo:text-indent"] = l.Inches()
		}
	}
	if v, ok := merged["text-align"]; ok {
		switch v {
		case "left":
			props["fo:text-align"] = "start"
		case "right":
			props["fo:text-align"] = "end"
		default:
			props["fo:text-align"] = v
		}
	}
	if v, ok := merged["line-height"]; ok {
		v = strings.TrimSuffix(v, "+")
		if l, ok := style.ParseLength(v); ok {
			if l.Unit == style.UnitPercent {
				props["fo:line-height"] = strconv.FormatFloat(l.Value*100, 'f', -1, 64) + "%"
			} else {
				props["fo:line-height"] = l.Inches()
			}
		}
	}
	if v, ok := findInt(merged["orphans"]); ok {
		props["fo:orphans"] = v
	}
	if v, ok := findInt(merged["widows"]); ok {
		props["fo:widows"] = v
	}
	if v, ok := merged["tabstops"]; ok {
		var tabs []Props
		for _, ts := range style.ParseTabStops(v) {
			tabs = append(tabs, Props{
				"style:position": ts.PositionIn,
				"style:type":     tabAlignName(ts.Align),
			})
		}
		if tabs != nil {
			props["librevenge:tab-stops"] = tabs
		}
	}
	if v, ok := merged["dom-dir"]; ok {
		switch v {
		case "ltr":
			props["style:writing-mode"] = "lr-tb"
		case "rtl":
			props["style:writing-mode"] = "rl-tb"
		}
	}

	if c.state.DeferredPageBreak {
		props["fo:break-before"] = "page"
		c.state.DeferredPageBreak = false
	} else if c.state.DeferredColumnBreak {
		props["fo:break-before"] = "column"
		c.state.DeferredColumnBreak = false
	}

	applyBorderProps(props, merged, "")
	return props
}

func tabAlignName(a style.TabAlign) string {
	switch a {
	case style.TabCenter:
		return "center"
	case style.TabChar:
		return "char"
	case style.TabRight:
		return "right"
	default:
		return "left"
	}
}

func (c *ContentCollector) resolveCharacterProps(styleName, inlineProps string) Props {
	merged := make(style.PropMap)
	if styleName != "" {
		style.ResolveInto(c.styles, styleName, merged)
	}
	merged.Overlay(style.ParsePropString(inlineProps))

	props := Props{}
	if v, ok := merged["font-size"]; ok {
		if l, ok := style.ParseLength(v); ok {
			props["fo:font-size"] = l.Inches()
		}
	}
	if v, ok := merged["font-family"]; ok {
		props["style:font-name"] = v
	}
	if v, ok := merged["font-style"]; ok {
		props["fo:font-style"] = v
	}
	if v, ok := merged["font-weight"]; ok {
		props["fo:font-weight"] = v
	}
	if merged["display"] == "none" {
		props["text:display"] = "none"
	}
	if merged["dir-override"] == "rtl" {
		props["style:writing-mode"] = "rl-tb"
	}
	if v, ok := merged["text-decoration"]; ok {
		for _, token := range strings.Fields(v) {
			switch token {
			case "underline":
				props["style:text-underline-type"] = "single"
			case "line-through":
				props["style:text-line-through-type"] = "single"
			case "overline":
				props["style:text-overline-type"] = "solid"
			}
		}
	}
	if v, ok := style.ParseColor(merged["color"]); ok {
		props["fo:color"] = v
	}
	if v, ok := style.ParseColor(merged["bgcolor"]); ok {
		props["fo:background-color"] = v
	}
	if v, ok := merged["text-position"]; ok {
		switch v {
		case "subscript":
			props["style:text-position"] = "sub"
		case "superscript":
			props["style:text-position"] = "super"
		}
	}
	lang := merged["lang"]
	if lang == "" {
		lang = c.state.DocumentLang
	}
	if lang != "" {
		tag := style.ParseLang(lang)
		if tag.Language != "" {
			props["fo:language"] = tag.Language
			if tag.Country != "" {
				props["fo:country"] = tag.Country
			}
			if tag.Script != "" {
				props["fo:script"] = tag.Script
			}
		}
	}
	return props
}

func (c *ContentCollector) resolveSectionProps(inlineProps string) Props {
	merged := style.ParsePropString(inlineProps)
	props := Props{}
	for _, side := range []string{"left", "right", "top", "bottom"} {
		key := "margin-" + side
		if v, ok := merged[key]; ok {
			if l, ok := style.ParseLength(v); ok {
				props["fo:margin-"+side] = l.Inches()
			}
		}
	}
	return props
}

// applyBorderProps translates the four border sides of merged into props,
// overlaying defaultUndef ("0.01in solid #000000", used by table cells)
// onto any side left entirely unset.
func applyBorderProps(props Props, merged style.PropMap, defaultUndef string) {
	for _, side := range []string{"left", "right", "top", "bot"} {
		foSide := side
		if side == "bot" {
			foSide = "bottom"
		}
		colorKey, styleKey, thickKey := side+"-color", side+"-style", side+"-thickness"
		_, hasAny := merged[colorKey]
		_, hasStyle := merged[styleKey]
		_, hasThick := merged[thickKey]
		if !hasAny && !hasStyle && !hasThick {
			if defaultUndef != "" {
				props["fo:border-"+foSide] = defaultUndef
			}
			continue
		}

		styleVal := merged[styleKey]
		if styleVal == "0" {
			props["fo:border-"+foSide] = "none"
			continue
		}
		thickness := 0.01
		if l, ok := style.ParseLength(merged[thickKey]); ok {
			thickness = l.Inches()
		}
		lineStyle := "solid"
		switch styleVal {
		case "2":
			lineStyle = "dotted"
		case "3":
			lineStyle = "dashed"
		}
		color := "#000000"
		if c, ok := style.ParseColor(merged[colorKey]); ok {
			color = c
		}
		props["fo:border-"+foSide] = strconv.FormatFloat(thickness, 'f', -1, 64) + "in " + lineStyle + " " + color
	}
}

// ---- metadata ----

func (c *ContentCollector) SetMetadata(key, value string) {
	c.metadata[key] = value
}
