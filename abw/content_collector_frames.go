package abw

import "github.com/pgavlin/abiword-kit/abw/style"

// OpenFrame handles <frame props="..." dataid="...">. The frame's body is
// captured into a scratch OutputBuffer so that, at close time, it can
// either be spliced into the body right before the next page-span close
// (page-anchored frames) or inserted inline where the frame tag appeared
// (paragraph-anchored frames).
func (c *ContentCollector) OpenFrame(attrs map[string]string) {
	merged := style.ParsePropString(attrs["props"])
	kind := classifyFrame(merged["frame-type"])
	pageFrame := merged["frame-page-xpos"] != "" || merged["frame-page-ypos"] != ""

	fs := &frameScope{kind: kind, pageFrame: pageFrame, dataName: attrs["dataid"], savedOut: c.Out}
	c.frameStack = append(c.frameStack, fs)
	c.Out = NewOutputBuffer()
	c.Out.Add(Element{Kind: OpenFrame, Props: frameProperties(merged)})

	if kind == FrameTextbox {
		c.pushScopedState(ContextFrameTextbox)
	} else {
		c.pushScopedState(ContextFrameImage)
	}
}

// CloseFrame handles </frame>. Image frames resolve their referenced
// binary against the pre-pass data map and emit an insert-binary-object
// event; unknown frame types keep only their own open/close events, and
// the body events buffered while their subtree was walked are dropped.
// The captured buffer is then spliced or inlined according to anchor kind.
func (c *ContentCollector) CloseFrame() {
	if len(c.frameStack) == 0 {
		return
	}
	fs := c.frameStack[len(c.frameStack)-1]
	c.frameStack = c.frameStack[:len(c.frameStack)-1]
	c.popScopedState()

	if fs.kind == FrameUnknown {
		c.Out.body = c.Out.body[:1] // keep only the OpenFrame element
	}
	if fs.kind == FrameImage {
		if bin, ok := c.data[fs.dataName]; ok {
			c.Out.Add(Element{Kind: InsertBinaryObject, Props: Props{
				"librevenge:mime-type": bin.MimeType,
				"office:binary-data":   bin.Data,
			}})
		}
	}
	c.Out.Add(Element{Kind: CloseFrame})

	captured := c.Out
	c.Out = fs.savedOut
	if fs.pageFrame {
		c.Out.AddPageFrame(captured.body)
	} else {
		for _, e := range captured.body {
			c.Out.Add(e)
		}
	}
}

// InsertImage handles a top-level <image dataid="..."> that appears
// directly in running text rather than inside a <frame>.
func (c *ContentCollector) InsertImage(dataID string) {
	if !c.state.ParagraphOrListElementOpened {
		return
	}
	bin, ok := c.data[dataID]
	if !ok {
		return
	}
	c.openSpan(nil)
	c.Out.Add(Element{Kind: InsertBinaryObject, Props: Props{
		"librevenge:mime-type": bin.MimeType,
		"office:binary-data":   bin.Data,
	}})
}

// OpenField handles <field type="..." id="...">. Unrecognized subtypes
// are dropped silently (deliberately suppressed ones without comment;
// genuinely unknown ones at debug level).
func (c *ContentCollector) OpenField(typ string) {
	if !c.state.ParagraphOrListElementOpened {
		return
	}
	if typ == "" {
		return
	}
	props, ok := classifyField(typ, c.metadata)
	if !ok {
		if !isSuppressedField(typ) {
			c.log.WithField("type", typ).Debug("abw: unknown field type")
		}
		return
	}
	c.openSpan(nil)
	c.Out.Add(Element{Kind: InsertField, Props: props})
	c.state.IsFirstTextInListElement = false
}

// CloseField is a no-op: fields carry no body content in this format.
func (c *ContentCollector) CloseField() {}
