package abw

import (
	"github.com/pgavlin/abiword-kit/abw/style"
)

// FrameKind classifies a frame's contents by its frame-type attribute.
type FrameKind int

const (
	FrameImage FrameKind = iota
	FrameTextbox
	FrameUnknown
)

// frameProperties translates the raw frame PropMap into output Props:
// size, position (paragraph- or page-anchored), background, and
// wrap-mode. Matches spec.md §4.5 "Frames".
func frameProperties(props style.PropMap) Props {
	out := Props{}

	if w, ok := style.ParseLength(props["frame-width"]); ok {
		out["svg:width"] = w.Inches()
	}
	if h, ok := style.ParseLength(props["frame-height"]); ok {
		out["svg:height"] = h.Inches()
	}

	if x, ok := style.ParseLength(props["frame-page-xpos"]); ok {
		out["svg:x"] = x.Inches()
		out["text:anchor-type"] = "page"
	} else if x, ok := style.ParseLength(props["xpos"]); ok {
		out["svg:x"] = x.Inches()
		out["text:anchor-type"] = "paragraph"
	}
	if y, ok := style.ParseLength(props["frame-page-ypos"]); ok {
		out["svg:y"] = y.Inches()
	} else if y, ok := style.ParseLength(props["ypos"]); ok {
		out["svg:y"] = y.Inches()
	}
	if pref, ok := props["frame-pref-page"]; ok {
		out["librevenge:frame-page"] = pref
	}

	if bg, ok := style.ParseColor(props["background-color"]); ok {
		out["draw:fill-color"] = bg
	}

	switch props["wrap-mode"] {
	case "wrapped-to-left":
		out["style:wrap"] = "left"
	case "wrapped-to-right":
		out["style:wrap"] = "right"
	case "wrapped-to-both":
		out["style:wrap"] = "parallel"
	case "above-text":
		out["style:wrap"] = "dynamic"
		out["style:run-through"] = "foreground"
	case "below-text":
		out["style:wrap"] = "dynamic"
		out["style:run-through"] = "background"
	}

	return out
}

// classifyFrame maps the frame-type attribute to a FrameKind; any value
// not recognized as image or textbox is treated as unknown, which skips
// the frame's content while still walking its subtree so nested
// recognized tags are not lost.
func classifyFrame(frameType string) FrameKind {
	switch frameType {
	case "", "Image", "image":
		return FrameImage
	case "TextBox", "textbox", "text-box":
		return FrameTextbox
	default:
		return FrameUnknown
	}
}
