package inspector

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"strings"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/atotto/clipboard"
	"github.com/eliukblau/pixterm/pkg/ansimage"
	"github.com/nfnt/resize"
	"github.com/skratchdot/open-golang/open"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/pgavlin/abiword-kit/internal/kitty"
)

var statusStyle = lipgloss.NewStyle().Faint(true)

// item adapts a *Node to list.Item: its title carries the node's own
// indentation, since the tree's nesting is the thing being browsed.
type item struct{ node *Node }

func (it item) FilterValue() string { return it.node.Label }
func (it item) Title() string {
	return strings.Repeat("  ", it.node.Depth) + it.node.Label
}
func (it item) Description() string { return "" }

// Model is the bubbletea model driving cmd/abwinspect: a bubbles list
// over the flattened event tree, with image preview, clipboard, and
// open-source-file actions layered on top.
type Model struct {
	sourcePath string
	nodes      []*Node // flattened, display order, parallel to list indices
	list       list.Model
	status     string
	kittyTerm  bool // true when the terminal advertises kitty graphics support
}

// NewModel builds the inspector model for one document's event tree.
func NewModel(sourcePath string, roots []*Node, kittyTerm bool) Model {
	nodes := Flatten(roots)
	items := make([]list.Item, len(nodes))
	for i, n := range nodes {
		items[i] = item{node: n}
	}

	delegate := list.NewDefaultDelegate()
	l := list.New(items, delegate, 0, 0)
	l.Title = sourcePath
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)

	return Model{
		sourcePath: sourcePath,
		nodes:      nodes,
		list:       l,
		kittyTerm:  kittyTerm,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-previewReservedLines)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "y":
			m.status = m.copyPath()
			return m, nil
		case "o":
			m.status = m.openSource()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

const previewReservedLines = 22

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.list.View())

	if n := m.selected(); n != nil {
		if preview := m.renderPreview(n); preview != "" {
			b.WriteString("\n")
			b.WriteString(preview)
			b.WriteString("\n")
		}
	}

	b.WriteString(statusStyle.Render(m.status))
	b.WriteString(statusStyle.Render("  [q]uit [y]ank path [o]pen source"))
	return b.String()
}

func (m Model) selected() *Node {
	idx := m.list.Index()
	if idx < 0 || idx >= len(m.nodes) {
		return nil
	}
	return m.nodes[idx]
}

func (m Model) copyPath() string {
	idx := m.list.Index()
	if idx < 0 || idx >= len(m.nodes) {
		return ""
	}
	path := nodePath(m.nodes, idx)
	if err := clipboard.WriteAll(path); err != nil {
		return fmt.Sprintf("copy failed: %v", err)
	}
	return "copied: " + path
}

// nodePath reconstructs the ancestor chain of nodes[idx] by walking
// backward for the nearest node at each shallower depth.
func nodePath(nodes []*Node, idx int) string {
	n := nodes[idx]
	labels := []string{n.Label}
	depth := n.Depth
	for i := idx - 1; i >= 0 && depth > 0; i-- {
		if nodes[i].Depth == depth-1 {
			labels = append([]string{nodes[i].Label}, labels...)
			depth--
		}
	}
	return strings.Join(labels, "/")
}

func (m Model) openSource() string {
	if err := open.Run(m.sourcePath); err != nil {
		return fmt.Sprintf("open failed: %v", err)
	}
	return "opened " + m.sourcePath
}

// renderPreview renders n's image data inline, preferring the kitty
// graphics protocol when the terminal supports it and falling back to
// pixterm's ANSI-block renderer otherwise.
func (m Model) renderPreview(n *Node) string {
	if !IsImage(n) {
		return ""
	}
	data, ok := ImageData(n)
	if !ok || len(data) == 0 {
		return ""
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "(unable to decode preview image)"
	}

	const previewWidth, previewHeight = 40, 20
	small := resize.Thumbnail(previewWidth*8, previewHeight*16, img, resize.Lanczos3)

	if m.kittyTerm {
		var buf bytes.Buffer
		if _, err := kitty.Encode(&buf, small); err == nil {
			return buf.String()
		}
	}

	ansi, err := ansimage.NewScaledFromReader(
		bytesReader(small), previewHeight, previewWidth,
		color.Transparent, ansimage.ScaleModeFit, ansimage.NoDithering,
	)
	if err != nil {
		return "(unable to render preview image)"
	}
	return ansi.Render()
}

// bytesReader re-encodes img as PNG into an io.Reader, since pixterm's
// constructor reads an encoded image rather than taking image.Image
// directly.
func bytesReader(img image.Image) *bytes.Reader {
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return bytes.NewReader(buf.Bytes())
}
