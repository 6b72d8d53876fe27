package abw

import (
	"strings"

	"github.com/pgavlin/abiword-kit/abw/style"
)

const tableCellBorderDefault = "0.01in solid #000000"

// OpenTable handles <table props="...">: it closes any currently open
// block, pushes a new table frame, looks up the pre-computed column count
// from pass one, and emits the open event with one width entry per
// measured column (columns beyond what table-column-props specified get
// an empty width entry).
func (c *ContentCollector) OpenTable(props string) {
	c.closeBlock()
	merged := style.ParsePropString(props)

	id := c.tableCounterNext()
	width := c.tableWidths[id]

	ts := TableState{ID: id, ColumnCount: width, CurrentRow: -1}
	if l, ok := style.ParseLength(merged["margin-left"]); ok {
		ts.LeftMargin, ts.HasLeftMargin = l.Inches(), true
	}
	c.state.TableStates = append(c.state.TableStates, ts)

	out := Props{}
	if ts.HasLeftMargin {
		out["fo:margin-left"] = ts.LeftMargin
	}
	var columns []Props
	for _, w := range strings.Split(merged["table-column-props"], "/") {
		if w == "" {
			continue
		}
		if l, ok := style.ParseLength(w); ok {
			columns = append(columns, Props{"style:column-width": l.Inches()})
		}
	}
	for len(columns) < width {
		columns = append(columns, Props{})
	}
	out["librevenge:columns"] = columns
	c.Out.Add(Element{Kind: OpenTable, Props: out})
}

func (c *ContentCollector) tableCounterNext() int {
	id := c.tableCounter
	c.tableCounter++
	return id
}

// CloseTable closes any open row/cell first, then the table itself.
func (c *ContentCollector) CloseTable() {
	c.closeTable()
}

func (c *ContentCollector) closeTable() {
	if len(c.state.TableStates) == 0 {
		return
	}
	c.closeRowIfOpen()
	c.state.TableStates = c.state.TableStates[:len(c.state.TableStates)-1]
	c.Out.Add(Element{Kind: CloseTable})
}

func (c *ContentCollector) closeRowIfOpen() {
	top := c.state.currentTable()
	if top == nil || !top.RowOpened {
		return
	}
	c.closeCellIfOpen()
	if !top.RowHasCell {
		c.Out.Add(Element{Kind: InsertCoveredTableCell, Props: Props{
			"table:number-columns-spanned": 1,
			"table:number-rows-spanned":    1,
		}})
	}
	top.RowOpened = false
	top.RowHasCell = false
	c.Out.Add(Element{Kind: CloseTableRow})
}

func (c *ContentCollector) closeCellIfOpen() {
	top := c.state.currentTable()
	if top == nil || !top.CellOpened {
		return
	}
	c.closeBlock()
	top.CellOpened = false
	c.Out.Add(Element{Kind: CloseTableCell})
}

// OpenCell handles <cell props="...">: resolves the target (row, col)
// from the attach properties, advances the row cursor (closing/opening
// rows as needed), and opens the cell with its computed span.
func (c *ContentCollector) OpenCell(props string) {
	top := c.state.currentTable()
	if top == nil {
		return
	}
	merged := style.ParsePropString(props)

	rowStart, rowEnd := getCellPos(merged, "top-attach", "bottom-attach", top.CurrentRow+1)
	colStart, colEnd := getCellPos(merged, "left-attach", "right-attach", 0)

	for top.CurrentRow < rowStart {
		c.closeRowIfOpen()
		top.CurrentRow++
		top.RowOpened = true
		top.RowHasCell = false
		c.Out.Add(Element{Kind: OpenTableRow, Props: Props{}})
	}

	top.CellOpened = true
	top.RowHasCell = true

	cellProps := c.resolveParagraphProps("", "")
	applyBorderProps(cellProps, merged, tableCellBorderDefault)
	if v, ok := style.ParseColor(merged["background-color"]); ok {
		cellProps["fo:background-color"] = v
	}
	cellProps["table:number-columns-spanned"] = max1(colEnd - colStart)
	cellProps["table:number-rows-spanned"] = max1(rowEnd - rowStart)
	c.Out.Add(Element{Kind: OpenTableCell, Props: cellProps})
}

// CloseCell handles </cell>: it closes any open block first and
// synthesizes an empty paragraph+span if the cell had none (invariant 4).
func (c *ContentCollector) CloseCell() {
	top := c.state.currentTable()
	if top == nil || !top.CellOpened {
		return
	}
	if !c.state.ParagraphOrListElementOpened {
		c.openBlock(false, Props{})
		c.openSpan(Props{})
	}
	c.closeBlock()
	top.CellOpened = false
	c.Out.Add(Element{Kind: CloseTableCell})
}

func max1(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// getCellPos resolves a cell's [start, end) span along one axis from its
// attach attributes, with the robust fallbacks damaged input needs:
//   - only the end attach given: start = end-1
//   - only the start attach given, but implausibly large (start/1000 >
//     defaultStart): treat as corrupted and use defaultStart instead
//   - both given but end <= start and end > 0: use end-1 as start
func getCellPos(props style.PropMap, startKey, endKey string, defaultStart int) (start, end int) {
	startVal, hasStart := findInt(props[startKey])
	endVal, hasEnd := findInt(props[endKey])

	switch {
	case hasStart && hasEnd:
		start = startVal
		end = endVal
		if end <= start && end > 0 {
			start = end - 1
		}
	case hasEnd:
		end = endVal
		start = end - 1
	case hasStart:
		if startVal/1000 > defaultStart {
			start = defaultStart
		} else {
			start = startVal
		}
		end = start + 1
	default:
		start = defaultStart
		end = start + 1
	}
	if start < 0 {
		start = 0
	}
	if end <= start {
		end = start + 1
	}
	return start, end
}
