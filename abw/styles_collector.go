package abw

import (
	"strconv"

	"github.com/pgavlin/abiword-kit/abw/list"
	"github.com/pgavlin/abiword-kit/abw/style"
	"github.com/sirupsen/logrus"
)

// BinaryData is one entry collected from a <d> element during pass one:
// the raw (already base64-decoded, if applicable) bytes and their MIME
// type.
type BinaryData struct {
	MimeType string
	Data     []byte
}

// stylesTableState mirrors ABWStylesTableState: the minimal per-table
// bookkeeping pass one needs to measure column count.
type stylesTableState struct {
	id         int
	row        int
	width      int
	cellProps  style.PropMap
}

// StylesCollector is the pass-one collector. It measures each table's
// column count from its first row only, indexes every named binary blob,
// and records list definitions; the dispatcher sends it nothing else.
type StylesCollector struct {
	log *logrus.Logger

	tableStates  []stylesTableState
	tableCounter int

	TableWidths map[int]int
	Data        map[string]BinaryData
	ListElements list.Table
}

func NewStylesCollector(log *logrus.Logger) *StylesCollector {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &StylesCollector{
		log:          log,
		TableWidths:  make(map[int]int),
		Data:         make(map[string]BinaryData),
		ListElements: make(list.Table),
	}
}

func (c *StylesCollector) top() *stylesTableState {
	if len(c.tableStates) == 0 {
		return nil
	}
	return &c.tableStates[len(c.tableStates)-1]
}

// OpenTable pushes a new measurement frame for a (possibly nested) table.
func (c *StylesCollector) OpenTable() {
	c.tableStates = append(c.tableStates, stylesTableState{
		id:  c.tableCounter,
		row: -1,
	})
	c.tableCounter++
}

// CloseTable records the measured width for the table being closed and
// pops its frame.
func (c *StylesCollector) CloseTable() {
	top := c.top()
	if top == nil {
		return
	}
	c.TableWidths[top.id] = top.width
	c.tableStates = c.tableStates[:len(c.tableStates)-1]
}

// OpenCell advances the current row according to top-attach (defaulting
// to row+1 when absent) and, only while still on the table's first row,
// grows the measured column count by right-attach - left-attach (or by
// one, if either attach is missing).
func (c *StylesCollector) OpenCell(props string) {
	top := c.top()
	if top == nil {
		return
	}
	top.cellProps = style.ParsePropString(props)

	currentRow, ok := findInt(top.cellProps["top-attach"])
	if !ok {
		currentRow = top.row + 1
	}
	for top.row < currentRow {
		top.row++
	}

	if top.row == 0 {
		left, leftOK := findInt(top.cellProps["left-attach"])
		right, rightOK := findInt(top.cellProps["right-attach"])
		if leftOK && rightOK {
			top.width += right - left
		} else {
			top.width++
		}
	}
}

// CloseCell clears the cell-local property scratch space.
func (c *StylesCollector) CloseCell() {
	if top := c.top(); top != nil {
		top.cellProps = nil
	}
}

// CollectData records a named binary blob for pass two to resolve image
// frames against.
func (c *StylesCollector) CollectData(name, mimeType string, data []byte) {
	if name == "" {
		return
	}
	c.Data[name] = BinaryData{MimeType: mimeType, Data: data}
}

// CollectList records a list definition so pass two can walk parent
// chains by id.
func (c *StylesCollector) CollectList(id uint32, kind list.Kind, decimal, delim string, parentID uint32, start int) {
	c.ListElements[id] = list.Element{
		ID:       id,
		ParentID: parentID,
		Kind:     kind,
		Decimal:  decimal,
		Delim:    delim,
		Start:    start,
	}
}

func findInt(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
