package typdoc

import (
	"strconv"
	"strings"

	"github.com/typfold/typmark/marker"
	"github.com/typfold/typmark/model"
)

func recognizeTable(p *parser, lines []string, cur int) (*model.Block, int, bool) {
	s := strings.TrimSpace(lines[cur])

	if marker.Has(s, marker.TagTable) {
		var payload model.TablePayload
		if !marker.Decode(s, marker.TagTable, &payload) {
			p.warnf(cur, WarningDecodeFailure, "table marker; substituting an empty 2x2 table")
			payload = *model.DefaultTablePayload()
		}
		payload.Caption = marker.RestoreText(payload.Caption)
		for i := range payload.Cells {
			for j := range payload.Cells[i] {
				payload.Cells[i][j].Content = marker.RestoreText(payload.Cells[i][j].Content)
			}
		}
		payload.InferSpans()
		blk := model.NewBlock(model.TypeTable)
		blk.Table = &payload
		return &blk, skipVisibleTable(lines, cur+1), true
	}

	// Legacy table without a marker: rebuild the payload from the visible
	// expression. The marker payload, when present, is always preferred
	// over anything re-derived here.
	expr, next, ok := tableExpression(lines, cur)
	if !ok {
		return nil, 0, false
	}
	payload := payloadFromTableExpr(expr)
	if payload == nil {
		return nil, 0, false
	}
	blk := model.NewBlock(model.TypeTable)
	blk.Table = payload
	return &blk, next, true
}

// skipVisibleTable advances past the visible table rendering following a
// table marker, which may span several lines.
func skipVisibleTable(lines []string, cur int) int {
	if cur >= len(lines) {
		return cur
	}
	s := strings.TrimSpace(lines[cur])
	if !strings.HasPrefix(s, "#figure(") && !strings.HasPrefix(s, "#table(") {
		return cur
	}
	openIdx := len("#figure")
	if strings.HasPrefix(s, "#table(") {
		openIdx = len("#table")
	}
	if _, next, ok := joinBalanced(lines, cur, openIdx); ok {
		return next
	}
	return cur
}

// tableExpression detects a legacy visible table at cur and returns the
// joined expression.
func tableExpression(lines []string, cur int) (expr string, next int, ok bool) {
	s := strings.TrimSpace(lines[cur])
	switch {
	case strings.HasPrefix(s, "#table("):
		return joinBalanced(lines, cur, len("#table"))
	case strings.HasPrefix(s, "#figure("):
		expr, next, ok = joinBalanced(lines, cur, len("#figure"))
		if !ok || !strings.Contains(expr, "table(") {
			return "", 0, false
		}
		return expr, next, true
	}
	return "", 0, false
}

// legacyCell is one cell parsed from a visible table expression.
type legacyCell struct {
	content string
	rowSpan int
	colSpan int
}

// payloadFromTableExpr rebuilds a TablePayload from the visible table
// expression. Cell placement honors explicit spans by marking the covered
// grid positions hidden.
func payloadFromTableExpr(expr string) *model.TablePayload {
	tblIdx := strings.Index(expr, "table(")
	if tblIdx < 0 {
		return nil
	}
	tblEnd := balancedEnd(expr, tblIdx+len("table"))
	if tblEnd < 0 {
		return nil
	}
	body := expr[tblIdx+len("table(") : tblEnd]

	cols := 0
	var cells []legacyCell
	for _, arg := range splitArgs(body) {
		if k, v, isNamed := cutArg(arg); isNamed {
			if k == "columns" {
				cols = columnCount(v)
			}
			continue
		}
		cells = append(cells, parseTableCells(arg)...)
	}
	if cols <= 0 || len(cells) == 0 {
		return nil
	}

	rows := placeRows(cols, cells)
	payload := model.NewTablePayload(len(rows), cols)
	for i := range rows {
		copy(payload.Cells[i], rows[i])
	}
	if caption, ok := figureCaption(expr, tblEnd); ok {
		payload.Caption = stripCaptionNumber(caption, "Table")
	}
	return payload
}

// columnCount reads a columns argument: a plain count or a track list
// like (1fr, 1fr, auto).
func columnCount(v string) int {
	v = strings.TrimSpace(v)
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	if strings.HasPrefix(v, "(") && strings.HasSuffix(v, ")") {
		return len(splitArgs(v[1 : len(v)-1]))
	}
	return 0
}

// parseTableCells parses one positional table argument into cells: a bare
// [content] group, a table.cell(...)[content] call, or a table.header(...)
// wrapper whose groups all become cells.
func parseTableCells(arg string) []legacyCell {
	switch {
	case strings.HasPrefix(arg, "["):
		if end := balancedEnd(arg, 0); end >= 0 {
			return []legacyCell{{content: arg[1:end], rowSpan: 1, colSpan: 1}}
		}
	case strings.HasPrefix(arg, "table.cell("):
		argEnd := balancedEnd(arg, len("table.cell"))
		if argEnd < 0 {
			break
		}
		cell := legacyCell{rowSpan: 1, colSpan: 1}
		named, _ := namedArgs(arg[len("table.cell(") : argEnd])
		if v, ok := named["rowspan"]; ok {
			if n, err := strconv.Atoi(v); err == nil {
				cell.rowSpan = n
			}
		}
		if v, ok := named["colspan"]; ok {
			if n, err := strconv.Atoi(v); err == nil {
				cell.colSpan = n
			}
		}
		if groups, _ := bracketGroups(arg, argEnd+1); len(groups) > 0 {
			cell.content = groups[0]
		}
		return []legacyCell{cell}
	case strings.HasPrefix(arg, "table.header("):
		argEnd := balancedEnd(arg, len("table.header"))
		if argEnd < 0 {
			break
		}
		var cells []legacyCell
		for _, inner := range splitArgs(arg[len("table.header(") : argEnd]) {
			cells = append(cells, parseTableCells(inner)...)
		}
		return cells
	}
	return nil
}

// placeRows lays parsed cells into a grid, row-major, skipping positions
// covered by an earlier cell's span and marking them hidden.
func placeRows(cols int, cells []legacyCell) [][]model.Cell {
	var grid [][]model.Cell
	ensureRow := func(r int) {
		for len(grid) <= r {
			row := make([]model.Cell, cols)
			for j := range row {
				row[j] = model.Cell{RowSpan: 1, ColSpan: 1}
			}
			grid = append(grid, row)
		}
	}
	occupied := make(map[[2]int]bool)
	r, c := 0, 0
	advance := func() {
		c++
		if c >= cols {
			c, r = 0, r+1
		}
	}
	for _, cell := range cells {
		for occupied[[2]int{r, c}] {
			advance()
		}
		ensureRow(r)
		grid[r][c] = model.Cell{
			Content: cell.content,
			RowSpan: cell.rowSpan,
			ColSpan: cell.colSpan,
		}
		for dr := 0; dr < cell.rowSpan; dr++ {
			for dc := 0; dc < cell.colSpan; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				if c+dc >= cols {
					continue
				}
				ensureRow(r + dr)
				grid[r+dr][c+dc] = model.Cell{RowSpan: 1, ColSpan: 1, Hidden: true}
				occupied[[2]int{r + dr, c + dc}] = true
			}
		}
		advance()
	}
	return grid
}
