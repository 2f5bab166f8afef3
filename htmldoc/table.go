package htmldoc

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/typfold/typmark/model"
)

// parseTable converts an HTML table element into a table payload. Cells
// carrying rowspan/colspan attributes are expanded into the rectangular
// grid the payload requires, with covered positions marked hidden.
func parseTable(tableNode *html.Node) *model.TablePayload {
	var rows [][]model.Cell
	collectRows(tableNode, &rows)
	if len(rows) == 0 {
		return nil
	}
	return placeSpans(rows)
}

// collectRows gathers tr rows from a table, descending into thead, tbody
// and tfoot sections.
func collectRows(n *html.Node, rows *[][]model.Cell) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "thead", "tbody", "tfoot":
			collectRows(c, rows)
		case "tr":
			if row := parseRow(c); len(row) > 0 {
				*rows = append(*rows, row)
			}
		}
	}
}

func parseRow(tr *html.Node) []model.Cell {
	var row []model.Cell
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || (c.Data != "td" && c.Data != "th") {
			continue
		}
		cell := model.Cell{Content: textContent(c), RowSpan: 1, ColSpan: 1}
		if v := spanAttr(c, "rowspan"); v > 1 {
			cell.RowSpan = v
		}
		if v := spanAttr(c, "colspan"); v > 1 {
			cell.ColSpan = v
		}
		row = append(row, cell)
	}
	return row
}

func spanAttr(n *html.Node, key string) int {
	v, err := strconv.Atoi(strings.TrimSpace(getAttr(n, key)))
	if err != nil {
		return 1
	}
	return v
}

// placeSpans lays source rows into a rectangular grid. HTML rows omit the
// cells covered by spans from earlier rows; the payload grid instead keeps
// a cell at every position and hides the covered ones.
func placeSpans(src [][]model.Cell) *model.TablePayload {
	cols := 0
	occupied := make(map[[2]int]bool)
	type placed struct {
		row, col int
		cell     model.Cell
	}
	var placements []placed

	for r, row := range src {
		col := 0
		for _, cell := range row {
			for occupied[[2]int{r, col}] {
				col++
			}
			placements = append(placements, placed{r, col, cell})
			for dr := 0; dr < cell.RowSpan; dr++ {
				for dc := 0; dc < cell.ColSpan; dc++ {
					occupied[[2]int{r + dr, col + dc}] = true
				}
			}
			if end := col + cell.ColSpan; end > cols {
				cols = end
			}
			col += cell.ColSpan
		}
	}

	payload := model.NewTablePayload(len(src), cols)
	for _, p := range placements {
		if p.row >= payload.Rows || p.col >= payload.Cols {
			continue
		}
		payload.Cells[p.row][p.col] = p.cell
		for dr := 0; dr < p.cell.RowSpan; dr++ {
			for dc := 0; dc < p.cell.ColSpan; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				rr, cc := p.row+dr, p.col+dc
				if rr < payload.Rows && cc < payload.Cols {
					payload.Cells[rr][cc] = model.Cell{RowSpan: 1, ColSpan: 1, Hidden: true}
				}
			}
		}
	}
	payload.Normalize()
	return payload
}
