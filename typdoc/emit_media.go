package typdoc

import (
	"strconv"
	"strings"

	"github.com/typfold/typmark/assets"
	"github.com/typfold/typmark/marker"
	"github.com/typfold/typmark/model"
)

// chartPlaceholder is the visible stand-in for a chart whose image has
// not been rendered yet. Emitting it keeps the document valid instead of
// referencing a missing media file.
const chartPlaceholder = `#align(center)[#box(stroke: 0.5pt + gray, inset: 8pt)[Chart not yet generated]]`

func (s *serializer) emitImage(b *model.Block) string {
	payload := model.ImagePayload{
		URL:      b.URL,
		Width:    b.Width,
		Height:   b.Height,
		Align:    b.Align,
		Caption:  marker.FlattenText(b.Caption),
		Font:     b.Font,
		FontSize: b.FontSize,
	}
	out := marker.MustEncode(marker.TagImage, payload)

	if !assets.ValidURL(b.URL) {
		return out
	}

	caption := b.Caption
	if caption != "" && s.opts.Settings.ImageCaptionNumbering {
		s.imageNum++
		caption = "Figure " + strconv.Itoa(s.imageNum) + ": " + caption
	}
	visible := s.imageCall(b)
	if caption != "" {
		visible = "#figure(" + strings.TrimPrefix(visible, "#") + ", caption: [" + flattenVisible(caption) + "])"
	}
	if b.Align != "" {
		visible = "#align(" + b.Align + ")[" + visible + "]"
	}
	return out + "\n" + visible
}

func (s *serializer) imageCall(b *model.Block) string {
	args := []string{`"` + b.URL + `"`}
	if b.Width != 0 {
		args = append(args, "width: "+formatNum(b.Width)+"%")
	}
	if b.Height != 0 {
		args = append(args, "height: "+formatPt(b.Height))
	}
	return "#image(" + strings.Join(args, ", ") + ")"
}

func (s *serializer) emitChart(b *model.Block) string {
	chart := b.Chart
	if chart == nil {
		chart = &model.ChartPayload{}
	}
	out := marker.MustEncode(marker.TagChart, *chart)

	if !assets.ValidURL(chart.ImageURL) {
		return out + "\n" + chartPlaceholder
	}
	visible := `#image("` + chart.ImageURL + `")`
	if chart.Title != "" {
		visible = "#figure(" + strings.TrimPrefix(visible, "#") + ", caption: [" + flattenVisible(chart.Title) + "])"
	}
	return out + "\n" + visible
}

func (s *serializer) emitTable(b *model.Block) string {
	payload := b.Table
	if payload == nil {
		payload = model.DefaultTablePayload()
	}
	payload = payload.Clone()
	payload.Normalize()

	encoded := payload.Clone()
	encoded.Caption = marker.FlattenText(encoded.Caption)
	for i := range encoded.Cells {
		for j := range encoded.Cells[i] {
			encoded.Cells[i][j].Content = marker.FlattenText(encoded.Cells[i][j].Content)
		}
	}
	out := marker.MustEncode(marker.TagTable, encoded)

	caption := payload.Caption
	if caption != "" && s.opts.Settings.TableCaptionNumbering {
		s.tableNum++
		caption = "Table " + strconv.Itoa(s.tableNum) + ": " + caption
	}

	var sb strings.Builder
	indent := ""
	if caption != "" {
		sb.WriteString("#figure(\n  table(\n")
		indent = "  "
	} else {
		sb.WriteString("#table(\n")
	}
	sb.WriteString(indent + "  columns: " + strconv.Itoa(payload.Cols) + ",\n")
	for _, row := range payload.Cells {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			if cell.Hidden {
				continue
			}
			cells = append(cells, tableCellExpr(cell))
		}
		if len(cells) > 0 {
			sb.WriteString(indent + "  " + strings.Join(cells, ", ") + ",\n")
		}
	}
	if caption != "" {
		sb.WriteString("  ),\n  caption: [" + flattenVisible(caption) + "],\n)")
	} else {
		sb.WriteString(")")
	}
	return out + "\n" + sb.String()
}

func tableCellExpr(cell model.Cell) string {
	content := flattenVisible(cell.Content)
	if cell.RowSpan <= 1 && cell.ColSpan <= 1 {
		return "[" + content + "]"
	}
	var args []string
	if cell.ColSpan > 1 {
		args = append(args, "colspan: "+strconv.Itoa(cell.ColSpan))
	}
	if cell.RowSpan > 1 {
		args = append(args, "rowspan: "+strconv.Itoa(cell.RowSpan))
	}
	return "table.cell(" + strings.Join(args, ", ") + ")[" + content + "]"
}

// flattenVisible keeps multi-line structured text on one visible line.
// The authoritative text lives in the marker payload; the visible form
// only needs to look right.
func flattenVisible(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", " "), "\n", " ")
}
