package htmldoc

import (
	"testing"

	"github.com/typfold/typmark/model"
)

func importTable(t *testing.T, src string) *model.TablePayload {
	t.Helper()
	blocks := parseHTML(t, src, FilterNone).Blocks()
	if len(blocks) != 1 || blocks[0].Type != model.TypeTable {
		t.Fatalf("blocks = %+v, want one table", blocks)
	}
	return blocks[0].Table
}

func TestImportTable_Simple(t *testing.T) {
	tbl := importTable(t, `<body><table>
		<thead><tr><th>h1</th><th>h2</th></tr></thead>
		<tbody><tr><td>a</td><td>b</td></tr></tbody>
	</table></body>`)

	if tbl.Rows != 2 || tbl.Cols != 2 {
		t.Fatalf("shape = %dx%d, want 2x2", tbl.Rows, tbl.Cols)
	}
	if tbl.Cells[0][0].Content != "h1" || tbl.Cells[1][1].Content != "b" {
		t.Errorf("cells = %+v", tbl.Cells)
	}
}

func TestImportTable_Colspan(t *testing.T) {
	tbl := importTable(t, `<body><table>
		<tr><td colspan="2">wide</td></tr>
		<tr><td>a</td><td>b</td></tr>
	</table></body>`)

	if tbl.Cols != 2 {
		t.Fatalf("cols = %d, want 2", tbl.Cols)
	}
	if tbl.Cells[0][0].ColSpan != 2 {
		t.Errorf("span cell = %+v", tbl.Cells[0][0])
	}
	if !tbl.Cells[0][1].Hidden {
		t.Error("covered position should be hidden")
	}
}

// HTML omits the cells a rowspan covers from the following rows; the grid
// keeps a hidden cell there and shifts the real cells right.
func TestImportTable_Rowspan(t *testing.T) {
	tbl := importTable(t, `<body><table>
		<tr><td rowspan="2">tall</td><td>r1</td></tr>
		<tr><td>r2</td></tr>
	</table></body>`)

	if tbl.Rows != 2 || tbl.Cols != 2 {
		t.Fatalf("shape = %dx%d, want 2x2", tbl.Rows, tbl.Cols)
	}
	if tbl.Cells[0][0].RowSpan != 2 {
		t.Errorf("span cell = %+v", tbl.Cells[0][0])
	}
	if !tbl.Cells[1][0].Hidden {
		t.Error("covered position should be hidden")
	}
	if tbl.Cells[1][1].Content != "r2" {
		t.Errorf("shifted cell = %+v", tbl.Cells[1][1])
	}
}

func TestImportTable_Empty(t *testing.T) {
	blocks := parseHTML(t, `<body><table></table><p>after</p></body>`, FilterNone).Blocks()
	for _, b := range blocks {
		if b.Type == model.TypeTable {
			t.Errorf("empty table should be dropped: %+v", b)
		}
	}
}
