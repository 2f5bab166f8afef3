package marker

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/typfold/typmark/model"
)

func TestEncodeDecode(t *testing.T) {
	in := model.SpacePayload{Space: 24}
	tok := MustEncode(TagVSpace, in)

	if !strings.HasPrefix(tok, "/*VSPACE:") || !strings.HasSuffix(tok, "*/") {
		t.Fatalf("unexpected token shape: %q", tok)
	}
	if strings.Contains(tok, "\n") {
		t.Errorf("token must be single-line: %q", tok)
	}

	var out model.SpacePayload
	if !Decode(tok, TagVSpace, &out) {
		t.Fatal("Decode failed on freshly encoded token")
	}
	if out != in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestEncodePayloadIsBase64JSON(t *testing.T) {
	tok := MustEncode(TagDoc, model.DefaultSettings())
	body := strings.TrimSuffix(strings.TrimPrefix(tok, "/*DOC:"), "*/")
	data, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		t.Fatalf("payload is not base64: %v", err)
	}
	if !strings.HasPrefix(string(data), "{") {
		t.Errorf("payload is not JSON: %q", data)
	}
}

func TestBare(t *testing.T) {
	if got := Bare(TagAnswer); got != "/*ANSWER*/" {
		t.Errorf("Bare(TagAnswer) = %q", got)
	}
	if got := Bare(TagCoverEnd); got != "/*COVER_END*/" {
		t.Errorf("Bare(TagCoverEnd) = %q", got)
	}
}

func TestSplit(t *testing.T) {
	tok := MustEncode(TagCompositeRow, model.CompositePayload{Justify: "space-between"})
	line := tok + "#box[a]#h(1fr)#box[b]"

	tag, payload, before, after, ok := Split(line)
	if !ok {
		t.Fatal("Split failed")
	}
	if tag != TagCompositeRow {
		t.Errorf("tag = %q, want COMPOSITE_ROW", tag)
	}
	if payload == nil {
		t.Error("expected non-nil payload")
	}
	if before != "" {
		t.Errorf("before = %q, want empty", before)
	}
	if after != "#box[a]#h(1fr)#box[b]" {
		t.Errorf("after = %q", after)
	}
}

func TestSplit_NoToken(t *testing.T) {
	tests := []string{
		"plain text",
		"",
		"/* not a tag */",
		"/*UNKNOWN:abc*/",
		"/*TABLE:unterminated",
	}
	for _, line := range tests {
		if _, _, _, _, ok := Split(line); ok {
			t.Errorf("Split(%q) ok = true, want false", line)
		}
	}
}

func TestSplit_DamagedBase64(t *testing.T) {
	tag, payload, _, _, ok := Split("/*TABLE:!!!not-base64!!!*/")
	if !ok {
		t.Fatal("damaged base64 should still report the tag")
	}
	if tag != TagTable {
		t.Errorf("tag = %q, want TABLE", tag)
	}
	if payload != nil {
		t.Errorf("payload = %q, want nil for damaged base64", payload)
	}
}

func TestDecode_WrongTag(t *testing.T) {
	tok := MustEncode(TagVSpace, model.SpacePayload{Space: 10})
	var out model.TablePayload
	if Decode(tok, TagTable, &out) {
		t.Error("Decode should reject a token of a different tag")
	}
}

func TestHas(t *testing.T) {
	tok := MustEncode(TagMath, model.MathPayload{Latex: `\frac{1}{2}`})
	if !Has(tok, TagMath) {
		t.Error("Has should find the MATH token")
	}
	if Has(tok, TagImage) {
		t.Error("Has should not match a different tag")
	}
	if !Has(Bare(TagAnswer), TagAnswer) {
		t.Error("Has should match bare tokens")
	}
}

func TestFlattenRestoreText(t *testing.T) {
	in := "first\nsecond\r\nthird"
	flat := FlattenText(in)
	if strings.ContainsAny(flat, "\r\n") {
		t.Errorf("FlattenText left raw newlines: %q", flat)
	}
	if got, want := RestoreText(flat), "first\nsecond\nthird"; got != want {
		t.Errorf("RestoreText = %q, want %q", got, want)
	}
}

func TestEncodeMultilineCellSurvives(t *testing.T) {
	payload := model.NewTablePayload(1, 1)
	payload.Cells[0][0].Content = FlattenText("line one\nline two")
	tok := MustEncode(TagTable, payload)

	if strings.Contains(tok, "\n") {
		t.Fatalf("token with multi-line cell must stay single-line: %q", tok)
	}

	var out model.TablePayload
	if !Decode(tok, TagTable, &out) {
		t.Fatal("Decode failed")
	}
	if got := RestoreText(out.Cells[0][0].Content); got != "line one\nline two" {
		t.Errorf("cell content = %q", got)
	}
}
