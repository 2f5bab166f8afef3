package model

import (
	"encoding/json"
	"fmt"
)

// ValidateBlocks parses and validates an untrusted JSON block list, as
// produced by external tooling such as an AI output normalizer. It is the
// one place in the system where malformed input surfaces as a hard error;
// everything downstream can assume a well-formed block list.
func ValidateBlocks(raw []byte) ([]Block, error) {
	var blocks []Block
	if err := json.Unmarshal(raw, &blocks); err != nil {
		return nil, fmt.Errorf("block list is not a JSON array of blocks: %w", err)
	}
	for i := range blocks {
		if err := validateBlock(&blocks[i], 0); err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
	}
	return blocks, nil
}

// maxNestingDepth bounds container recursion in externally supplied block
// lists. Real documents nest one or two levels deep.
const maxNestingDepth = 16

func validateBlock(b *Block, depth int) error {
	if depth > maxNestingDepth {
		return fmt.Errorf("nesting exceeds %d levels", maxNestingDepth)
	}
	if !b.Type.Valid() {
		return fmt.Errorf("unknown block type %q", string(b.Type))
	}
	if b.Type == TypeList {
		// Accepted input alias. List content lives in paragraph line runs
		// everywhere else in the system, so the type is canonicalized here
		// and round-trips type-stably from this point on.
		b.Type = TypeParagraph
	}
	if b.ID == "" {
		b.ID = newID()
	}
	switch b.Type {
	case TypeHeading:
		if b.Level < 1 || b.Level > 6 {
			return fmt.Errorf("heading level %d out of range 1-6", b.Level)
		}
	case TypeTable:
		if b.Table == nil {
			return fmt.Errorf("table block without table payload")
		}
		b.Table.Normalize()
	case TypeChart:
		if b.Chart == nil {
			return fmt.Errorf("chart block without chart payload")
		}
	case TypeCompositeRow, TypeCover:
		if b.Content != "" {
			return fmt.Errorf("container block carries content %q; structure must live in children", b.Content)
		}
		for i := range b.Children {
			if err := validateBlock(&b.Children[i], depth+1); err != nil {
				return fmt.Errorf("child %d: %w", i, err)
			}
		}
	case TypeVerticalSpace:
		if b.Space < 0 {
			return fmt.Errorf("negative vertical space %v", b.Space)
		}
	}
	if !b.Type.Container() && len(b.Children) > 0 {
		return fmt.Errorf("%s block must not carry children", b.Type)
	}
	return nil
}
