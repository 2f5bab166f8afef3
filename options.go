package typmark

import (
	"github.com/typfold/typmark/model"
	"github.com/typfold/typmark/typdoc"
)

// renderOptions holds per-document serialization configuration.
type renderOptions struct {
	settings   *model.DocumentSettings // nil means header-or-default
	target     typdoc.Target
	omitHeader bool
}

// defaultOptions returns the default render options: storage target with
// the settings header emitted.
func defaultOptions() renderOptions {
	return renderOptions{
		settings:   nil,
		target:     typdoc.TargetStorage,
		omitHeader: false,
	}
}

// clone creates a deep copy of renderOptions.
func (o renderOptions) clone() renderOptions {
	out := renderOptions{
		target:     o.target,
		omitHeader: o.omitHeader,
	}
	if o.settings != nil {
		s := *o.settings
		out.settings = &s
	}
	return out
}
