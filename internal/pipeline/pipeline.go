// Package pipeline threads a single compilation run's state through the
// lex -> parse -> build -> analyze -> generate stages (spec.md §2, §5), the
// way the teacher's internal/pipeline.Pipeline/Processor pair threads a
// PipelineContext through its own stage list — generalized here to the
// Context fields this compiler's stages actually produce.
package pipeline

import (
	"github.com/hhramberg/mirc/internal/ast"
	"github.com/hhramberg/mirc/internal/diagnostics"
	"github.com/hhramberg/mirc/internal/mir"
	"github.com/hhramberg/mirc/internal/parsetree"
)

// Context is the value handed from one stage to the next. Earlier fields
// are read-only to later stages; each stage fills in its own field and
// otherwise passes the rest through unchanged (spec.md §5: "handed to the
// next stage by move").
type Context struct {
	FilePath string
	Source   string

	Sink *diagnostics.Sink

	ParseTree *parsetree.Program
	Program   *ast.Program
	Module    *mir.Module
}

// NewContext creates a Context for one run over source, with a fresh sink
// in lang.
func NewContext(filePath, source string, lang diagnostics.Language) *Context {
	sink := diagnostics.NewSink()
	sink.SetLanguage(lang)
	return &Context{FilePath: filePath, Source: source, Sink: sink}
}

// Processor is one pipeline stage.
type Processor interface {
	Process(ctx *Context) *Context
}

// Pipeline runs an ordered list of Processors over one Context.
type Pipeline struct {
	processors []Processor
}

// New creates a Pipeline running processors in order.
func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes every stage in order, continuing even once the sink holds
// errors so that later stages (when they can still run meaningfully) keep
// contributing diagnostics from one invocation — mirroring the teacher's
// "continue on errors to collect diagnostics from all stages" comment.
// Stages that require a clean sink check ctx.Sink.HasErrors() themselves
// before doing real work (spec.md §2/§7's stage-boundary gate).
func (p *Pipeline) Run(initial *Context) *Context {
	ctx := initial
	for _, proc := range p.processors {
		ctx = proc.Process(ctx)
	}
	return ctx
}
