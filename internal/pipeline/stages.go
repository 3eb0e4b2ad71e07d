package pipeline

import (
	"github.com/hhramberg/mirc/internal/analyzer"
	"github.com/hhramberg/mirc/internal/astbuilder"
	"github.com/hhramberg/mirc/internal/lexer"
	"github.com/hhramberg/mirc/internal/mirgen"
	"github.com/hhramberg/mirc/internal/parser"
	"github.com/hhramberg/mirc/internal/token"
)

// LexParseStage runs the lexer to completion and feeds the resulting token
// stream to the parser, leaving ctx.ParseTree populated. Grounded on the
// teacher's lex-then-parse split between internal/lexer and
// internal/parser: the whole source is lexed up front rather than pulled
// token-by-token, since the parser already expects a materialized []token.Token.
type LexParseStage struct{}

func (LexParseStage) Process(ctx *Context) *Context {
	lx := lexer.New(ctx.Source)
	var toks []token.Token
	for {
		tok := lx.NextToken()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	p := parser.New(toks, ctx.Sink)
	ctx.ParseTree = p.ParseProgram()
	return ctx
}

// BuildStage lowers the parse tree to the typed-symbol-free AST shape
// internal/analyzer expects.
type BuildStage struct{}

func (BuildStage) Process(ctx *Context) *Context {
	if ctx.ParseTree == nil {
		return ctx
	}
	b := astbuilder.New()
	ctx.Program = b.Build(ctx.ParseTree)
	return ctx
}

// AnalyzeStage runs semantic analysis in place over ctx.Program, resolving
// symbols and types and reporting every diagnostic into ctx.Sink.
type AnalyzeStage struct{}

func (AnalyzeStage) Process(ctx *Context) *Context {
	if ctx.Program == nil {
		return ctx
	}
	w := analyzer.New(ctx.Sink)
	w.Analyze(ctx.Program)
	return ctx
}

// GenerateStage lowers the analyzed AST to MIR. Per spec.md §2/§7's
// stage-boundary gate, it refuses to generate MIR once the sink already
// holds errors — a program the analyzer rejected has no sound lowering.
type GenerateStage struct {
	ModuleName string
}

func (s GenerateStage) Process(ctx *Context) *Context {
	if ctx.Program == nil || ctx.Sink.HasErrors() {
		return ctx
	}
	g := mirgen.New(ctx.Sink)
	ctx.Module = g.Generate(s.ModuleName, ctx.Program)
	return ctx
}

// Standard builds the Pipeline mirc runs for one source file: lex+parse,
// build, analyze, generate.
func Standard(moduleName string) *Pipeline {
	return New(
		LexParseStage{},
		BuildStage{},
		AnalyzeStage{},
		GenerateStage{ModuleName: moduleName},
	)
}
