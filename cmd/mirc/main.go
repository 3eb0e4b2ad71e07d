// Command mirc compiles a single source file down to MIR (spec.md §6.4):
// lex -> parse -> build -> analyze -> generate, printing diagnostics and,
// on request, the AST/MIR dumps and a wire-encoded MIR artifact.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hhramberg/mirc/internal/cache"
	"github.com/hhramberg/mirc/internal/config"
	"github.com/hhramberg/mirc/internal/diagnostics"
	"github.com/hhramberg/mirc/internal/pipeline"
	"github.com/hhramberg/mirc/pkg/mirwire"
)

// Exit codes, per spec.md §6.4 / SPEC_FULL.md §6: 0 success, 1 a
// source-program or usage failure, 2 a compiler-internal failure (distinct
// from the program under compilation being wrong).
const (
	exitOK             = 0
	exitSourceOrUsage  = 1
	exitCompilerBroken = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("mirc", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	en := fs.Bool("en", false, "use English diagnostic templates")
	ja := fs.Bool("ja", false, "use Japanese diagnostic templates")
	dbgAST := fs.Bool("dbg-ast-print", false, "print the built AST before analysis")
	dbgMIR := fs.Bool("dbg-mir-print", false, "print the generated MIR")
	emitWire := fs.Bool("emit-mir-wire", false, "write <source>.mir.pb, the protowire-encoded MIR module")
	cachePath := fs.String("cache", "", "path to the incremental-compile cache database")
	configPath := fs.String("config", "", "path to a mirc.yaml project file (auto-discovered if omitted)")
	version := fs.Bool("version", false, "print the mirc version and exit")

	if err := fs.Parse(args); err != nil {
		return exitSourceOrUsage
	}
	if *version {
		fmt.Println("mirc " + config.Version)
		return exitOK
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: mirc [-en|-ja] [-dbg-ast-print] [-dbg-mir-print] [-emit-mir-wire] [-cache <path>] [-config <path>] <source-file>")
		return exitSourceOrUsage
	}
	sourcePath := fs.Arg(0)
	if !config.HasSourceExt(sourcePath) {
		fmt.Fprintf(os.Stderr, "mirc: warning: %s does not have a recognized source extension (%s)\n", sourcePath, config.SourceFileExt)
	}

	proj := loadProject(*configPath, sourcePath)

	lang := proj.Language()
	if *en {
		lang = diagnostics.LangEN
	}
	if *ja {
		lang = diagnostics.LangJA
	}

	if *cachePath == "" {
		*cachePath = proj.CachePath
	}
	if !*dbgAST {
		*dbgAST = proj.DumpAST
	}
	if !*dbgMIR {
		*dbgMIR = proj.DumpMIR
	}
	if !*emitWire {
		*emitWire = proj.EmitWire
	}

	src, err := os.ReadFile(sourcePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mirc: %v\n", err)
		return exitSourceOrUsage
	}

	var compileCache *cache.Cache
	var sourceHash string
	if *cachePath != "" {
		compileCache, err = cache.Open(*cachePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "mirc: %v\n", err)
			return exitSourceOrUsage
		}
		defer compileCache.Close()
		sourceHash = cache.HashSource(src)
		if prior, ok, _ := compileCache.Lookup(sourceHash); ok && prior.DiagCount == 0 {
			fmt.Fprintf(os.Stderr, "mirc: %s unchanged since last clean compile (cache hit)\n", sourcePath)
			return exitOK
		}
	}

	ctx := pipeline.NewContext(sourcePath, string(src), lang)

	moduleName := filepath.Base(sourcePath)
	p := pipeline.Standard(moduleName)
	ctx = p.Run(ctx)

	if ctx.Program != nil && *dbgAST {
		ctx.Sink.ReportRaw("Semantic Analysis Finished!", diagnostics.SeverityInfo, nil)
		fmt.Println("--- AST Dump ---")
		fmt.Print(ctx.Program.Dump())
		fmt.Println("-------")
	}

	if ctx.Sink.Count(diagnostics.SeverityCompilerInternal) > 0 {
		printDiagnostics(ctx.Sink)
		return exitCompilerBroken
	}
	if ctx.Sink.HasErrors() {
		printDiagnostics(ctx.Sink)
		if compileCache != nil {
			compileCache.Store(sourceHash, cache.Entry{DiagCount: ctx.Sink.Count(diagnostics.SeverityError)})
		}
		return exitSourceOrUsage
	}

	if ctx.Module != nil && *dbgMIR {
		ctx.Sink.ReportRaw("Compile Finished!", diagnostics.SeverityInfo, nil)
		fmt.Println("--- MIR Dump ---")
		fmt.Print(ctx.Module.Dump())
		fmt.Println("-------")
	}

	printDiagnostics(ctx.Sink)

	if ctx.Module != nil && *emitWire {
		wirePath := config.TrimSourceExt(sourcePath) + ".mir.pb"
		if err := os.WriteFile(wirePath, mirwire.Encode(ctx.Module), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "mirc: writing %s: %v\n", wirePath, err)
			return exitSourceOrUsage
		}
	}

	if compileCache != nil && ctx.Module != nil {
		compileCache.Store(sourceHash, cache.Entry{
			DiagCount: 0,
			MIRDigest: cache.DigestMIR(ctx.Module.Dump()),
		})
	}

	return exitOK
}

func loadProject(explicitPath, sourcePath string) *config.Project {
	path := explicitPath
	if path == "" {
		found, _ := config.Find(filepath.Dir(sourcePath))
		path = found
	}
	if path == "" {
		return &config.Project{}
	}
	proj, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mirc: %v\n", err)
		return &config.Project{}
	}
	return proj
}

func printDiagnostics(sink *diagnostics.Sink) {
	for _, e := range sink.All() {
		fmt.Fprintln(os.Stderr, colorizeSeverity(e.Error()))
	}
}
