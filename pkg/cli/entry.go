package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/Ondrekk12/pyright/internal/lexer"
	"github.com/Ondrekk12/pyright/internal/parser"
	"github.com/Ondrekk12/pyright/internal/pipeline"
	"github.com/Ondrekk12/pyright/internal/prettyprinter"
	"github.com/Ondrekk12/pyright/internal/utils"
)

const usage = `usage:
  pyright-params <suite.yaml|dir>... normalize every signature in the suites
  pyright-params -e "<signature>"    normalize one signature given inline
`

// Entry is the CLI entry point. Returns the process exit code.
func Entry(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return 1
	}

	if args[0] == "-e" || args[0] == "--expr" {
		if len(args) != 2 {
			fmt.Fprint(os.Stderr, usage)
			return 1
		}
		return runSignature("<expr>", args[1], false, parser.NewTypeEnv())
	}

	exitCode := 0
	for _, arg := range args {
		paths, err := utils.CollectSuiteFiles(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", colorize(err.Error(), colorRed))
			exitCode = 1
			continue
		}
		for _, path := range paths {
			if code := runSuite(path); code != 0 {
				exitCode = code
			}
		}
	}
	return exitCode
}

func runSuite(path string) int {
	suite, err := LoadSuite(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", colorize(err.Error(), colorRed))
		return 1
	}

	env, errs := suite.BuildEnv()
	if len(errs) > 0 {
		for _, e := range errs {
			e.File = path
			fmt.Fprintf(os.Stderr, "- %s\n", colorize(e.Error(), colorRed))
		}
		return 1
	}

	fmt.Printf("%s\n", colorize("== "+utils.ExtractSuiteName(path)+" ==", colorBold))

	exitCode := 0
	for _, sig := range suite.Signatures {
		name := sig.Name
		if name == "" {
			name = sig.Params
		}
		fmt.Printf("%s\n", colorize(name, colorBold))
		if code := runSignature(path, sig.Params, sig.Static, env); code != 0 {
			exitCode = code
		}
	}
	return exitCode
}

func runSignature(filePath, source string, isStatic bool, env *parser.TypeEnv) int {
	p := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{Env: env},
		&pipeline.NormalizeProcessor{},
	)
	ctx := p.Run(&pipeline.PipelineContext{
		FilePath: filePath,
		Source:   source,
		IsStatic: isStatic,
	})

	if ctx.HasErrors() {
		for _, e := range ctx.Errors {
			fmt.Fprintf(os.Stderr, "- %s\n", colorize(e.Error(), colorRed))
		}
		return 1
	}

	printer := prettyprinter.NewDetailsPrinter()
	fmt.Print(printer.Print(ctx.Signature, ctx.Details))
	return 0
}

// --- color support ---

const (
	colorRed  = "31"
	colorBold = "1"
)

func colorize(s, code string) string {
	if !colorEnabled() {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}

func colorEnabled() bool {
	// NO_COLOR convention: https://no-color.org/
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return false
	}
	term := os.Getenv("TERM")
	if term == "dumb" || strings.TrimSpace(term) == "" {
		return false
	}
	return true
}
