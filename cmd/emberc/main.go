// Command emberc is the command-line entry point for the Ember front end,
// grounded on the teacher's cmd.Execute: an olive-driven CLI with a
// log-level selector and a handful of subcommands.
//
// The parser, native backend builder, and linker all sit outside this
// front end's scope (see the package docs on ast and lower), so this
// driver stops at the boundary those pieces would otherwise start:
// "tokens" exercises the lexer directly rather than pretending to run a
// full build.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ComedicChimera/olive"

	"emberc/config"
	"emberc/report"
	"emberc/token"
)

func main() {
	cli := olive.NewCLI("emberc", "emberc is the command-line front end for the Ember compiler", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false,
		[]string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	tokensCmd := cli.AddSubcommand("tokens", "lex a source file and print its token stream", true)
	tokensCmd.AddPrimaryArg("file-path", "the path to the source file to lex", true)

	modCmd := cli.AddSubcommand("mod", "manage an Ember project manifest", true)
	modInitCmd := modCmd.AddSubcommand("init", "create a new project manifest in the current directory", true)
	modInitCmd.AddPrimaryArg("project-name", "the name of the new project", true)

	cli.AddSubcommand("version", "print the emberc version", false)

	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, "usage error:", err)
		os.Exit(1)
	}

	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "tokens":
		execTokensCommand(subResult, result.Arguments["loglevel"].(string))
	case "mod":
		execModCommand(subResult)
	case "version":
		fmt.Println("emberc", config.EmberVersion)
	default:
		fmt.Fprintln(os.Stderr, "no subcommand given; try `emberc version`")
		os.Exit(1)
	}
}

func execTokensCommand(result *olive.ArgParseResult, loglevel string) {
	level := parseLogLevel(loglevel)

	relPath, _ := result.PrimaryArg()
	absPath, err := filepath.Abs(relPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "path error:", err)
		os.Exit(1)
	}

	report.Init(level, absPath)

	src, err := os.ReadFile(absPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error reading source file:", err)
		os.Exit(1)
	}

	lex := token.NewLexer(token.NewStringSource(string(src)), absPath)
	for {
		tok := lex.NextToken()
		printToken(tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	report.Finish()
}

func printToken(tok *token.Token) {
	switch tok.Kind {
	case token.IDENT:
		fmt.Printf("IDENT(%s)\n", tok.Lexeme)
	case token.NUMBER:
		fmt.Printf("NUMBER(%s base=%d suffix=%q dot=%v)\n", tok.NumDigits, tok.NumBase, string(tok.NumSuffix), tok.NumHasDot)
	case token.STRING:
		fmt.Printf("STRING(%q kind=%q)\n", tok.StrValue, string(tok.StrKind))
	case token.CHAR:
		fmt.Printf("CHAR(%q)\n", string(tok.CharValue))
	case token.EOF:
		fmt.Println("EOF")
	default:
		fmt.Printf("TOKEN(%d)\n", tok.Kind)
	}
}

func execModCommand(result *olive.ArgParseResult) {
	subcmdName, subResult, _ := result.Subcommand()
	if subcmdName != "init" {
		return
	}

	name, _ := subResult.PrimaryArg()
	workDir, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, "path error:", err)
		os.Exit(1)
	}

	if err := config.Init(name, workDir); err != nil {
		fmt.Fprintln(os.Stderr, "module init error:", err)
		os.Exit(1)
	}
	fmt.Printf("initialized project %q in %s\n", name, filepath.Join(workDir, config.ManifestFileName))
}

func parseLogLevel(s string) report.LogLevel {
	switch s {
	case "silent":
		return report.LogLevelSilent
	case "error":
		return report.LogLevelError
	case "warn":
		return report.LogLevelWarn
	default:
		return report.LogLevelVerbose
	}
}
