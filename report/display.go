package report

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

var (
	errorStyleBG = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	errorColorFG = pterm.FgRed
	warnStyleBG  = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	warnColorFG  = pterm.FgYellow
	infoColorFG  = pterm.FgLightGreen
)

// displayFatal prints a fatal diagnostic, optionally with a source snippet
// for pos, matching the banner-then-snippet shape of the teacher's
// CompileMessage.display.
func displayFatal(kind, message string, pos *Position) {
	fmt.Fprint(os.Stderr, "\n")
	fmt.Fprint(os.Stderr, errorStyleBG.Sprint(strings.Title(kind)+" Error"))
	fmt.Fprint(os.Stderr, " ")
	fmt.Fprintln(os.Stderr, errorColorFG.Sprint(message))

	if pos != nil && rep.srcPath != "" {
		displaySourceSnippet(pos)
	}
}

func renderWarning(message string, pos *Position) string {
	sb := &strings.Builder{}
	fmt.Fprint(sb, warnStyleBG.Sprint("Warning"), " ", warnColorFG.Sprint(message))
	if pos != nil {
		fmt.Fprintf(sb, " (line %d, col %d)", pos.StartLine+1, pos.StartCol+1)
	}
	return sb.String()
}

// displaySourceSnippet prints the source lines covered by pos with caret
// underlining, adapted from the teacher's displaySourceText /
// displayCodeSelection pair.
func displaySourceSnippet(pos *Position) {
	f, err := os.Open(rep.srcPath)
	if err != nil {
		return
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for ln := 0; sc.Scan(); ln++ {
		if pos.StartLine <= ln && ln <= pos.EndLine {
			lines = append(lines, strings.ReplaceAll(sc.Text(), "\t", "    "))
		}
	}
	if len(lines) == 0 {
		return
	}

	minIndent := len(lines[0])
	for _, line := range lines {
		indent := 0
		for _, c := range line {
			if c != ' ' {
				break
			}
			indent++
		}
		if indent < minIndent {
			minIndent = indent
		}
	}

	lineNumWidth := len(strconv.Itoa(pos.EndLine + 1))
	lineNumFmt := "%-" + strconv.Itoa(lineNumWidth) + "v | "

	for i, line := range lines {
		fmt.Printf(lineNumFmt, i+pos.StartLine+1)
		fmt.Println(line[minIndent:])

		fmt.Print(strings.Repeat(" ", lineNumWidth), " | ")

		prefix := 0
		if i == 0 {
			prefix = pos.StartCol - minIndent
		}
		suffix := 0
		if i == len(lines)-1 {
			suffix = len(line) - pos.EndCol
		}

		fmt.Print(strings.Repeat(" ", prefix))
		errorColorFG.Println(strings.Repeat("^", len(line)-suffix-prefix-minIndent))
	}
	fmt.Println()
}

func displaySummary(errCount, warnCount int) {
	fmt.Print("\n")
	if errCount == 0 {
		infoColorFG.Print("All done! ")
	} else {
		errorColorFG.Print("Oh no! ")
	}

	fmt.Print("(")
	if errCount == 0 {
		infoColorFG.Print(0)
	} else {
		errorColorFG.Print(errCount)
	}
	fmt.Print(" errors, ")

	if warnCount == 0 {
		infoColorFG.Print(0)
	} else {
		warnColorFG.Print(warnCount)
	}
	fmt.Println(" warnings)")
}
