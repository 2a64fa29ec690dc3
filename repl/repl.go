// Package repl implements the interactive Read-Eval-Print Loop for the
// Eusha interpreter, grounded on the teacher's repl/repl.go: readline
// for line editing and history, fatih/color for banner and result
// feedback, panic recovery so one bad line never kills the session.
package repl

import (
	"io"
	"strings"

	"github.com/Eusha122/Elang/eval"
	"github.com/Eusha122/Elang/object"
	"github.com/Eusha122/Elang/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the banner and prompt configuration for one interactive
// session. A fresh Evaluator (and so a fresh global environment) is
// created each time Start is called.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
	BaseDir string
}

func NewRepl(banner, version, author, line, license, prompt, baseDir string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt, BaseDir: baseDir}
}

func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Eusha!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type 'exit' or 'quit' to leave, or type &&who.is.eusha to say hi")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the loop until the user exits or the reader hits EOF. One
// Evaluator (and its global environment) is shared across every line, so
// a variable or function bound on one line is visible to the next.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	evaluator := eval.NewEvaluator(r.BaseDir)
	evaluator.SetOutput(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			writer.Write([]byte("Good bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line, evaluator)
	}
}

// executeWithRecovery parses and evaluates one line. Unlike file mode,
// errors never end the session: they're reported and the prompt returns.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, evaluator *eval.Evaluator) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[runtime panic] %v\n", recovered)
		}
	}()

	p := parser.NewParser(line)
	root := p.Parse()

	if p.HasErrors() {
		for _, e := range p.GetErrors() {
			redColor.Fprintf(writer, "%s\n", e)
		}
		return
	}

	result, err := evaluator.Eval(root)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}

	if result != nil && result.GetType() != object.NullKind {
		yellowColor.Fprintf(writer, "%s\n", result.ToObject())
	}
}
