// Command eusha is the entry point for the Eusha interpreter. It
// supports three modes, grounded on the teacher's main/main.go: REPL
// mode by default, file mode when given a path, and a TCP server mode
// that hands each connection its own REPL session.
package main

import (
	"net"
	"os"
	"path/filepath"

	"github.com/Eusha122/Elang/eval"
	"github.com/Eusha122/Elang/object"
	"github.com/Eusha122/Elang/parser"
	"github.com/Eusha122/Elang/repl"
	"github.com/fatih/color"
)

var (
	VERSION = "v0.1.0"
	AUTHOR  = "Eusha"
	LICENSE = "MIT"
	PROMPT  = "eusha >>> "
	LINE    = "----------------------------------------------------------------"
	BANNER  = `
  ____            _
 | ___|   _ ___  | |__   __ _
 |  _|| | | / __| | '_ \ / _' |
 | |__| |_| \__ \ | | | | (_| |
 |_____\__,_|___/ |_| |_|\__,_|
`
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// main dispatches to REPL mode, file mode, or server mode based on
// os.Args, mirroring the teacher's command surface (--help/--version,
// a bare filename, or "server <port>").
func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		switch arg {
		case "--help", "-h":
			showHelp()
			os.Exit(0)
		case "--version", "-v":
			showVersion()
			os.Exit(0)
		case "server":
			if len(os.Args) < 3 {
				redColor.Fprintf(os.Stderr, "[usage error] missing port for server mode. Usage: eusha server <port>\n")
				os.Exit(1)
			}
			startServer(os.Args[2])
			return
		}

		runFile(arg)
		return
	}

	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT, ".")
	repler.Start(os.Stdin, os.Stdout)
}

func showHelp() {
	cyanColor.Println("Eusha - a small, dynamically-typed, expression-oriented scripting language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  eusha                     Start interactive REPL mode")
	yellowColor.Println("  eusha <path-to-file>      Execute an Eusha file (.elang)")
	yellowColor.Println("  eusha server <port>       Start a REPL server on the given port")
	yellowColor.Println("  eusha --help              Display this help message")
	yellowColor.Println("  eusha --version           Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  exit / quit               Leave the REPL")
	yellowColor.Println("  &&who.is.eusha            Run a builtin diagnostic command")
}

func showVersion() {
	cyanColor.Println("Eusha - an interpreted scripting language")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENSE)
}

// runFile reads and executes a single source file, exiting non-zero on
// any parse or runtime error so Eusha scripts behave like normal CLI
// programs in shell pipelines and CI.
func runFile(fileName string) {
	content, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[file error] could not read %q: %v\n", fileName, err)
		os.Exit(1)
	}
	executeFileWithRecovery(string(content), filepath.Dir(fileName))
}

func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[server error] failed to listen on port %s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("Eusha REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[server error] failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("new client connected from %s\n", conn.RemoteAddr())
	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT, ".")
	repler.Start(conn, conn)
	cyanColor.Printf("client disconnected from %s\n", conn.RemoteAddr())
}

// executeFileWithRecovery parses and evaluates a whole file, reporting
// every parse error the parser collected before exiting, and printing a
// runtime error's message with its line and column. Neither kind of
// report quotes the offending source line or draws a caret under it.
func executeFileWithRecovery(source, baseDir string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[runtime panic] %v\n", recovered)
			os.Exit(1)
		}
	}()

	p := parser.NewParser(source)
	root := p.Parse()

	if p.HasErrors() {
		for _, e := range p.GetErrors() {
			redColor.Fprintf(os.Stderr, "[parse error] %s\n", e)
		}
		os.Exit(1)
	}

	evaluator := eval.NewEvaluator(baseDir)
	evaluator.SetOutput(os.Stdout)
	result, err := evaluator.Eval(root)
	if err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}

	if result != nil && result.GetType() != object.NullKind {
		yellowColor.Fprintf(os.Stdout, "%s\n", result.ToString())
	}
}
