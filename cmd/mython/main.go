package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	projectName    = "Mython"
	projectVersion = "0.1.0"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	if len(args) < 2 {
		return runFromStdin()
	}
	switch args[1] {
	case "run":
		return runCommand(args[2:])
	case "repl":
		return runREPL()
	case "fmt":
		return fmtCommand(args[2:])
	case "check":
		return checkCommand(args[2:])
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return runCommand(args[1:])
	}
}

// runFromStdin mirrors the original main.cpp: print the banner once, read a
// whole program from stdin, execute it against stdout, and report any
// runtime or parse error on stderr.
func runFromStdin() error {
	printBanner()
	return execStream(os.Stdin, os.Stdout)
}

func runCommand(args []string) error {
	if len(args) == 0 {
		return errors.New("mython run: script path required")
	}
	scriptPath := args[0]
	f, err := os.Open(scriptPath)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	defer f.Close()
	return execStream(f, os.Stdout)
}

func printBanner() {
	fmt.Printf("%s version: %s\n", projectName, projectVersion)
}

type flagErrorSink struct{}

func (flagErrorSink) Write(p []byte) (int, error) {
	return len(p), nil
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [arguments]\n", prog)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  run <file>    execute a Mython program")
	fmt.Fprintln(os.Stderr, "  repl          start an interactive session")
	fmt.Fprintln(os.Stderr, "  fmt <file>    print a whitespace-normalized program")
	fmt.Fprintln(os.Stderr, "  check <file>  static checks without executing")
	fmt.Fprintln(os.Stderr, "  help          show this message")
	fmt.Fprintln(os.Stderr, "With no command, reads a program from stdin and executes it.")
}
