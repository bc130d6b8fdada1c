package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/mython-lang/mython/mython"
)

type lintWarning struct {
	Class   string
	Message string
}

// checkCommand parses a program without executing it and reports two
// classes of static issue the original interpreter would only discover at
// runtime: a bare 'return' written directly at the program's top level
// (returns nested inside a top-level 'if' block are not inspected), and a
// class declaring two methods under the same name (GetMethod returns the
// first match, so the second definition is never called).
func checkCommand(args []string) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	if err := fs.Parse(args); err != nil {
		return err
	}

	remaining := fs.Args()
	if len(remaining) == 0 {
		return errors.New("mython check: script path required")
	}

	f, err := os.Open(remaining[0])
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	defer f.Close()

	program, err := parseProgram(f)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	warnings := checkProgram(program)
	if len(warnings) == 0 {
		fmt.Println("No issues found")
		return nil
	}

	for _, w := range warnings {
		fmt.Printf("%s: %s\n", w.Class, w.Message)
	}
	return fmt.Errorf("check found %d issue(s)", len(warnings))
}

func checkProgram(program *mython.Compound) []lintWarning {
	var warnings []lintWarning
	for _, stmt := range program.Statements {
		switch n := stmt.(type) {
		case *mython.Return:
			warnings = append(warnings, lintWarning{
				Class:   "<top-level>",
				Message: "return statement outside any method body",
			})
		case *mython.ClassDefinition:
			warnings = append(warnings, checkClass(n.Class)...)
		}
	}
	sort.SliceStable(warnings, func(i, j int) bool {
		return warnings[i].Class < warnings[j].Class
	})
	return warnings
}

func checkClass(class *mython.Class) []lintWarning {
	var warnings []lintWarning
	seen := make(map[string]bool)
	for _, m := range class.Methods {
		if seen[m.Name] {
			warnings = append(warnings, lintWarning{
				Class:   class.Name,
				Message: fmt.Sprintf("duplicate method %q", m.Name),
			})
			continue
		}
		seen[m.Name] = true
	}
	return warnings
}
