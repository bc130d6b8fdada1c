package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

func fmtCommand(args []string) error {
	fs := flag.NewFlagSet("fmt", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	write := fs.Bool("w", false, "write result to source files instead of stdout")
	check := fs.Bool("check", false, "fail if any source file needs formatting")
	if err := fs.Parse(args); err != nil {
		return err
	}

	targets := fs.Args()
	if len(targets) == 0 {
		return errors.New("mython fmt: path required")
	}

	files, err := collectMythonFiles(targets)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return nil
	}

	changedCount := 0
	for _, path := range files {
		originalBytes, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		original := string(originalBytes)
		formatted := formatMythonSource(original)
		changed := formatted != original
		if changed {
			changedCount++
		}

		switch {
		case *write && changed:
			info, err := os.Stat(path)
			if err != nil {
				return fmt.Errorf("stat %s: %w", path, err)
			}
			if err := os.WriteFile(path, []byte(formatted), info.Mode().Perm()); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
		case !*write && !*check:
			fmt.Print(formatted)
		}
	}

	if *check && changedCount > 0 {
		return fmt.Errorf("mython fmt: %d file(s) need formatting", changedCount)
	}

	return nil
}

func collectMythonFiles(targets []string) ([]string, error) {
	seen := make(map[string]struct{})
	files := make([]string, 0)
	addFile := func(path string) {
		if filepath.Ext(path) != ".my" {
			return
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return
		}
		if _, ok := seen[abs]; ok {
			return
		}
		seen[abs] = struct{}{}
		files = append(files, abs)
	}

	for _, target := range targets {
		info, err := os.Stat(target)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", target, err)
		}
		if !info.IsDir() {
			addFile(target)
			continue
		}
		err = filepath.WalkDir(target, func(path string, entry fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if entry.IsDir() {
				return nil
			}
			addFile(path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", target, err)
		}
	}

	sort.Strings(files)
	return files, nil
}

// formatMythonSource trims trailing whitespace, normalizes line endings, and
// rewrites tab characters found in a line's leading indentation run. It
// deliberately does not otherwise re-derive indentation from Indent/Dedent
// tokens: Mython's leading whitespace is semantic (spec.md §4.1), so
// rewriting it wholesale without also re-numbering the source the user wrote
// risks silently changing program meaning. Trailing whitespace carries no
// such risk, and neither does the leading-tab rewrite below: the lexer's
// indent measurement (lexer.go's indentToken) counts only ' ' bytes when
// computing a line's indent level, so any tab in the leading run is never
// counted — the line's measured level stops at however many spaces preceded
// the tab, and scan() then rejects the tab itself as a byte that cannot
// start any lexeme. A source file with tabs in its indentation therefore
// fails to lex. Expanding each leading tab to two spaces (Mython's indent
// unit) turns that indentation into spaces the lexer measures.
func formatMythonSource(source string) string {
	normalized := strings.ReplaceAll(source, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	lines := strings.Split(normalized, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(expandLeadingTabs(line), " \t")
	}

	joined := strings.Join(lines, "\n")
	joined = strings.TrimRight(joined, "\n")
	return joined + "\n"
}

// expandLeadingTabs rewrites every tab byte in line's leading whitespace run
// to two spaces, leaving the rest of the line untouched.
func expandLeadingTabs(line string) string {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	if !strings.Contains(line[:i], "\t") {
		return line
	}
	var out strings.Builder
	for _, b := range []byte(line[:i]) {
		if b == '\t' {
			out.WriteString("  ")
		} else {
			out.WriteByte(b)
		}
	}
	out.WriteString(line[i:])
	return out.String()
}
