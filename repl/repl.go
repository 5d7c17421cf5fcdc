// Package repl implements the interactive shell.  The shell carries no
// interpreter semantics; it reads lines, hands them to the parser and
// evaluator, and prints results or formatted errors.
package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/skeemlang/skeem/parser"
	"github.com/skeemlang/skeem/skeem"
)

// keywords is the completion vocabulary offered by the shell.  Most of these
// names are not implemented by the evaluator; they exist for editing comfort
// only.
var keywords = []string{
	"define", "lambda", "if", "equal?", "<", "<=", ">", ">=",
	"and", "or", "del", "let", "set!", "+", "-", "*", "/",
	"#t", "#f", "not", "nil", "cons", "list", "cat", "cdr",
	"list-ref", "length", "append", "begin",
}

const historyLimit = 10000

// Run starts the interactive shell and blocks until the session ends.  One
// global frame is threaded across all inputs so definitions persist.  When
// verbose is true the token list and parsed expression are printed before
// each result.
func Run(verbose bool) error {
	global := skeem.NewFrame(skeem.RootFrame())

	prompt := "in> "
	valueMsg := "  out> %v\n"
	errorMsg := "  EXCEPTION!! %v\n"
	if supportsColor() {
		prompt = "\033[96min>\033[0m "
		valueMsg = "  out> \033[92m\033[1m%v\033[0m\n"
		errorMsg = "  \033[91mEXCEPTION!! %v\033[0m\n"
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyFile(),
		HistoryLimit:    historyLimit,
		AutoComplete:    &completer{global: global},
		InterruptPrompt: "^C",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "quit" || line == "QUIT" {
			break
		}

		tokens := parser.Tokenize(line)
		if verbose {
			fmt.Printf("tokens> %q\n", tokens)
		}
		expr, err := parser.Parse(tokens)
		if err != nil {
			printErr(errorMsg, err)
			continue
		}
		if verbose {
			fmt.Println("expression>", expr)
		}
		val, err := skeem.Eval(expr, global)
		if err != nil {
			printErr(errorMsg, err)
			continue
		}
		fmt.Printf(valueMsg, val)
	}
	fmt.Println()
	fmt.Println("bye bye!")
	return nil
}

// printErr formats interpreter failures for the session; anything outside
// the taxonomy would be a bug and is printed bare.
func printErr(format string, err error) {
	if skeem.IsSchemeError(err) {
		fmt.Printf(format, err)
		return
	}
	fmt.Fprintln(os.Stderr, err)
}

func supportsColor() bool {
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return readline.IsTerminal(int(os.Stdout.Fd()))
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skeem_history")
}

// completer offers the keyword vocabulary plus names defined in the session's
// global frame.
type completer struct {
	global *skeem.Frame
}

// Do implements readline.AutoCompleter.
func (c *completer) Do(line []rune, pos int) ([][]rune, int) {
	word := currentWord(string(line[:pos]))
	names := Candidates(c.global, word)
	completions := make([][]rune, 0, len(names))
	for _, name := range names {
		completions = append(completions, []rune(name[len(word):]))
	}
	return completions, len(word)
}

// Candidates returns the sorted completion candidates starting with prefix.
func Candidates(global *skeem.Frame, prefix string) []string {
	seen := make(map[string]bool)
	var names []string
	add := func(name string) {
		if seen[name] || !strings.HasPrefix(name, prefix) {
			return
		}
		seen[name] = true
		names = append(names, name)
	}
	for _, kw := range keywords {
		add(kw)
	}
	if global != nil {
		for _, name := range global.Names() {
			add(name)
		}
	}
	sort.Strings(names)
	return names
}

func currentWord(line string) string {
	for i := len(line) - 1; i >= 0; i-- {
		switch line[i] {
		case ' ', '\n', '(', ')':
			return line[i+1:]
		}
	}
	return line
}
