// Package macro implements the PTUC macro facility: @defmacro and @undefmacro directives and identifier
// expansion over a fixed size hash table of definitions.
package macro

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/ptuc-lang/ptucc/diag"
	"github.com/ptuc-lang/ptucc/hashtable"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"
)

const (
	// DefineDirective - Starts a line defining a macro, followed by the macro name and its optional body
	DefineDirective = "@defmacro"
	// UndefineDirective - Starts a line removing a macro definition, followed by the macro name
	UndefineDirective = "@undefmacro"

	// MaxLineSize - Longest source line Process accepts
	MaxLineSize = 16 << 20
)

// Expander - Holds macro definitions and expands them in source text.
// Comment state is carried from one line to the next, so lines must be expanded in source order.
// An Expander is not safe for concurrent use.
type Expander struct {
	table     *hashtable.Table
	diag      *diag.Reporter
	maxDepth  int
	maxMacros int64

	inComment bool
	active    []string
}

// New - Returns a pointer to a new Expander storing definitions in table.
//   - reporter receives a diagnostic for every expansion or directive that fails
//   - maxDepth is the limit of nested expansions
//   - maxMacros is the hard ceiling of stored definitions
func New(table *hashtable.Table, reporter *diag.Reporter, maxDepth, maxMacros uint32) *Expander {
	return &Expander{
		table:     table,
		diag:      reporter,
		maxDepth:  int(maxDepth),
		maxMacros: int64(maxMacros),
	}
}

// Define - Adds a macro or replaces the body of an existing one.
//   - name must be an identifier
//   - body is the replacement text, it may be empty
//
// It returns:
//   - err if the name is invalid, the ceiling of stored definitions is reached or the table fails
func (E *Expander) Define(name, body string) (err error) {
	if !isIdentifier(name) {
		return errors.New("invalid macro name %q", name)
	}

	if _, ok := E.Lookup(name); !ok && E.table.Len() >= E.maxMacros {
		return errors.New("macro limit of %d definitions reached", E.maxMacros)
	}

	if err = E.table.Set(name, body); err != nil {
		return errors.Wrap(err, "define %v", name)
	}

	return
}

// Undefine - Removes a macro definition
//
// It returns:
//   - err wrapping hashtable.NoRecordFound if the macro is not defined
func (E *Expander) Undefine(name string) (err error) {
	if _, err = E.table.Remove(name); err != nil {
		return errors.Wrap(err, "undefine %v", name)
	}

	return
}

// Lookup - Returns the body of a macro and true if it is defined
func (E *Expander) Lookup(name string) (body string, ok bool) {
	body, err := E.table.Get(name)

	return body, err == nil
}

// ExpandLine - Returns line with every defined macro identifier replaced by its expanded body.
// Identifiers inside string literals and comments are left as they are.
func (E *Expander) ExpandLine(line string) string {
	var b strings.Builder

	E.inComment = E.expand(&b, line, E.inComment)

	return b.String()
}

// Process - Reads PTUC source from r line by line, handles macro directives and writes expanded lines to w.
// Directive lines are replaced by empty lines so line numbers are kept.
// Failures in the source are reported as diagnostics, the returned error is for read and write failures only.
func (E *Expander) Process(ctx context.Context, r io.Reader, w io.Writer) (err error) {
	tr := tlog.SpanFromContext(ctx).V("macro")

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), MaxLineSize)
	bw := bufio.NewWriter(w)

	var line int
	for sc.Scan() {
		if err = ctx.Err(); err != nil {
			return errors.Wrap(err, "line %d", line+1)
		}

		line++
		E.diag.SetLine(line)

		text := sc.Text()
		if !E.inComment {
			if handled := E.directive(tr, text); handled {
				text = ""
			}
		}

		if text != "" {
			text = E.ExpandLine(text)
		}

		if _, err = bw.WriteString(text); err != nil {
			return errors.Wrap(err, "write")
		}
		if err = bw.WriteByte('\n'); err != nil {
			return errors.Wrap(err, "write")
		}
	}

	if err = sc.Err(); err != nil {
		return errors.Wrap(err, "read line %d", line+1)
	}

	if E.inComment {
		E.diag.Errorf("unterminated comment at end of input")
		E.inComment = false
	}

	if err = bw.Flush(); err != nil {
		return errors.Wrap(err, "flush")
	}

	tr.Printw("processed", "lines", line, "macros", E.table.Len())

	return nil
}

// directive - Handles a @defmacro or @undefmacro line, it returns false for any other line
func (E *Expander) directive(tr tlog.Span, text string) bool {
	keyword, rest := strings.TrimSpace(text), ""
	if i := strings.IndexAny(keyword, " \t"); i >= 0 {
		keyword, rest = keyword[:i], strings.TrimSpace(keyword[i+1:])
	}

	switch keyword {
	case DefineDirective:
		name, body := rest, ""
		if i := strings.IndexAny(rest, " \t"); i >= 0 {
			name, body = rest[:i], strings.TrimSpace(rest[i+1:])
		}

		if name == "" {
			E.diag.Errorf("malformed macro definition")
			return true
		}

		if err := E.Define(name, body); err != nil {
			E.diag.Errorf("%v", err)
			return true
		}

		tr.Printw("define", "name", name, "body", body, "macros", E.table.Len())
	case UndefineDirective:
		if rest == "" || strings.ContainsAny(rest, " \t") {
			E.diag.Errorf("malformed macro removal")
			return true
		}

		if err := E.Undefine(rest); err != nil {
			if errors.Is(err, hashtable.NoRecordFound{}) {
				E.diag.Errorf("macro %s is not defined", rest)
			} else {
				E.diag.Errorf("%v", err)
			}
			return true
		}

		tr.Printw("undefine", "name", rest, "macros", E.table.Len())
	default:
		return false
	}

	return true
}

// expand - Writes text to b with macros expanded and returns the comment state at the end of text
func (E *Expander) expand(b *strings.Builder, text string, inComment bool) bool {
	i := 0
	for i < len(text) {
		c := text[i]

		switch {
		case inComment:
			end := strings.Index(text[i:], "*)")
			if end < 0 {
				b.WriteString(text[i:])
				return true
			}

			b.WriteString(text[i : i+end+2])
			i += end + 2
			inComment = false
		case c == '(' && i+1 < len(text) && text[i+1] == '*':
			b.WriteString("(*")
			i += 2
			inComment = true
		case c == '"' || c == '\'':
			end := literalEnd(text, i)
			b.WriteString(text[i:end])
			i = end
		case isIdentStart(c):
			end := i + 1
			for end < len(text) && isIdentPart(text[end]) {
				end++
			}

			E.identifier(b, text[i:end])
			i = end
		default:
			b.WriteByte(c)
			i++
		}
	}

	return inComment
}

// identifier - Writes name to b, expanded if it is a defined macro
func (E *Expander) identifier(b *strings.Builder, name string) {
	body, ok := E.Lookup(name)
	if !ok {
		b.WriteString(name)
		return
	}

	for _, a := range E.active {
		if a == name {
			E.diag.Errorf("recursive expansion of macro %s", name)
			b.WriteString(name)
			return
		}
	}

	if len(E.active) >= E.maxDepth {
		E.diag.Errorf("expansion of macro %s exceeds stack depth %d", name, E.maxDepth)
		b.WriteString(name)
		return
	}

	E.active = append(E.active, name)
	if E.expand(b, body, false) {
		E.diag.Errorf("unterminated comment in body of macro %s", name)
		b.WriteString("*)")
	}
	E.active = E.active[:len(E.active)-1]
}

// literalEnd - Returns the index just past the string literal starting at text[start].
// An unterminated literal extends to the end of text.
func literalEnd(text string, start int) int {
	quote := text[start]

	for i := start + 1; i < len(text); i++ {
		switch text[i] {
		case '\\':
			i++
		case quote:
			return i + 1
		}
	}

	return len(text)
}

func isIdentStart(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || c >= '0' && c <= '9'
}

// isIdentifier - Returns true if name is a valid PTUC identifier
func isIdentifier(name string) bool {
	if name == "" || !isIdentStart(name[0]) {
		return false
	}

	for i := 1; i < len(name); i++ {
		if !isIdentPart(name[i]) {
			return false
		}
	}

	return true
}
