// Package cgen holds the pieces of C generation shared by the translator: the prologue of every generated file,
// macro definition emission and PTUC to C literal rewriting.
package cgen

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/ptuc-lang/ptucc/hashtable"
	"github.com/ptuc-lang/ptucc/template"
	"tlog.app/go/errors"
)

// Prologue - Output at the head of every generated C program
const Prologue = "#include \"ptuclib.h\"\n" +
	"\n"

// tabs - Indentation source for Emitter.Line
const tabs = "\t\t\t\t\t\t\t\t\t\t\t\t\t\t\t\t"

// Emitter - Assembles a fragment of C code on a template.Stream
type Emitter struct {
	stream *template.Stream
}

// NewEmitter - Returns a pointer to a new Emitter. Pair it with a call to Close.
func NewEmitter() *Emitter {
	return &Emitter{stream: template.Open()}
}

// Prologue - Emits the prologue of a C program
func (E *Emitter) Prologue() (err error) {
	_, err = E.stream.WriteString(Prologue)
	return
}

// Line - Emits one line indented by depth tabs, the pattern is formatted as by fmt.Printf
func (E *Emitter) Line(depth int, pattern string, args ...any) (err error) {
	if depth > len(tabs) {
		depth = len(tabs)
	}

	if _, err = E.stream.WriteString(tabs[:depth]); err != nil {
		return
	}
	if err = E.stream.Printf(pattern, args...); err != nil {
		return
	}
	_, err = E.stream.WriteString("\n")

	return
}

// Define - Emits a #define directive for a macro, PTUC string literals in body are rewritten as C literals
func (E *Emitter) Define(name, body string) (err error) {
	if body == "" {
		return E.Line(0, "#define %s", name)
	}

	return E.Line(0, "#define %s %s", name, rewriteLiterals(body))
}

// Defines - Emits a #define directive for every macro in table, ordered by macro name
func (E *Emitter) Defines(table *hashtable.Table) (err error) {
	sorted := treemap.NewWithStringComparator()
	table.Range(func(key, value string) bool {
		sorted.Put(key, value)
		return true
	})

	it := sorted.Iterator()
	for it.Next() {
		name := it.Key().(string)
		if err = E.Define(name, it.Value().(string)); err != nil {
			return errors.Wrap(err, "define %v", name)
		}
	}

	return
}

// Value - Returns the code emitted so far
func (E *Emitter) Value() (string, error) {
	return E.stream.Value()
}

// Close - Releases the underlying stream
func (E *Emitter) Close() error {
	return E.stream.Close()
}
