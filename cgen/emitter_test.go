//go:build unit

package cgen

import (
	"github.com/ptuc-lang/ptucc/hashtable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestEmitter_Line(t *testing.T) {
	t.Run("emits indented lines", func(t *testing.T) {
		// Prepare
		e := NewEmitter()
		defer func() { _ = e.Close() }()

		// Execute
		require.NoError(t, e.Line(0, "int main() {"), "emits line")
		require.NoError(t, e.Line(1, "return %d;", 0), "emits indented line")
		require.NoError(t, e.Line(0, "}"), "emits line")

		// Check
		value, err := e.Value()
		assert.NoError(t, err, "gets value")
		assert.Equal(t, "int main() {\n\treturn 0;\n}\n", value, "emitted code")
	})
}

func TestEmitter_Defines(t *testing.T) {
	t.Run("emits prologue and sorted defines", func(t *testing.T) {
		// Prepare
		table, err := hashtable.New(4, nil)
		require.NoError(t, err, "creates table")
		defer func() { _ = table.Destroy() }()
		require.NoError(t, table.Set("PI", "3.14"), "set PI")
		require.NoError(t, table.Set("GREETING", "'hello'"), "set GREETING")
		require.NoError(t, table.Set("NOTHING", ""), "set NOTHING")
		require.NoError(t, table.Set("MAXN", "100"), "set MAXN")

		e := NewEmitter()
		defer func() { _ = e.Close() }()

		// Execute
		require.NoError(t, e.Prologue(), "emits prologue")
		err = e.Defines(table)

		// Check
		assert.NoError(t, err, "emits defines")
		value, err := e.Value()
		assert.NoError(t, err, "gets value")
		assert.Equal(t, "#include \"ptuclib.h\"\n\n"+
			"#define GREETING \"hello\"\n"+
			"#define MAXN 100\n"+
			"#define NOTHING\n"+
			"#define PI 3.14\n", value, "emitted header")
	})
}
