//go:build unit

package hashtable

import (
	"errors"
	"fmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math/rand"
	"testing"
)

func TestTable_Set(t *testing.T) {
	t.Run("sets a new record", func(t *testing.T) {
		// Prepare
		table, err := New(8, nil)
		require.NoError(t, err, "creates table")

		// Execute
		err = table.Set("PI", "3.14")

		// Check
		assert.NoError(t, err, "set a record")
		assert.Equal(t, int64(1), table.Len(), "one record")
		value, err := table.Get("PI")
		assert.NoError(t, err, "get record")
		assert.Equal(t, "3.14", value, "round trip")
	})

	t.Run("updates an existing record", func(t *testing.T) {
		// Prepare
		table, err := New(8, nil)
		require.NoError(t, err, "creates table")
		require.NoError(t, table.Set("PI", "3"), "set a record")

		// Execute
		err = table.Set("PI", "3.14")

		// Check
		assert.NoError(t, err, "update a record")
		assert.Equal(t, int64(1), table.Len(), "count unchanged by update")
		value, err := table.Get("PI")
		assert.NoError(t, err, "get record")
		assert.Equal(t, "3.14", value, "updated value")
	})

	t.Run("accepts an empty value", func(t *testing.T) {
		// Prepare
		table, err := New(8, nil)
		require.NoError(t, err, "creates table")

		// Execute
		err = table.Set("EMPTY", "")

		// Check
		assert.NoError(t, err, "set a record with empty value")
		value, err := table.Get("EMPTY")
		assert.NoError(t, err, "get record")
		assert.Equal(t, "", value, "empty value")
	})

	t.Run("rejects an empty key", func(t *testing.T) {
		// Prepare
		table, err := New(8, nil)
		require.NoError(t, err, "creates table")

		// Execute
		err = table.Set("", "value")

		// Check
		assert.True(t, errors.Is(err, InvalidArgument{}), "error of type InvalidArgument")
		assert.Equal(t, int64(0), table.Len(), "nothing stored")
	})

	t.Run("keeps chains in ascending key order", func(t *testing.T) {
		// Prepare
		table, err := New(1, nil)
		require.NoError(t, err, "creates table")

		// Execute
		for _, key := range []string{"m", "c", "x", "a", "n", "c"} {
			require.NoError(t, table.Set(key, key), "set %s", key)
		}

		// Check
		assert.Equal(t, []string{"a", "c", "m", "n", "x"}, chainKeys(table, 0), "chain in ascending order")
		assert.Equal(t, int64(5), table.Len(), "duplicate not counted")
	})

	t.Run("reports a corrupted chain and leaves it untouched", func(t *testing.T) {
		// Prepare
		table, err := New(1, nil)
		require.NoError(t, err, "creates table")
		table.bins[0].head = &entry{state: entryOccupied, key: "m", value: "1", next: &entry{state: entryOccupied, key: "c", value: "2"}}
		table.records = 2

		// Execute
		err = table.Set("z", "3")

		// Check
		assert.True(t, errors.Is(err, ChainCorrupted{}), "error of type ChainCorrupted")
		assert.Equal(t, int64(2), table.Len(), "count rolled back")
		assert.Equal(t, []string{"m", "c"}, chainKeys(table, 0), "no half linked entry")
	})

	t.Run("reports a placeholder below the chain head", func(t *testing.T) {
		// Prepare
		table, err := New(1, nil)
		require.NoError(t, err, "creates table")
		table.bins[0].head = &entry{state: entryOccupied, key: "a", value: "1", next: &entry{state: entryPlaceholder}}
		table.records = 1

		// Execute
		err = table.Set("b", "2")

		// Check
		assert.True(t, errors.Is(err, ChainCorrupted{}), "error of type ChainCorrupted")
		assert.Equal(t, int64(1), table.Len(), "count unchanged")
	})

	t.Run("reports a hash algorithm returning a bin outside the table", func(t *testing.T) {
		// Prepare
		table, err := New(4, constantHashAlgorithm{binNo: 4})
		require.NoError(t, err, "creates table")

		// Execute
		err = table.Set("PI", "3.14")

		// Check
		assert.True(t, errors.Is(err, HashAlgorithmFault{}), "error of type HashAlgorithmFault")
	})
}

func TestTable_Get(t *testing.T) {
	t.Run("gets records from a shared chain", func(t *testing.T) {
		// Prepare
		table, err := New(1, nil)
		require.NoError(t, err, "creates table")
		for _, key := range []string{"b", "d", "f"} {
			require.NoError(t, table.Set(key, "value-"+key), "set %s", key)
		}

		// Execute and Check
		for _, key := range []string{"b", "d", "f"} {
			value, err := table.Get(key)
			assert.NoError(t, err, "get %s", key)
			assert.Equal(t, "value-"+key, value, "value of %s", key)
		}
		for _, key := range []string{"a", "c", "e", "g"} {
			_, err := table.Get(key)
			assert.True(t, errors.Is(err, NoRecordFound{}), "%s not found", key)
		}
	})

	t.Run("rejects an empty key", func(t *testing.T) {
		// Prepare
		table, err := New(8, nil)
		require.NoError(t, err, "creates table")

		// Execute
		_, err = table.Get("")

		// Check
		assert.True(t, errors.Is(err, InvalidArgument{}), "error of type InvalidArgument")
	})
}

func TestTable_Remove(t *testing.T) {
	t.Run("removes a record", func(t *testing.T) {
		// Prepare
		table, err := New(8, nil)
		require.NoError(t, err, "creates table")
		require.NoError(t, table.Set("MAXN", "100"), "set a record")

		// Execute
		value, err := table.Remove("MAXN")

		// Check
		assert.NoError(t, err, "removes record")
		assert.Equal(t, "100", value, "value handed to caller")
		_, err = table.Get("MAXN")
		assert.True(t, errors.Is(err, NoRecordFound{}), "record gone")
		assert.Equal(t, int64(0), table.Len(), "no records")
	})

	t.Run("does not change the count on a miss", func(t *testing.T) {
		// Prepare
		table, err := New(8, nil)
		require.NoError(t, err, "creates table")
		require.NoError(t, table.Set("PI", "3.14"), "set a record")

		// Execute
		for i := 0; i < 10; i++ {
			_, err = table.Remove("NEVER_SET")
			assert.True(t, errors.Is(err, NoRecordFound{}), "error of type NoRecordFound")
		}

		// Check
		assert.Equal(t, int64(1), table.Len(), "count unchanged by misses")
		value, err := table.Get("PI")
		assert.NoError(t, err, "other record still reachable")
		assert.Equal(t, "3.14", value, "other record unchanged")
	})

	t.Run("keeps the chain head as placeholder", func(t *testing.T) {
		// Prepare
		table, err := New(1, nil)
		require.NoError(t, err, "creates table")
		require.NoError(t, table.Set("b", "1"), "set b")
		require.NoError(t, table.Set("d", "2"), "set d")

		// Execute
		value, err := table.Remove("b")

		// Check
		assert.NoError(t, err, "removes head")
		assert.Equal(t, "1", value, "value of head")
		assert.Equal(t, []string{"<placeholder>", "d"}, chainKeys(table, 0), "head kept as placeholder")
		assert.Equal(t, int64(1), table.Len(), "one record")
	})

	t.Run("unlinks a record deeper in the chain", func(t *testing.T) {
		// Prepare
		table, err := New(1, nil)
		require.NoError(t, err, "creates table")
		for _, key := range []string{"a", "b", "c"} {
			require.NoError(t, table.Set(key, key), "set %s", key)
		}

		// Execute
		value, err := table.Remove("b")

		// Check
		assert.NoError(t, err, "removes record")
		assert.Equal(t, "b", value, "value of removed record")
		assert.Equal(t, []string{"a", "c"}, chainKeys(table, 0), "record unlinked")
	})

	t.Run("removes the only record of a bin", func(t *testing.T) {
		// Prepare
		table, err := New(1, nil)
		require.NoError(t, err, "creates table")
		require.NoError(t, table.Set("x", "1"), "set x")

		// Execute
		_, err = table.Remove("x")

		// Check
		assert.NoError(t, err, "removes record")
		assert.Equal(t, []string{"<placeholder>"}, chainKeys(table, 0), "single placeholder")
		_, err = table.Get("x")
		assert.True(t, errors.Is(err, NoRecordFound{}), "record gone")
		_, err = table.Remove("x")
		assert.True(t, errors.Is(err, NoRecordFound{}), "second remove misses")
		assert.Equal(t, int64(0), table.Len(), "count never negative")
	})
}

func TestTable_Placeholder(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		expected []string
	}{
		{name: "reuses placeholder for a key sorting first", key: "a", expected: []string{"a", "d"}},
		{name: "reuses placeholder for a key sorting before the first record", key: "c", expected: []string{"c", "d"}},
		{name: "keeps placeholder for a key sorting after the first record", key: "e", expected: []string{"<placeholder>", "d", "e"}},
		{name: "reuses placeholder for the removed key", key: "b", expected: []string{"b", "d"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			// Prepare
			table, err := New(1, nil)
			require.NoError(t, err, "creates table")
			require.NoError(t, table.Set("b", "1"), "set b")
			require.NoError(t, table.Set("d", "2"), "set d")
			_, err = table.Remove("b")
			require.NoError(t, err, "remove head")

			// Execute
			err = table.Set(test.key, "new")

			// Check
			assert.NoError(t, err, "set record")
			assert.Equal(t, test.expected, chainKeys(table, 0), "chain after set")
			assert.Equal(t, int64(2), table.Len(), "two records")
			value, err := table.Get(test.key)
			assert.NoError(t, err, "get record")
			assert.Equal(t, "new", value, "value of record")
		})
	}

	t.Run("resurrects a single placeholder", func(t *testing.T) {
		// Prepare
		table, err := New(1, nil)
		require.NoError(t, err, "creates table")
		require.NoError(t, table.Set("x", "1"), "set x")
		_, err = table.Remove("x")
		require.NoError(t, err, "remove x")

		// Execute
		err = table.Set("y", "2")

		// Check
		assert.NoError(t, err, "set record")
		assert.Equal(t, []string{"y"}, chainKeys(table, 0), "placeholder reused")
		assert.Equal(t, int64(1), table.Len(), "one record")
	})
}

func TestTable_RandomOperations(t *testing.T) {
	tests := []struct {
		algName string
		table   func() (*Table, error)
	}{
		{algName: "Jenkins", table: func() (*Table, error) { return New(7, nil) }},
		{algName: "Naive", table: func() (*Table, error) { return New(7, NewNaiveHashAlgorithm()) }},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("matches a builtin map for %s", test.algName), func(t *testing.T) {
			// Prepare
			table, err := test.table()
			require.NoError(t, err, "creates table")
			model := make(map[string]string)
			rnd := rand.New(rand.NewSource(42))

			// Execute
			for i := 0; i < 5000; i++ {
				key := fmt.Sprintf("K%d", rnd.Intn(300))
				if rnd.Intn(3) == 0 {
					value, err := table.Remove(key)
					if expected, ok := model[key]; ok {
						assert.NoError(t, err, "removes %s", key)
						assert.Equal(t, expected, value, "removed value of %s", key)
						delete(model, key)
					} else {
						assert.True(t, errors.Is(err, NoRecordFound{}), "%s not found", key)
					}
				} else {
					value := fmt.Sprintf("V%d", i)
					require.NoError(t, table.Set(key, value), "sets %s", key)
					model[key] = value
				}
			}

			// Check
			assert.Equal(t, int64(len(model)), table.Len(), "count matches")
			for key, expected := range model {
				value, err := table.Get(key)
				assert.NoError(t, err, "gets %s", key)
				assert.Equal(t, expected, value, "value of %s", key)
			}
			for binNo := int64(0); binNo < table.BinCount(); binNo++ {
				var prev string
				for i, key := range chainKeys(table, binNo) {
					if key == "<placeholder>" {
						assert.Equal(t, 0, i, "placeholder only at head of bin %d", binNo)
						continue
					}
					assert.Less(t, prev, key, "bin %d in ascending order", binNo)
					prev = key
				}
			}
		})
	}
}
