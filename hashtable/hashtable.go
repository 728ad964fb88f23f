package hashtable

import (
	"fmt"
	"github.com/ptuc-lang/ptucc/hashfunc"
	"github.com/ptuc-lang/ptucc/internal/hash"
	"tlog.app/go/tlog"
)

// TableStat - Statistics on the overall usage and distribution over bins
//   - Records is the total number of records stored
//   - Placeholders is the number of chain heads kept as placeholders after removal
//   - UsedBins is the number of bins holding at least one record
//   - LongestChain is the number of records in the most loaded bin
//   - BinDistribution is the number of records stored in each bin
type TableStat struct {
	Records         int64
	Placeholders    int64
	UsedBins        int64
	LongestChain    int64
	BinDistribution []int64
}

// Table - The main implementation struct, a fixed size separate chaining hash table with string keys and values.
// A Table is not safe for concurrent use.
type Table struct {
	bins              []bin
	binCount          int64
	records           int64
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
	destroyed         bool
}

// New - Returns a new hash table with a fixed number of bins.
//   - binCount is the number of bins in the table, it can not be changed after creation
//   - hashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface, the Jenkins one-at-a-time algorithm is used if nil.
//
// It returns:
//   - table is a pointer to a Table struct
//   - err is of type InvalidArgument if binCount is less than 1
func New(binCount int64, hashAlgorithm hashfunc.HashAlgorithm) (table *Table, err error) {
	// Check if binCount is valid
	if binCount < 1 {
		err = InvalidArgument{msg: fmt.Sprintf("bin count must be a positive value higher than 0 (zero), got %d", binCount)}
		return
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if hashAlgorithm == nil {
		hashAlgorithm = hash.NewJenkinsHashAlgorithm()
		internalAlg = true
	}

	table = &Table{
		bins:              make([]bin, binCount),
		binCount:          binCount,
		hashAlgorithm:     hashAlgorithm,
		internalAlgorithm: internalAlg,
	}

	tlog.V("hashtable").Printw("table created", "bins", binCount, "internal_hash", internalAlg)

	return
}

// NewNaiveHashAlgorithm - Returns the naive left shift accumulating hash algorithm.
// Keys sharing their first 8 bytes always end up in the same bin.
func NewNaiveHashAlgorithm() hashfunc.HashAlgorithm {
	return hash.NewNaiveHashAlgorithm()
}

// NewJenkinsHashAlgorithm - Returns the Jenkins one-at-a-time hash algorithm, the same algorithm New binds when
// no algorithm is given.
func NewJenkinsHashAlgorithm() hashfunc.HashAlgorithm {
	return hash.NewJenkinsHashAlgorithm()
}

// Destroy - Releases every entry in every bin together with the bins themselves.
// The table can not be used after this call, every operation will return an error of type TableDestroyed.
func (T *Table) Destroy() (err error) {
	if T == nil {
		err = InvalidArgument{msg: "table is nil"}
		return
	}
	if T.destroyed {
		err = TableDestroyed{}
		return
	}

	var released int64
	for i := range T.bins {
		released += T.bins[i].release()
	}

	tlog.V("hashtable").Printw("table destroyed", "bins", T.binCount, "records", T.records, "nodes_released", released)

	T.bins = nil
	T.records = 0
	T.hashAlgorithm = nil
	T.destroyed = true

	return
}

// Len - Returns the number of records stored in the table
func (T *Table) Len() int64 {
	if T == nil {
		return 0
	}
	return T.records
}

// BinCount - Returns the number of bins the table was created with
func (T *Table) BinCount() int64 {
	if T == nil {
		return 0
	}
	return T.binCount
}

// InternalAlgorithm - Returns true if the table uses the default hash algorithm
func (T *Table) InternalAlgorithm() bool {
	return T != nil && T.internalAlgorithm
}

// Stat - Walks through the entire set of bins and produce a TableStat struct with information.
//   - includeDistribution set to true will include a slice of length BinCount with number of records per bin, false will set TableStat.BinDistribution to nil.
func (T *Table) Stat(includeDistribution bool) (tableStat *TableStat, err error) {
	if err = T.usable(); err != nil {
		return
	}

	var ts TableStat
	if includeDistribution {
		ts.BinDistribution = make([]int64, T.binCount)
	}

	// Iterate over every available bin
	for i := range T.bins {
		var n int64
		for e := T.bins[i].head; e != nil; e = e.next {
			if e.state == entryOccupied {
				n++
			} else {
				ts.Placeholders++
			}
		}

		ts.Records += n
		if n > 0 {
			ts.UsedBins++
		}
		if n > ts.LongestChain {
			ts.LongestChain = n
		}
		if includeDistribution {
			ts.BinDistribution[i] = n
		}
	}

	tableStat = &ts
	return
}

// usable - Returns an error if the table is nil or destroyed
func (T *Table) usable() (err error) {
	if T == nil {
		err = InvalidArgument{msg: "table is nil"}
		return
	}
	if T.destroyed {
		err = TableDestroyed{}
	}

	return
}
