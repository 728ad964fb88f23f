package hashtable

import (
	"fmt"
	"tlog.app/go/tlog"
)

// Get - Gets the value that corresponds to the given key.
// The chain of the key's bin is scanned in ascending key order and the scan stops as soon as a key sorting above
// the given key is reached.
//   - key is the identifier of a record, it can not be empty
//
// It returns:
//   - value is the value of the matching record if found, if not found an error of type NoRecordFound is also returned.
//   - err is either of type NoRecordFound, InvalidArgument or TableDestroyed
func (T *Table) Get(key string) (value string, err error) {
	binNo, err := T.GetBinNo(key)
	if err != nil {
		return
	}

	_, found, _ := T.bins[binNo].seek(key)
	if found == nil {
		err = NoRecordFound{}
		return
	}

	value = found.value

	return
}

// Set - Updates an existing record with new data or adds it if no existing is found with same key.
// Both key and value are copied into the table.
//   - key is the identifier of a record, it can not be empty
//   - value is the value to store along with its key
//
// It returns:
//   - err is of type InvalidArgument, TableDestroyed, HashAlgorithmFault or ChainCorrupted if something went wrong.
//     On ChainCorrupted nothing has been stored.
func (T *Table) Set(key, value string) (err error) {
	binNo, err := T.GetBinNo(key)
	if err != nil {
		return
	}

	inserted, err := T.bins[binNo].insert(key, value)
	if err != nil {
		err = ChainCorrupted{msg: fmt.Sprintf("error while adding record to bin %d: %s", binNo, err)}
		return
	}

	if inserted {
		T.records++
	}

	tlog.V("hashtable").Printw("set", "key", key, "bin", binNo, "inserted", inserted, "records", T.records)

	return
}

// Remove - Returns the value corresponding to key and removes the record from the table.
// If the record is at the head of its chain the node is kept as a placeholder that a later Set may reuse.
//   - key is the identifier of a record, it can not be empty
//
// It returns:
//   - value is the value of the removed record, if not found an error of type NoRecordFound is also returned.
//   - err is either of type NoRecordFound, InvalidArgument or TableDestroyed
func (T *Table) Remove(key string) (value string, err error) {
	binNo, err := T.GetBinNo(key)
	if err != nil {
		return
	}

	value, removed := T.bins[binNo].remove(key)
	if !removed {
		err = NoRecordFound{}
		return
	}

	T.records--

	tlog.V("hashtable").Printw("remove", "key", key, "bin", binNo, "records", T.records)

	return
}

// GetBinNo - Returns which bin number that the given key results in
//   - key is the identifier of a record, it can not be empty
func (T *Table) GetBinNo(key string) (binNo int64, err error) {
	if err = T.usable(); err != nil {
		return
	}
	if key == "" {
		err = InvalidArgument{msg: "key can not be empty"}
		return
	}

	binNo = T.hashAlgorithm.Hash(T.binCount, key)
	if binNo < 0 || binNo >= T.binCount {
		err = HashAlgorithmFault{msg: fmt.Sprintf("received bin number %d from hash algorithm is outside permitted range [0, %d)", binNo, T.binCount)}
		return
	}

	return
}

// GetBin - Returns an iterator over the records of a bin, in chain order
//   - binNo is the identifier of a bin, the number can be retrieved by call to GetBinNo
func (T *Table) GetBin(binNo int64) (chainRecords *ChainRecords, err error) {
	if err = T.usable(); err != nil {
		return
	}
	if binNo < 0 || binNo >= T.binCount {
		err = InvalidArgument{msg: fmt.Sprintf("bin number %d outside table of %d bins", binNo, T.binCount)}
		return
	}

	chainRecords = newChainRecords(T.bins[binNo].head)

	return
}

// Range - Calls f for every record in the table, bin by bin and in chain order within a bin.
// Iteration stops if f returns false. The table must not be modified from within f.
func (T *Table) Range(f func(key, value string) bool) {
	if T.usable() != nil {
		return
	}

	for i := range T.bins {
		for e := firstOccupied(T.bins[i].head); e != nil; e = firstOccupied(e.next) {
			if !f(e.key, e.value) {
				return
			}
		}
	}
}
