package hashtable

// ChainRecords - Is used to iterate over the records of one bin chain one by one.
type ChainRecords struct {
	next *entry
}

// newChainRecords - Returns a pointer to a new ChainRecords struct starting at head
func newChainRecords(head *entry) *ChainRecords {

	return &ChainRecords{
		next: firstOccupied(head),
	}
}

// HasNext - Returns true if there are more records to be fetched from a call to Next.
func (C *ChainRecords) HasNext() bool {
	return C.next != nil
}

// Next - Returns the next record.
// It returns:
//   - key and value of the next record in the chain.
//   - err is of type NoRecordFound if there are no more records when calling this function.
func (C *ChainRecords) Next() (key, value string, err error) {
	if C.next == nil {
		err = NoRecordFound{}
		return
	}

	key = C.next.key
	value = C.next.value
	C.next = firstOccupied(C.next.next)

	return
}
