package hashtable

import "strings"

// entryOccupied - State indicating an entry that holds a key and a value
const entryOccupied uint8 = 1

// entryPlaceholder - State indicating a chain head whose entry has been removed but whose node is kept
const entryPlaceholder uint8 = 2

// entry - One key/value pair in a bin chain. Each entry owns the entry that follows it.
type entry struct {
	state uint8
	key   string
	value string
	next  *entry
}

// bin - One slot of the table holding the head of a chain kept in ascending key order.
// A placeholder can only ever be the head of the chain and never takes part in key comparisons.
type bin struct {
	head *entry
}

// seek - Walks the chain in ascending key order and stops at the first occupied entry whose key does not sort
// below key.
// It returns:
//   - link is the pointer that refers to the entry where the walk stopped, i.e. where a new entry would be spliced in
//   - found is the entry with a key equal to key, nil if there is none
//   - ordered is false if the walk passed keys out of ascending order or a placeholder below the head
func (B *bin) seek(key string) (link **entry, found *entry, ordered bool) {
	var prev *entry
	ordered = true
	link = &B.head
	for e := *link; e != nil; e = *link {
		if e.state == entryOccupied {
			if prev != nil && prev.key >= e.key {
				ordered = false
			}
			c := strings.Compare(e.key, key)
			if c == 0 {
				found = e
				return
			}
			if c > 0 {
				return
			}
			prev = e
		} else if e != B.head {
			ordered = false
		}
		link = &e.next
	}

	return
}

// insert - Sets value for key, replacing the value of an existing entry or splicing in a new entry where it keeps
// the chain in ascending key order. A placeholder head is reused when the new key belongs at the head.
// It returns:
//   - inserted is true if a new entry was stored, false if an existing value was replaced
//   - err is of type ChainCorrupted if the splice point does not preserve the key order
func (B *bin) insert(key, value string) (inserted bool, err error) {
	link, found, ordered := B.seek(key)
	if !ordered {
		err = ChainCorrupted{msg: "no valid insertion point for key " + key}
		return
	}
	if found != nil {
		found.value = strings.Clone(value)
		return
	}

	if B.head != nil && B.head.state == entryPlaceholder && link == &B.head.next {
		B.head.state = entryOccupied
		B.head.key = strings.Clone(key)
		B.head.value = strings.Clone(value)
		inserted = true
		return
	}

	*link = &entry{
		state: entryOccupied,
		key:   strings.Clone(key),
		value: strings.Clone(value),
		next:  *link,
	}
	inserted = true

	return
}

// remove - Removes the entry matching key. An entry at the head of the chain is cleared into a placeholder,
// an entry deeper down is unlinked.
// It returns:
//   - value is the value of the removed entry
//   - removed is true if an entry matching key was found
func (B *bin) remove(key string) (value string, removed bool) {
	link, found, _ := B.seek(key)
	if found == nil {
		return
	}

	value = found.value
	removed = true

	if found == B.head {
		found.state = entryPlaceholder
		found.key = ""
		found.value = ""
		return
	}

	*link = found.next
	found.next = nil

	return
}

// release - Drops every entry in the chain and returns how many nodes were released
func (B *bin) release() (n int64) {
	e := B.head
	for e != nil {
		next := e.next
		e.next = nil
		e.key = ""
		e.value = ""
		e = next
		n++
	}
	B.head = nil

	return
}

// firstOccupied - Returns e or the first occupied entry following it
func firstOccupied(e *entry) *entry {
	for e != nil && e.state != entryOccupied {
		e = e.next
	}
	return e
}
