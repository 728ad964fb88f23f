package hashfunc

// HashAlgorithm - Interface that permits a user of the hash table to supply a custom bin
// selection algorithm suited for its particular distribution of keys.
type HashAlgorithm interface {
	// Hash - Given the number of bins in a table and a key it generates a bin index between 0 and binCount - 1.
	// Any number returned outside that range will result in an error down stream.
	// Implementations must return 0 if binCount is less than 1 or if key is empty, and they must be pure so that
	// the same binCount and key always produce the same bin.
	//   - binCount is the number of bins the table was created with
	//   - key is the key to select a bin for
	Hash(binCount int64, key string) int64
}
