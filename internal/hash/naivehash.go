package hash

// accumulatorBytes - Number of key bytes the naive accumulator can hold before its width is exhausted
const accumulatorBytes int = 8

// NaiveHashAlgorithm - Bin selection algorithm that accumulates the key big-endian into an uint64, shifting the
// accumulator one byte to the left before adding each key byte, and then applying bin = accumulator % binCount.
// The accumulation stops when the width of the accumulator is exhausted, so keys sharing their first 8 bytes
// always end up in the same bin.
type NaiveHashAlgorithm struct{}

// NewNaiveHashAlgorithm - Returns a pointer to a new NaiveHashAlgorithm instance
func NewNaiveHashAlgorithm() *NaiveHashAlgorithm {
	return &NaiveHashAlgorithm{}
}

// Hash - Given binCount and key it generates a bin index between 0 and binCount - 1
func (N *NaiveHashAlgorithm) Hash(binCount int64, key string) int64 {
	if binCount < 1 || key == "" {
		return 0
	}

	var h uint64
	for i := 0; i < len(key) && i < accumulatorBytes; i++ {
		h = h<<8 + uint64(key[i])
	}

	return int64(h % uint64(binCount))
}
