package hash

// JenkinsHashAlgorithm - The default bin selection algorithm. It is implemented using Bob Jenkins one-at-a-time hash
// to create a 32-bit hash value over the key and then applying bin = hash % binCount to get the bin index.
type JenkinsHashAlgorithm struct{}

// NewJenkinsHashAlgorithm - Returns a pointer to a new JenkinsHashAlgorithm instance
func NewJenkinsHashAlgorithm() *JenkinsHashAlgorithm {
	return &JenkinsHashAlgorithm{}
}

// Hash - Given binCount and key it generates a bin index between 0 and binCount - 1
func (J *JenkinsHashAlgorithm) Hash(binCount int64, key string) int64 {
	if binCount < 1 || key == "" {
		return 0
	}

	return int64(uint64(OneAtATime(key)) % uint64(binCount))
}

// OneAtATime - Returns the Jenkins one-at-a-time hash value of key
func OneAtATime(key string) (h uint32) {
	for i := 0; i < len(key); i++ {
		h += uint32(key[i])
		h += h << 10
		h ^= h >> 6
	}

	h += h << 3
	h ^= h >> 11
	h += h << 15

	return
}
