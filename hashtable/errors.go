package hashtable

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// Is - Makes errors.Is match any NoRecordFound regardless of message
func (E NoRecordFound) Is(target error) bool {
	_, ok := target.(NoRecordFound)
	return ok
}

// InvalidArgument - Custom error to inform that a nil table, an empty key or a non-positive bin count was given
type InvalidArgument struct {
	msg string
}

// Error - Used to notify about an invalid argument
func (E InvalidArgument) Error() string {
	if E.msg == "" {
		return "invalid argument"
	}
	return E.msg
}

// Is - Makes errors.Is match any InvalidArgument regardless of message
func (E InvalidArgument) Is(target error) bool {
	_, ok := target.(InvalidArgument)
	return ok
}

// ChainCorrupted - Custom error to inform that a bin chain no longer is in ascending key order
type ChainCorrupted struct {
	msg string
}

// Error - Used to notify that a bin chain is corrupted
func (E ChainCorrupted) Error() string {
	if E.msg == "" {
		return "bin chain corrupted"
	}
	return E.msg
}

// Is - Makes errors.Is match any ChainCorrupted regardless of message
func (E ChainCorrupted) Is(target error) bool {
	_, ok := target.(ChainCorrupted)
	return ok
}

// HashAlgorithmFault - Custom error to inform that a hash algorithm returned a bin outside the table
type HashAlgorithmFault struct {
	msg string
}

// Error - Used to notify that a hash algorithm misbehaved
func (E HashAlgorithmFault) Error() string {
	if E.msg == "" {
		return "hash algorithm returned bin outside table"
	}
	return E.msg
}

// Is - Makes errors.Is match any HashAlgorithmFault regardless of message
func (E HashAlgorithmFault) Is(target error) bool {
	_, ok := target.(HashAlgorithmFault)
	return ok
}

// TableDestroyed - Custom error to inform that the table has been destroyed and can't be used anymore
type TableDestroyed struct {
	msg string
}

// Error - Used to notify that the table has been destroyed
func (E TableDestroyed) Error() string {
	if E.msg == "" {
		return "table destroyed"
	}
	return E.msg
}

// Is - Makes errors.Is match any TableDestroyed regardless of message
func (E TableDestroyed) Is(target error) bool {
	_, ok := target.(TableDestroyed)
	return ok
}
