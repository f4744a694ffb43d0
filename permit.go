package uat

import "math"

// NoOwner is the sentinel agent id denoting the primordial seller: the
// implicit owner of a permit that has never changed hands.
const NoOwner uint64 = math.MaxUint64

// Permit identifies the right to occupy a region at a given tick. It is
// comparable whenever R is, which lets the ledger use it directly as a map
// key instead of hand-rolling a hash-combine function.
type Permit[R comparable] struct {
	Region R
	Time   uint64
}
