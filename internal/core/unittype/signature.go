package unittype

import "github.com/cespare/xxhash/v2"

// Signature hashes the kinds of t's abilities in grant order. Types with
// different signatures are never Equal; equal signatures prove nothing, since
// distinct handles of one kind hash alike.
func Signature(t UnitType) uint64 {
	if t == nil {
		return 0
	}
	d := xxhash.New()
	for _, a := range t.Core().abilities {
		_, _ = d.Write([]byte{byte(a.Kind())})
	}
	return d.Sum64()
}
