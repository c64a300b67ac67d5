package locktab

import "github.com/minio/highwayhash"

// hashKey seeds HighwayHash. Fixed so a given byte key maps to the same
// slot for the life of the process and across tables of equal size.
var hashKey = [32]byte{
	0x4c, 0x41, 0x54, 0x43, 0x48, 0x54, 0x41, 0x42,
	0x9e, 0x37, 0x79, 0xb9, 0x7f, 0x4a, 0x7c, 0x15,
	0xf3, 0x9c, 0xc0, 0x60, 0x5c, 0xed, 0xc8, 0x34,
	0x10, 0x82, 0x27, 0x6b, 0xf3, 0xa2, 0x72, 0x51,
}

// HashBytes maps an arbitrary byte key onto the integer key space the
// tables address.
func HashBytes(b []byte) uint64 {
	return highwayhash.Sum64(b, hashKey[:])
}

// HashString maps a string key onto the integer key space the tables
// address.
func HashString(s string) uint64 {
	return highwayhash.Sum64([]byte(s), hashKey[:])
}

// AcquireForBytes locks the slot for the hash of key.
func (t *Table) AcquireForBytes(key []byte) {
	t.AcquireFor(HashBytes(key))
}

// TryAcquireForBytes attempts to lock the slot for the hash of key
// without blocking and reports whether it succeeded.
func (t *Table) TryAcquireForBytes(key []byte) bool {
	return t.TryAcquireFor(HashBytes(key))
}

// ReleaseForBytes unlocks the slot for the hash of key.
func (t *Table) ReleaseForBytes(key []byte) {
	t.ReleaseFor(HashBytes(key))
}

// AcquireForString locks the slot for the hash of key.
func (t *Table) AcquireForString(key string) {
	t.AcquireFor(HashString(key))
}

// TryAcquireForString attempts to lock the slot for the hash of key
// without blocking and reports whether it succeeded.
func (t *Table) TryAcquireForString(key string) bool {
	return t.TryAcquireFor(HashString(key))
}

// ReleaseForString unlocks the slot for the hash of key.
func (t *Table) ReleaseForString(key string) {
	t.ReleaseFor(HashString(key))
}
