package macverify

import "crypto/subtle"

// Output wraps a finalized tag. Its equality test runs in time dependent
// only on the byte length, never on where the contents first differ, so
// it is safe to compare against attacker-supplied values.
type Output struct {
	bytes []byte
}

// NewOutput wraps a copy of tag.
func NewOutput(tag []byte) Output {
	return Output{bytes: append([]byte(nil), tag...)}
}

// Equal reports whether o and other hold the same tag, in constant time.
// Outputs of different sizes are never equal; the sizes themselves are
// not secret.
func (o Output) Equal(other Output) bool {
	return subtle.ConstantTimeCompare(o.bytes, other.bytes) == 1
}

// Bytes returns a copy of the tag. Callers must not compare the raw
// bytes with non-constant-time equality; use Equal or the Verify
// functions instead.
func (o Output) Bytes() []byte {
	return append([]byte(nil), o.bytes...)
}

// Size returns the tag length in bytes.
func (o Output) Size() int {
	return len(o.bytes)
}
