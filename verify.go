package macverify

import (
	"crypto/subtle"
	"errors"
)

// ErrTagMismatch is the uniform authentication failure returned by every
// verification entry point, on length mismatch and content mismatch
// alike. Distinguishing the causes would hand an attacker an oracle, so
// callers get exactly one signal: do not trust this message.
var ErrTagMismatch = errors.New("MAC tag mismatch")

// Verify finalizes m and compares the full tag against expected in
// constant time. The instance is consumed.
func Verify(m Mac, expected Output) error {
	if m.Finalize().Equal(expected) {
		return nil
	}
	return ErrTagMismatch
}

// VerifySlice finalizes m and compares the full tag against expected.
// An expected slice whose length differs from the output size fails
// immediately; that check is not constant-time, which is safe because
// tag lengths are public. The content comparison is constant-time.
func VerifySlice(m Mac, expected []byte) error {
	if len(expected) != m.OutputSize() {
		return ErrTagMismatch
	}
	tag := m.Finalize()
	if subtle.ConstantTimeCompare(tag.bytes, expected) == 1 {
		return nil
	}
	return ErrTagMismatch
}

// VerifyTruncatedLeft finalizes m and compares only the first
// len(expected) bytes of the computed tag against expected, in constant
// time. The full tag is always computed; only the comparison is
// truncated. An empty or over-long expected value fails.
//
// Truncated verification exists for schemes that transmit a prefix of
// the tag to save bandwidth.
func VerifyTruncatedLeft(m Mac, expected []byte) error {
	n := len(expected)
	if n == 0 || n > m.OutputSize() {
		return ErrTagMismatch
	}
	tag := m.Finalize()
	if subtle.ConstantTimeCompare(tag.bytes[:n], expected) == 1 {
		return nil
	}
	return ErrTagMismatch
}

// VerifyTruncatedRight is VerifyTruncatedLeft mirrored onto the tag's
// suffix: the last len(expected) bytes of the computed tag are compared.
func VerifyTruncatedRight(m Mac, expected []byte) error {
	n := len(expected)
	size := m.OutputSize()
	if n == 0 || n > size {
		return ErrTagMismatch
	}
	tag := m.Finalize()
	if subtle.ConstantTimeCompare(tag.bytes[size-n:], expected) == 1 {
		return nil
	}
	return ErrTagMismatch
}
