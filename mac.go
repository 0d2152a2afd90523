package macverify

import "errors"

// ErrInvalidKeyLength is returned by algorithm constructors when the key
// length is not accepted. It deliberately carries no further detail.
var ErrInvalidKeyLength = errors.New("invalid key length")

// KeySizer reports the key length, in bytes, an algorithm expects from
// its fixed-length constructor.
type KeySizer interface {
	KeySize() int
}

// OutputSizer reports the tag length, in bytes, an algorithm produces.
// Every Mac and every Algorithm must declare a non-zero output size.
type OutputSizer interface {
	OutputSize() int
}

// Mac is the capability set a concrete MAC algorithm supplies: keyed
// state that absorbs message bytes and finally produces a fixed-size tag.
//
// An instance is owned by a single goroutine; no method is safe for
// concurrent use. Finalize consumes the instance: calling Update or
// Finalize again afterwards is a programmer error and panics, unless the
// implementation also satisfies FinalizeResetter or Resetter and the
// caller used those paths instead.
type Mac interface {
	OutputSizer

	// Update absorbs data into the internal state. It may be called any
	// number of times with slices of any length.
	Update(data []byte)

	// Finalize produces the tag and consumes the instance.
	Finalize() Output
}

// FinalizeResetter is the optional capability of producing a tag while
// atomically returning the instance to its freshly-keyed state.
type FinalizeResetter interface {
	FinalizeReset() Output
}

// Resetter is the optional capability of discarding accumulated state,
// returning to the freshly-keyed state without producing a tag.
type Resetter interface {
	Reset()
}

// Algorithm describes a MAC family: its sizing contracts and the two
// keyed construction paths.
type Algorithm interface {
	KeySizer
	OutputSizer

	// Name returns the registry name of the algorithm.
	Name() string

	// New creates a keyed instance from a key of exactly KeySize bytes.
	// Any other length fails with ErrInvalidKeyLength.
	New(key []byte) (Mac, error)

	// NewFromSlice creates a keyed instance from a variable-length key.
	// Lengths the algorithm does not tolerate fail with
	// ErrInvalidKeyLength.
	NewFromSlice(key []byte) (Mac, error)
}
