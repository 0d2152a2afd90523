package macverify

import (
	"fmt"
	"hash"
)

// hashMac adapts a keyed hash.Hash to the Mac capability set. The
// underlying hash's Reset must restore the freshly-keyed state, which
// holds for crypto/hmac, keyed BLAKE2, SipHash and HighwayHash.
type hashMac struct {
	h        hash.Hash
	size     int
	consumed bool
}

func (m *hashMac) OutputSize() int { return m.size }

func (m *hashMac) Update(data []byte) {
	if m.consumed {
		panic("macverify: Update called on a finalized Mac")
	}
	// hash.Hash writers never return an error.
	_, _ = m.h.Write(data)
}

func (m *hashMac) Finalize() Output {
	if m.consumed {
		panic("macverify: Finalize called on a finalized Mac")
	}
	m.consumed = true
	return Output{bytes: m.sum()}
}

// FinalizeReset produces the tag and returns the instance to its
// freshly-keyed state, so it stays usable.
func (m *hashMac) FinalizeReset() Output {
	if m.consumed {
		panic("macverify: FinalizeReset called on a finalized Mac")
	}
	tag := Output{bytes: m.sum()}
	m.h.Reset()
	return tag
}

// Reset discards accumulated state without producing a tag.
func (m *hashMac) Reset() {
	if m.consumed {
		panic("macverify: Reset called on a finalized Mac")
	}
	m.h.Reset()
}

func (m *hashMac) sum() []byte {
	tag := m.h.Sum(nil)
	if len(tag) != m.size {
		// The collaborator violated its declared output size; that is a
		// programmer error in the algorithm, not a runtime condition.
		panic(fmt.Sprintf("macverify: algorithm produced %d-byte tag, declared %d", len(tag), m.size))
	}
	return tag
}

// hashAlgorithm implements Algorithm for any keyed hash.Hash
// constructor. The accepts predicate defines the key lengths the
// variable-length path tolerates.
type hashAlgorithm struct {
	name    string
	keySize int
	outSize int
	accepts func(keyLen int) bool
	newHash func(key []byte) (hash.Hash, error)
}

func (a *hashAlgorithm) Name() string    { return a.name }
func (a *hashAlgorithm) KeySize() int    { return a.keySize }
func (a *hashAlgorithm) OutputSize() int { return a.outSize }

func (a *hashAlgorithm) New(key []byte) (Mac, error) {
	if len(key) != a.keySize {
		return nil, ErrInvalidKeyLength
	}
	return a.instantiate(key)
}

func (a *hashAlgorithm) NewFromSlice(key []byte) (Mac, error) {
	if !a.accepts(len(key)) {
		return nil, ErrInvalidKeyLength
	}
	return a.instantiate(key)
}

func (a *hashAlgorithm) instantiate(key []byte) (Mac, error) {
	h, err := a.newHash(key)
	if err != nil {
		return nil, err
	}
	return &hashMac{h: h, size: a.outSize}, nil
}
