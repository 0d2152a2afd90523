package macverify

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
)

// HMAC-based algorithms. The fixed key size is the hash block size, per
// RFC 2104's recommendation; the variable-length path accepts any
// non-empty key, which HMAC hashes down or pads internally.
var (
	HMACSHA256 Algorithm = newHMACAlgorithm("HMAC-SHA256", sha256.New)
	HMACSHA512 Algorithm = newHMACAlgorithm("HMAC-SHA512", sha512.New)
)

func newHMACAlgorithm(name string, newHash func() hash.Hash) Algorithm {
	probe := newHash()
	return &hashAlgorithm{
		name:    name,
		keySize: probe.BlockSize(),
		outSize: probe.Size(),
		accepts: func(n int) bool { return n > 0 },
		newHash: func(key []byte) (hash.Hash, error) {
			return hmac.New(newHash, key), nil
		},
	}
}
