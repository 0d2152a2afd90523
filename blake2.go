package macverify

import (
	"hash"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
)

// Keyed BLAKE2 runs as a native MAC without the HMAC construction. The
// variable-length path accepts any key from 1 byte up to the hash size
// limit (64 for BLAKE2b, 32 for BLAKE2s); the fixed key size matches
// the output size.
var (
	BLAKE2b256 Algorithm = &hashAlgorithm{
		name:    "BLAKE2b-256",
		keySize: 32,
		outSize: blake2b.Size256,
		accepts: func(n int) bool { return n >= 1 && n <= 64 },
		newHash: func(key []byte) (hash.Hash, error) { return blake2b.New256(key) },
	}

	BLAKE2b512 Algorithm = &hashAlgorithm{
		name:    "BLAKE2b-512",
		keySize: 64,
		outSize: blake2b.Size,
		accepts: func(n int) bool { return n >= 1 && n <= 64 },
		newHash: func(key []byte) (hash.Hash, error) { return blake2b.New512(key) },
	}

	BLAKE2s256 Algorithm = &hashAlgorithm{
		name:    "BLAKE2s-256",
		keySize: 32,
		outSize: blake2s.Size,
		accepts: func(n int) bool { return n >= 1 && n <= 32 },
		newHash: func(key []byte) (hash.Hash, error) { return blake2s.New256(key) },
	}
)
