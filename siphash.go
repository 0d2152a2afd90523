package macverify

import (
	"hash"

	"github.com/dchest/siphash"
)

// SipHash-2-4 takes exactly 16-byte keys and produces short tags, which
// makes it the usual choice where the tag itself must be small. The
// variable-length path accepts only the fixed size.
var (
	SipHash64 Algorithm = &hashAlgorithm{
		name:    "SipHash-64",
		keySize: 16,
		outSize: siphash.Size,
		accepts: func(n int) bool { return n == 16 },
		newHash: func(key []byte) (hash.Hash, error) { return siphash.New(key), nil },
	}

	SipHash128 Algorithm = &hashAlgorithm{
		name:    "SipHash-128",
		keySize: 16,
		outSize: siphash.Size128,
		accepts: func(n int) bool { return n == 16 },
		newHash: func(key []byte) (hash.Hash, error) { return siphash.New128(key), nil },
	}
)
