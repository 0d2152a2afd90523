package macverify

import (
	"hash"

	"github.com/minio/highwayhash"
)

// HighwayHash takes exactly 32-byte keys in all output widths.
const highwayKeySize = 32

var (
	HighwayHash64 Algorithm = &hashAlgorithm{
		name:    "HighwayHash-64",
		keySize: highwayKeySize,
		outSize: highwayhash.Size64,
		accepts: func(n int) bool { return n == highwayKeySize },
		newHash: func(key []byte) (hash.Hash, error) {
			h, err := highwayhash.New64(key)
			if err != nil {
				return nil, err
			}
			return h, nil
		},
	}

	HighwayHash128 Algorithm = &hashAlgorithm{
		name:    "HighwayHash-128",
		keySize: highwayKeySize,
		outSize: highwayhash.Size128,
		accepts: func(n int) bool { return n == highwayKeySize },
		newHash: func(key []byte) (hash.Hash, error) { return highwayhash.New128(key) },
	}

	HighwayHash256 Algorithm = &hashAlgorithm{
		name:    "HighwayHash-256",
		keySize: highwayKeySize,
		outSize: highwayhash.Size,
		accepts: func(n int) bool { return n == highwayKeySize },
		newHash: func(key []byte) (hash.Hash, error) { return highwayhash.New(key) },
	}
)
