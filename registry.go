package macverify

import (
	"fmt"
	"sort"
	"sync"
)

// The registry maps algorithm names to Algorithm implementations so
// stored key records can name their algorithm. Built-in algorithms are
// registered at package init; applications may add their own.
var (
	registryMu sync.RWMutex
	registry   = make(map[string]Algorithm)
)

func init() {
	for _, alg := range []Algorithm{
		HMACSHA256, HMACSHA512,
		BLAKE2b256, BLAKE2b512, BLAKE2s256,
		SipHash64, SipHash128,
		HighwayHash64, HighwayHash128, HighwayHash256,
	} {
		if err := Register(alg); err != nil {
			panic(err)
		}
	}
}

// Register adds an algorithm under its name. An algorithm declaring a
// zero output size is a contract violation and is refused, as is a
// duplicate name.
func Register(alg Algorithm) error {
	if alg.OutputSize() <= 0 {
		return fmt.Errorf("register %q: output size must be positive", alg.Name())
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[alg.Name()]; exists {
		return fmt.Errorf("register %q: already registered", alg.Name())
	}
	registry[alg.Name()] = alg
	return nil
}

// Lookup returns the algorithm registered under name.
func Lookup(name string) (Algorithm, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	alg, ok := registry[name]
	return alg, ok
}

// Algorithms returns the registered names in sorted order.
func Algorithms() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
