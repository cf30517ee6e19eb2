package sampling

import (
	"crypto/rand"
	"io"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// PRNG is an interface for the generation of random bytes.
type PRNG interface {
	io.Reader
}

// ThreadSafePRNG reads from the operating system's secure random source.
type ThreadSafePRNG struct {
}

// NewPRNG returns a new PRNG that is thread-safe.
func NewPRNG() *ThreadSafePRNG {
	return &ThreadSafePRNG{}
}

// Read reads bytes from the secure random source on sum.
func (prng *ThreadSafePRNG) Read(sum []byte) (n int, err error) {
	return rand.Read(sum)
}

// KeyedPRNG deterministically generates a stream of bytes from a key
// using the blake2b XOF. Two KeyedPRNG created with the same key
// produce the same stream.
// Concurrent calls are serialized, but the resulting interleaving, and
// therefore the stream seen by each caller, is not deterministic.
type KeyedPRNG struct {
	mutex sync.Mutex
	key   []byte
	xof   blake2b.XOF
}

// NewKeyedPRNG creates a new instance of KeyedPRNG.
// A nil key is treated as an empty key.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	var err error
	prng := new(KeyedPRNG)
	prng.key = make([]byte, len(key))
	copy(prng.key, key)
	prng.xof, err = blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	return prng, err
}

// Key returns a copy of the key used to seed the PRNG.
func (prng *KeyedPRNG) Key() (key []byte) {
	key = make([]byte, len(prng.key))
	copy(key, prng.key)
	return
}

// Read reads bytes from the KeyedPRNG on sum.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	return prng.xof.Read(sum)
}

// Reset resets the PRNG to its initial state.
func (prng *KeyedPRNG) Reset() {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	prng.xof.Reset()
}
