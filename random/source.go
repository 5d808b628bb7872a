package random

import (
	"encoding/binary"
	"math/rand/v2"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20"
)

// Source yields uniformly distributed floats in [0, 1).
//
// *rand.Rand from math/rand/v2 satisfies Source.
type Source interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// Default returns the process-wide source backed by the math/rand/v2 global
// generator. It is safe for concurrent use and cannot be seeded.
func Default() Source { return globalSource{} }

// pcgStream is the fixed second PCG seed word used by [NewSeeded].
const pcgStream = 0x9e3779b97f4a7c15

// NewSeeded returns a reproducible generator backed by PCG.
// The result is not safe for concurrent use.
func NewSeeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^pcgStream))
}

// NewKeyed returns a reproducible generator whose output is the ChaCha20
// keystream (RFC 8439) under the key blake2b-256(seed) and an all-zero
// nonce. Any seed length is accepted. The result is not safe for concurrent
// use.
func NewKeyed(seed []byte) *rand.Rand {
	key := blake2b.Sum256(seed)
	nonce := make([]byte, chacha20.NonceSize)
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce)
	if err != nil {
		// Key and nonce sizes are fixed above; this cannot happen.
		panic("random: chacha20: " + err.Error())
	}
	return rand.New(&chachaSource{cipher: c})
}

// chachaSource adapts a ChaCha20 keystream to rand.Source.
type chachaSource struct {
	cipher *chacha20.Cipher
	buf    [8]byte
}

func (s *chachaSource) Uint64() uint64 {
	clear(s.buf[:])
	s.cipher.XORKeyStream(s.buf[:], s.buf[:])
	return binary.LittleEndian.Uint64(s.buf[:])
}

func orDefault(src Source) Source {
	if src == nil {
		return Default()
	}
	return src
}

// index maps a float in [0, 1) onto [0, n). A source returning a value that
// rounds up to n is pulled back to n-1.
func index(src Source, n int) int {
	i := int(src.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
