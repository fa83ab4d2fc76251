package random

import (
	crand "crypto/rand"
	"sync"

	"github.com/katalvlaran/dpgraph/core"
)

// Source supplies uniformly random bytes. It is the seam every sampler in
// this package and in package noise draws through, so tests can substitute
// a deterministic stub instead of crypto/rand.
type Source interface {
	FillBytes(buf []byte) error
}

// cryptoSource is the production Source, backed by crypto/rand.
type cryptoSource struct{}

func (cryptoSource) FillBytes(buf []byte) error {
	if _, err := crand.Read(buf); err != nil {
		return core.Errorf(core.SamplingFailure, "crypto/rand: %v", err)
	}
	return nil
}

var (
	defaultOnce sync.Once
	defaultSrc  Source
)

// Default returns the single process-wide cryptographic RNG instance.
// Every mechanism that does not receive an explicit Source falls back to
// this one, matching the "RNG ownership" contract: the process shares one
// CSPRNG handle rather than opening one per call.
func Default() Source {
	defaultOnce.Do(func() { defaultSrc = cryptoSource{} })
	return defaultSrc
}

// GetBytes draws n random bytes from src and renders them as an n*8
// character string of '0'/'1' characters, most significant bit first.
func GetBytes(src Source, n int) (string, error) {
	buf := make([]byte, n)
	if err := src.FillBytes(buf); err != nil {
		return "", err
	}
	out := make([]byte, 0, n*8)
	for _, b := range buf {
		for i := 7; i >= 0; i-- {
			if (b>>uint(i))&1 == 1 {
				out = append(out, '1')
			} else {
				out = append(out, '0')
			}
		}
	}
	return string(out), nil
}

// SampleBit draws a single uniformly random bit from src.
func SampleBit(src Source) (byte, error) {
	var b [1]byte
	if err := src.FillBytes(b[:]); err != nil {
		return 0, err
	}
	return b[0] & 1, nil
}

// SampleMantissaBits draws n (<= 64) uniformly random bits from src,
// right-aligned in the returned word. Used to assemble IEEE-754 mantissas
// for the Downey uniform construction and the Snapping mechanism's
// signed-uniform draw.
func SampleMantissaBits(src Source, n int) (uint64, error) {
	nbytes := (n + 7) / 8
	buf := make([]byte, nbytes)
	if err := src.FillBytes(buf); err != nil {
		return 0, err
	}
	v := uint64(0)
	for _, b := range buf {
		v = v<<8 | uint64(b)
	}
	return v & ((uint64(1) << uint(n)) - 1), nil
}
