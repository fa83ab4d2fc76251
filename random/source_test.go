package random_test

import (
	"github.com/katalvlaran/dpgraph/core"
)

// stubSource replays a fixed byte sequence, cycling once exhausted, so
// samplers can be exercised deterministically without crypto/rand.
type stubSource struct {
	data []byte
	pos  int
}

func newStubSource(data ...byte) *stubSource {
	return &stubSource{data: data}
}

func (s *stubSource) FillBytes(buf []byte) error {
	if len(s.data) == 0 {
		return core.NewError(core.SamplingFailure, "stubSource: empty data")
	}
	for i := range buf {
		buf[i] = s.data[s.pos%len(s.data)]
		s.pos++
	}
	return nil
}
