// SPDX-License-Identifier: MIT

package ops

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"
	"time"
)

// defaultSeed is used when callers pass seed == 0.
const defaultSeed int64 = 1

// lockedSource serializes draws so one Source can back concurrent callers.
type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Intn(n)
}

// NewSource returns a goroutine-safe deterministic Source.
// Policy: seed == 0 uses defaultSeed; any other seed is used verbatim.
func NewSource(seed int64) Source {
	var s int64
	s = seed
	if s == 0 {
		s = defaultSeed
	}
	return &lockedSource{r: rand.New(rand.NewSource(s))}
}

// EntropySeed draws a non-zero seed from crypto/rand, falling back to the clock.
func EntropySeed() int64 {
	var b [8]byte
	var s int64
	if _, err := crand.Read(b[:]); err == nil {
		s = int64(binary.LittleEndian.Uint64(b[:]))
	} else {
		s = time.Now().UnixNano()
	}
	if s == 0 {
		s = defaultSeed
	}
	return s
}

// DeriveSeed mixes a parent seed and a stream id into an independent seed
// with the SplitMix64 finalizer. Batch runs use it for per-file streams.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
