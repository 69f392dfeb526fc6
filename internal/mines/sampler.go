package mines

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strconv"
	"sync"
	"time"
)

const (
	// windowSize digits are read per candidate, giving values in 0..999.
	windowSize = 3
	// maxStaleDraws bounds consecutive draws that add no new position.
	maxStaleDraws = 10_000
	// randBatch is the number of candidates a [RandSource] yields per draw.
	randBatch = 16
)

// Source produces streams of candidate mine positions. Candidates outside
// [0, total) are discarded by the sampler, so a source may ignore total.
type Source interface {
	Draw(total int) ([]int, error)
}

// MineCount is the number of mines placed on a board of total cells: a fifth
// of the cells, but never fewer than one.
func MineCount(total int) int {
	return max(1, total/5)
}

// Sample returns [MineCount] distinct positions in [0, total), in the order
// they were drawn from src. Exhausted streams are replaced by fresh draws.
func Sample(src Source, total int) ([]int, error) {
	want := MineCount(total)
	if want > total {
		return nil, fmt.Errorf("%w: %d cells", ErrBoardSize, total)
	}

	seen := make(map[int]struct{}, want)
	positions := make([]int, 0, want)
	stale := 0
	for len(positions) < want {
		stream, err := src.Draw(total)
		if err != nil {
			return nil, fmt.Errorf("unable to draw candidates: %w", err)
		}

		before := len(positions)
		for _, n := range stream {
			if len(positions) == want {
				break
			}
			if n < 0 || n >= total {
				continue
			}
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			positions = append(positions, n)
		}

		if len(positions) > before {
			stale = 0
			continue
		}
		stale++
		if stale >= maxStaleDraws {
			return nil, fmt.Errorf(
				"%w: %d of %d mines after %d draws", ErrSamplerStalled, len(positions), want, stale,
			)
		}
	}
	return positions, nil
}

// ClockSource reads candidates from the sub-second part of the clock. The
// nine nanosecond digits are reversed so the fastest changing ones come
// first, then split into overlapping three-digit windows.
type ClockSource struct {
	Now func() time.Time
}

func NewClockSource() *ClockSource {
	return &ClockSource{Now: time.Now}
}

func (s *ClockSource) Draw(int) ([]int, error) {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	t := now()
	if t.IsZero() || t.Unix() < 0 {
		return nil, ErrEntropyUnavailable
	}
	digits := []byte(fmt.Sprintf("%09d", t.Nanosecond()))
	slices.Reverse(digits)
	return digitWindows(digits, windowSize), nil
}

func digitWindows(digits []byte, size int) []int {
	if len(digits) < size {
		return nil
	}
	windows := make([]int, 0, len(digits)-size+1)
	for i := 0; i+size <= len(digits); i++ {
		// leading zeros parse to shorter numbers
		n, err := strconv.Atoi(string(digits[i : i+size]))
		if err != nil {
			continue
		}
		windows = append(windows, n)
	}
	return windows
}

// RandSource draws uniform candidates from a shared generator. It is safe for
// concurrent use.
type RandSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewRandSource(rnd *rand.Rand) *RandSource {
	return &RandSource{rnd: rnd}
}

func (s *RandSource) Draw(total int) ([]int, error) {
	if total <= 0 {
		return nil, ErrEntropyUnavailable
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	stream := make([]int, randBatch)
	for i := range stream {
		stream[i] = s.rnd.IntN(total)
	}
	return stream, nil
}
