package config

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
)

// SeedValue turns the configured seed into the number that drives the PRNG.
// Integer seeds are used as is, any other text is hashed with FNV-1a, and an
// empty seed draws a fresh one from crypto/rand. The returned string is the
// canonical form to record alongside the output.
func (c Config) SeedValue() (int64, string, error) {
	s := strings.TrimSpace(c.Seed)
	if s == "" {
		n, err := NewSeed()
		if err != nil {
			return 0, "", err
		}
		return n, strconv.FormatInt(n, 10), nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, s, nil
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return int64(h.Sum64()), s, nil
}

// NewSeed generates a random non-negative seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:]) >> 1), nil
}
