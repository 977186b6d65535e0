package sampling

import (
	"encoding/binary"
)

// RandUint64 returns a random value between 0 and 0xFFFFFFFFFFFFFFFF,
// read from the provided source.
func RandUint64(source PRNG) uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := source.Read(b); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(b)
}

// RandFloat64 returns a random float between min and max, read from the
// provided source.
func RandFloat64(source PRNG, min, max float64) float64 {
	f := float64(RandUint64(source)) / 1.8446744073709552e+19
	return min + f*(max-min)
}

// RandInt returns a random int in [0, max-1], read from the provided source.
func RandInt(source PRNG, max int) int {
	return int(RandUint64(source) % uint64(max))
}
