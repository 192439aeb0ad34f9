// Package geomask hides a listing's exact position on browse maps. The
// offset is derived from a hash of the unit id, so a unit's obfuscated pin
// stays put across renders and sessions instead of wandering. Nothing here
// shares state with price computation.
package geomask

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/google/uuid"
)

// MaxOffsetDegrees bounds the displacement on each axis (~400m of latitude).
const MaxOffsetDegrees = 0.004

// Mask returns the coordinates to display for a unit whose exact location
// is hidden. The same unit id always yields the same masked point.
func Mask(unitID uuid.UUID, lat, lng float64) (maskedLat, maskedLng float64) {
	dLat := offset(unitID, 0)
	dLng := offset(unitID, 1)
	return lat + dLat, lng + dLng
}

// offset maps (unitID, axis) onto [-MaxOffsetDegrees, +MaxOffsetDegrees).
func offset(unitID uuid.UUID, axis byte) float64 {
	h := fnv.New64a()
	h.Write(unitID[:])
	h.Write([]byte{axis})

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], h.Sum64())
	// Uniform in [0, 1) from the top 53 bits.
	u := float64(binary.BigEndian.Uint64(buf[:])>>11) / (1 << 53)
	return (u*2 - 1) * MaxOffsetDegrees
}
