// Package hasher fingerprints graph snapshots with xxhash.
package hasher

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/remake/internal/core/domain"
	"go.trai.ch/remake/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher implements ports.Hasher.
type Hasher struct{}

// New creates a Hasher.
func New() *Hasher {
	return &Hasher{}
}

// Fingerprint digests the clock and every target's name, build time and
// ordered dependencies. Two snapshots with equal observable state share a
// fingerprint.
func (h *Hasher) Fingerprint(snap domain.Snapshot) string {
	digest := xxhash.New()

	writeInt(digest, snap.Clock)
	for _, t := range snap.Targets {
		_, _ = digest.WriteString(t.Name)
		_, _ = digest.Write([]byte{0})
		writeInt(digest, t.LastBuildTime)

		for _, dep := range t.Dependencies {
			_, _ = digest.WriteString(dep)
			_, _ = digest.Write([]byte{0})
		}
		_, _ = digest.Write([]byte{1}) // end of target
	}

	return fmt.Sprintf("%016x", digest.Sum64())
}

func writeInt(digest *xxhash.Digest, v int64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v)) //nolint:gosec // bit pattern only
	_, _ = digest.Write(buf[:])
}
