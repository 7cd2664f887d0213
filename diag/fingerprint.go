package diag

import (
	"encoding/binary"

	"github.com/minio/highwayhash"
)

var fingerprintKey = []byte("annolint.diagnostic.fingerprint!")

// Fingerprint computes a stable 64-bit identity for a diagnostic, covering
// the rule, anchoring location and message arguments.
func Fingerprint(d Diagnostic) uint64 {
	h, err := highwayhash.New64(fingerprintKey)
	if err != nil {
		return 0
	}
	_, _ = h.Write([]byte(d.Rule))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(d.Location.Path))
	var pos [8]byte
	binary.LittleEndian.PutUint32(pos[:4], uint32(d.Location.Line))
	binary.LittleEndian.PutUint32(pos[4:], uint32(d.Location.Column))
	_, _ = h.Write(pos[:])
	for _, arg := range d.Args {
		_, _ = h.Write([]byte{0})
		_, _ = h.Write([]byte(arg))
	}
	return h.Sum64()
}
