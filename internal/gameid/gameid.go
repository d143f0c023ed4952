// Package gameid generates short sortable identifiers for game sessions.
package gameid

import (
	"crypto/rand"
	"io"
	"time"
)

// Crockford's base32 alphabet, lowercase.
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// New returns a 26-character identifier. The identifier is a UUIDv7
// encoded in base32, so the leading characters carry a millisecond
// timestamp and identifiers sort chronologically.
func New() string {
	return At(time.Now(), rand.Reader)
}

// At builds an identifier from an explicit timestamp and entropy source.
func At(now time.Time, entropy io.Reader) string {
	var id [16]byte

	ms := uint64(now.UnixMilli())
	id[0] = byte(ms >> 40)
	id[1] = byte(ms >> 32)
	id[2] = byte(ms >> 24)
	id[3] = byte(ms >> 16)
	id[4] = byte(ms >> 8)
	id[5] = byte(ms)

	if _, err := io.ReadFull(entropy, id[6:]); err != nil {
		panic("gameid: entropy unavailable: " + err.Error())
	}

	// UUIDv7 version and variant bits
	id[6] = (id[6] & 0x0f) | 0x70
	id[8] = (id[8] & 0x3f) | 0x80

	return encode(id)
}

// encode packs 128 bits into 26 base32 characters, most significant
// bits first. The final character carries the trailing 3 bits.
func encode(id [16]byte) string {
	var out [26]byte
	var acc uint64
	bits := 0
	n := 0

	for _, b := range id {
		acc = acc<<8 | uint64(b)
		bits += 8
		for bits >= 5 {
			bits -= 5
			out[n] = alphabet[(acc>>uint(bits))&0x1f]
			n++
		}
	}
	if bits > 0 {
		out[n] = alphabet[(acc<<uint(5-bits))&0x1f]
	}
	return string(out[:])
}
