// Package ident generates the short prefixed identifiers used across all
// collections: a per-entity prefix plus an 8-character random suffix, e.g.
// "r-1a2b3c4d" for rooms. Suffixes come from a UUID so collisions are
// negligible at this scale and are not actively checked.
package ident

import (
	"encoding/hex"

	"github.com/google/uuid"
)

const (
	RoomPrefix    = "r"
	AssetPrefix   = "a"
	BookingPrefix = "b"
)

func New(prefix string) string {
	id := uuid.New()
	return prefix + "-" + hex.EncodeToString(id[:4])
}
