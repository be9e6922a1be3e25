// Package filetime converts between Go time values and the Windows FILETIME
// encoding the wire protocol uses for quest and item expiration timestamps:
// 100-ns ticks since 1601-01-01 UTC, with the local timezone offset folded
// in ahead of time rather than left for the client to apply.
package filetime

import "time"

// epochOffset is the tick offset the protocol adds to Unix-epoch ticks: the
// 100-ns ticks between the FILETIME epoch (1601-01-01 UTC) and the Unix
// epoch (1970-01-01 UTC), 116444736000000000, plus a further 10800000.
const epochOffset = 116444736010800000

// Zero is the fixed sentinel meaning "never" (e.g. an equipment expiration
// that never triggers).
const Zero uint64 = 94354848000000000

// Default is the fixed sentinel meaning "permanent" (e.g. a non-expiring
// equipment record's expiration field).
const Default uint64 = 150842304000000000

// Now encodes t as a FILETIME with the local UTC offset pre-added, matching
// what the client expects to display directly without further conversion.
func Now(t time.Time) uint64 {
	_, offsetSeconds := t.Zone()
	return uint64(t.UnixMilli())*10000 + epochOffset + uint64(offsetSeconds)*10000000
}
