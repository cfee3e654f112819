package http1

import (
	"bytes"
)

var terminator = []byte("\r\n\r\n")

type BoundaryState uint8

const (
	// Unset means no search was made yet.
	Unset BoundaryState = iota
	// Scanning means the search can be resumed from the stored offset.
	Scanning
	// FoundAt means the offset points at the first CR of the headers terminator.
	FoundAt
)

// HeadersEnd tracks the search of the end of headers block. Transitions are only
// Unset -> Scanning -> FoundAt.
type HeadersEnd struct {
	state  BoundaryState
	offset int
}

func (h HeadersEnd) State() BoundaryState {
	return h.state
}

// Found returns the offset of the terminator, if it has been found.
func (h HeadersEnd) Found() (offset int, found bool) {
	return h.offset, h.state == FoundAt
}

// Scanning returns the offset the next search resumes from.
func (h HeadersEnd) Scanning() (offset int, scanning bool) {
	return h.offset, h.state == Scanning
}

func (h HeadersEnd) String() string {
	switch h.state {
	case Unset:
		return "unset"
	case Scanning:
		return "scanning"
	case FoundAt:
		return "found"
	default:
		return "unknown"
	}
}

// scan looks up the terminator in raw, starting from the offset where the previous
// search stopped. In case it's not found, the offset is backed off by the terminator
// length, so a terminator split among two chunks is still found next time.
func (h HeadersEnd) scan(raw []byte) HeadersEnd {
	var from int

	switch h.state {
	case FoundAt:
		return h
	case Scanning:
		from = h.offset
	}

	if i := bytes.Index(raw[from:], terminator); i != -1 {
		return HeadersEnd{state: FoundAt, offset: from + i}
	}

	return HeadersEnd{state: Scanning, offset: max(len(raw)-len(terminator), 0)}
}
