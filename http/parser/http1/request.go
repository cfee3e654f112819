package http1

import (
	"github.com/indigo-web/h1req/config"
	"github.com/indigo-web/h1req/http/headers"
	"github.com/indigo-web/h1req/http/status"
	"github.com/indigo-web/h1req/internal/dump"
)

type ChunkedState uint8

const (
	ChunkedUnset ChunkedState = iota
	// ChunkedProcessing means chunked transfer coding was declared. Decoding the chunks
	// is up to the caller.
	ChunkedProcessing
	// ChunkedComplete is reserved for the chunked body being fully decoded.
	ChunkedComplete
)

func (c ChunkedState) String() string {
	switch c {
	case ChunkedUnset:
		return "unset"
	case ChunkedProcessing:
		return "processing"
	case ChunkedComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Request is a single HTTP/1.1 request being assembled of incoming chunks. It owns
// every byte received so far; the header block is parsed exactly once, as soon as its
// end is seen. Body decoding isn't done, the request only answers whether the body
// has fully arrived.
//
// Request isn't safe for concurrent use.
type Request struct {
	RequestLine string
	Headers     *headers.Headers

	cfg              *config.Config
	raw              []byte
	end              HeadersEnd
	contentLength    uint64
	hasContentLength bool
	chunked          ChunkedState
	err              error
}

func NewRequest(cfg *config.Config) *Request {
	return &Request{
		Headers: headers.NewPrealloc(cfg.Headers.Number.Default),
		cfg:     cfg,
		raw:     make([]byte, 0, cfg.Headers.Space.Default),
	}
}

// Append consumes the next chunk of the request. The first error is permanent: every
// following call returns it again, and no headers are exposed.
func (r *Request) Append(data []byte) error {
	if r.err != nil {
		return r.err
	}

	r.raw = append(r.raw, data...)

	if r.HeadersCompleted() {
		return nil
	}

	r.end = r.end.scan(r.raw)
	end, found := r.end.Found()
	if !found {
		// the last bytes might be the beginning of the terminator
		if len(r.raw)-(len(terminator)-1) > r.cfg.Headers.Space.Maximal {
			return r.fail(status.ErrHeaderFieldsTooLarge)
		}

		return nil
	}

	if end > r.cfg.Headers.Space.Maximal {
		return r.fail(status.ErrHeaderFieldsTooLarge)
	}

	if err := r.parseHeaders(); err != nil {
		return r.fail(err)
	}

	return nil
}

// HeadersCompleted tells whether the header block was found and successfully parsed.
func (r *Request) HeadersCompleted() bool {
	_, found := r.end.Found()
	return found && r.err == nil
}

// Body returns the bytes received after the headers block. It's empty until headers
// are completed.
func (r *Request) Body() []byte {
	if !r.HeadersCompleted() {
		return nil
	}

	end, _ := r.end.Found()
	return r.raw[end+len(terminator):]
}

// BodyComplete tells whether the whole body has arrived. A request without
// Content-Length has no body; a chunked one is never complete, as chunks aren't decoded.
func (r *Request) BodyComplete() bool {
	if !r.HeadersCompleted() {
		return false
	}

	switch r.chunked {
	case ChunkedProcessing:
		return false
	case ChunkedComplete:
		return true
	}

	if !r.hasContentLength {
		return true
	}

	return uint64(len(r.Body())) == r.contentLength
}

// Dump serializes the request in canonical form, reflecting edits made to headers
// after parsing. Nothing is returned until the body is complete.
func (r *Request) Dump() []byte {
	if !r.BodyComplete() {
		return nil
	}

	return dump.Request(r.RequestLine, r.Headers, r.Body())
}

// ContentLength returns the declared body length, if any.
func (r *Request) ContentLength() (uint64, bool) {
	return r.contentLength, r.hasContentLength
}

func (r *Request) Chunked() ChunkedState {
	return r.chunked
}

func (r *Request) HeadersEnd() HeadersEnd {
	return r.end
}

// Raw returns every byte received so far.
func (r *Request) Raw() []byte {
	return r.raw
}

// Err returns the error the request was rejected with.
func (r *Request) Err() error {
	return r.err
}

// Reset brings the request back to its initial state, so it can be reused for the next
// request on the same connection. Allocated space is preserved.
func (r *Request) Reset() {
	r.RequestLine = ""
	r.Headers.Clear()
	r.raw = r.raw[:0]
	r.end = HeadersEnd{}
	r.contentLength, r.hasContentLength = 0, false
	r.chunked = ChunkedUnset
	r.err = nil
}

func (r *Request) fail(err error) error {
	r.err = err
	r.RequestLine = ""
	r.Headers.Clear()
	r.contentLength, r.hasContentLength = 0, false
	r.chunked = ChunkedUnset

	return err
}
