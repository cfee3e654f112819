package http1

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/indigo-web/h1req/http/headers"
	"github.com/indigo-web/h1req/http/status"
	"github.com/indigo-web/h1req/internal/strutil"
	"github.com/indigo-web/utils/strcomp"
)

var crlf = []byte("\r\n")

// parseHeaders splits the header block into lines. The first one is the request line,
// each next one is a header, unless it begins with a space or a tab: then it's an
// obsolete line folding and is glued to the previous header, leading whitespaces
// and the line break elided.
func (r *Request) parseHeaders() error {
	end, found := r.end.Found()
	if !found {
		return status.ErrHeadersIncomplete
	}

	block := r.raw[:end]
	lineEnd := bytes.Index(block, crlf)
	if lineEnd == -1 {
		lineEnd = len(block)
	}

	requestLine := block[:lineEnd]
	if offset := strutil.InvalidUTF8(requestLine); offset != -1 {
		return status.Wrap(status.ErrNonUTF8, offset, nil)
	}

	r.RequestLine = string(requestLine)
	rest := block[lineEnd:]
	var logical []byte

	for len(rest) > 0 {
		// every line but the request one is preceded by CRLF
		rest = rest[len(crlf):]
		line := rest
		if next := bytes.Index(rest, crlf); next != -1 {
			line, rest = rest[:next], rest[next:]
		} else {
			rest = rest[len(rest):]
		}

		if len(logical) > 0 && isFolded(line) {
			logical = append(logical, strutil.LStripWS(line)...)
			continue
		}

		if len(logical) > 0 {
			if err := r.addHeader(logical); err != nil {
				return err
			}
		}

		logical = append(logical[:0], line...)
	}

	if len(logical) > 0 {
		return r.addHeader(logical)
	}

	return nil
}

func (r *Request) addHeader(raw []byte) error {
	header, err := headers.Parse(raw)
	if err != nil {
		return err
	}

	if r.Headers.Len() >= r.cfg.Headers.Number.Maximal {
		return status.ErrTooManyHeaders
	}

	if err = r.applyFraming(header); err != nil {
		return err
	}

	r.Headers.Push(header)
	return nil
}

// applyFraming updates Content-Length and Transfer-Encoding derived state. Both headers
// are allowed to be presented only once, and never together.
func (r *Request) applyFraming(header headers.Header) error {
	switch {
	case strcomp.EqualFold(header.Key, "content-length"):
		length, err := strconv.ParseUint(strings.TrimSpace(header.Value), 10, 64)
		if err != nil {
			return status.Wrap(status.ErrBadContentLength, -1, err)
		}

		if r.hasContentLength {
			return status.ErrDuplicateContentLength
		}

		if length > r.cfg.Body.MaxSize {
			return status.ErrBodyTooLarge
		}

		r.contentLength, r.hasContentLength = length, true
	case strcomp.EqualFold(header.Key, "transfer-encoding"):
		chunked, last := chunkedToken(header.Value)
		if chunked && !last {
			return status.ErrChunkedNotLast
		}

		if last {
			if r.chunked != ChunkedUnset {
				return status.ErrDuplicateTransferEncoding
			}

			r.chunked = ChunkedProcessing
		}
	}

	if r.hasContentLength && r.chunked != ChunkedUnset {
		return status.ErrAmbiguousFraming
	}

	return nil
}

// chunkedToken reports whether chunked is among the codings, and whether it's the final one.
func chunkedToken(value string) (chunked, last bool) {
	tokens := strutil.Tokens(value)

	for i, token := range tokens {
		if strcomp.EqualFold(token, "chunked") {
			chunked = true
			last = i == len(tokens)-1
		}
	}

	return chunked, last
}

func isFolded(line []byte) bool {
	return len(line) > 0 && (line[0] == ' ' || line[0] == '\t')
}
