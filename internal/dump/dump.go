package dump

import (
	"github.com/indigo-web/h1req/http/headers"
	"github.com/valyala/bytebufferpool"
)

var pool bytebufferpool.Pool

// Request serializes the request line, headers and body into a canonical form: every header
// on its own line as `key: value`, no folding, a single space after the colon.
func Request(requestLine string, hdrs *headers.Headers, body []byte) []byte {
	buff := pool.Get()
	defer pool.Put(buff)

	_, _ = buff.WriteString(requestLine)
	_, _ = buff.Write(crlf)

	for _, h := range hdrs.Expose() {
		header(buff, h)
	}

	_, _ = buff.Write(crlf)
	_, _ = buff.Write(body)

	out := make([]byte, buff.Len())
	copy(out, buff.B)

	return out
}

var crlf = []byte("\r\n")

func header(buff *bytebufferpool.ByteBuffer, h headers.Header) {
	_, _ = buff.WriteString(h.Key)
	_, _ = buff.WriteString(": ")
	_, _ = buff.WriteString(h.Value)
	_, _ = buff.Write(crlf)
}
