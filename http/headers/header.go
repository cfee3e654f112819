package headers

import (
	"strings"
	"unicode/utf8"

	"github.com/indigo-web/h1req/http/encword"
	"github.com/indigo-web/h1req/http/status"
	"github.com/indigo-web/h1req/internal/strutil"
	"github.com/indigo-web/utils/uf"
)

// Header is a single logical header line. Bytes holds the exact bytes it was built of,
// folded continuations included.
type Header struct {
	Key, Value string
	Bytes      []byte
}

// Parse validates a logical header line and splits it into key and value. The key must
// be non-empty and immediately followed by a colon, leading whitespaces of the value are
// trimmed. Every byte must be ASCII, line breaks are forbidden anywhere.
func Parse(raw []byte) (Header, error) {
	if !utf8.Valid(raw) {
		return Header{}, status.Wrap(status.ErrNonUTF8, strutil.InvalidUTF8(raw), nil)
	}

	colon := -1

	for i, char := range raw {
		switch {
		case char > 127:
			return Header{}, status.Wrap(status.ErrNonASCII, i, nil)
		case char == '\r' || char == '\n':
			return Header{}, status.Wrap(status.ErrLineBreakInHeader, i, nil)
		}

		if colon != -1 {
			continue
		}

		switch char {
		case ' ', '\t':
			return Header{}, status.Wrap(status.ErrSpaceBeforeColon, i, nil)
		case ':':
			colon = i
		}
	}

	if colon <= 0 {
		return Header{}, status.ErrEmptyHeaderKey
	}

	bytes := make([]byte, len(raw))
	copy(bytes, raw)

	return Header{
		Key:   uf.B2S(bytes[:colon]),
		Value: uf.B2S(strutil.LStripWS(bytes[colon+1:])),
		Bytes: bytes,
	}, nil
}

// Words returns the encoded words of the value.
func (h Header) Words() []encword.Word {
	return encword.Default.Decode(h.Value)
}

// Decoded returns the value with encoded words substituted by their decoded content.
func (h Header) Decoded() string {
	return encword.Default.Replace(h.Value)
}

// clone copies the bytes. Key and value are views over them, the value always being
// their suffix.
func (h Header) clone() Header {
	bytes := make([]byte, len(h.Bytes))
	copy(bytes, h.Bytes)

	if len(h.Key)+len(h.Value) > len(bytes) {
		// modified via Expose, so the views don't match the bytes anymore
		return Header{
			Key:   strings.Clone(h.Key),
			Value: strings.Clone(h.Value),
			Bytes: bytes,
		}
	}

	return Header{
		Key:   uf.B2S(bytes[:len(h.Key)]),
		Value: uf.B2S(bytes[len(bytes)-len(h.Value):]),
		Bytes: bytes,
	}
}
