// Package encword locates and decodes RFC 2047 encoded words (=?charset?encoding?text?=)
// inside header values.
package encword

import (
	"encoding/base64"
	"errors"
	"sort"
	"strings"

	"github.com/indigo-web/utils/strcomp"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

var (
	ErrMalformed           = errors.New("malformed encoded word")
	ErrUnsupportedEncoding = errors.New("unsupported encoded word encoding")
	ErrUnknownCharset      = errors.New("unknown charset")
	ErrBadBase64           = errors.New("invalid base64 in encoded word")
)

const (
	openMarker  = "=?"
	closeMarker = "?="
)

// Span is a half-open range [Start, End) of a value occupied by a single encoded word,
// markers included.
type Span struct {
	Start, End int
}

// Word is a single encoded word. Err is non-nil when the word could not be decoded, in
// which case Value stays empty. Failures never affect other words.
type Word struct {
	Charset  string
	Encoding string
	Raw      []byte
	Value    string
	Err      error
	Span     Span
}

// Charsets resolves a charset label into an encoding.
type Charsets interface {
	Lookup(label string) (encoding.Encoding, error)
}

// WHATWG is the charset-label registry of the WHATWG Encoding Standard.
type WHATWG struct{}

func (WHATWG) Lookup(label string) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, ErrUnknownCharset
	}

	return enc, nil
}

// Decoder decodes encoded words using the charset registry it holds.
type Decoder struct {
	charsets Charsets
}

func NewDecoder(charsets Charsets) *Decoder {
	return &Decoder{charsets: charsets}
}

// Default decodes charset labels via the WHATWG registry.
var Default = NewDecoder(WHATWG{})

// Find returns spans of all bracketed runs, ordered by their beginning. Every opening
// marker is pending until the nearest closing marker, so nested words are matched inside
// out. Closing markers without a pending opening one are ignored.
func Find(value string) []Span {
	var (
		pending []int
		spans   []Span
	)

	for i := 0; i+1 < len(value); i++ {
		if value[i] == '=' && value[i+1] == '?' {
			pending = append(pending, i)
		}

		if value[i] == '?' && value[i+1] == '=' && len(pending) > 0 {
			start := pending[len(pending)-1]
			pending = pending[:len(pending)-1]
			spans = append(spans, Span{Start: start, End: i + len(closeMarker)})
		}
	}

	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].Start < spans[j].Start
	})

	return spans
}

// Decode finds and decodes every encoded word in the value.
func (d *Decoder) Decode(value string) []Word {
	spans := Find(value)
	if len(spans) == 0 {
		return nil
	}

	words := make([]Word, 0, len(spans))
	for _, span := range spans {
		words = append(words, d.decodeWord(value[span.Start:span.End], span))
	}

	return words
}

// Replace returns the value with every successfully decoded word substituted by its
// value. Words failed to decode, as well as words nested into other ones, are left
// untouched.
func (d *Decoder) Replace(value string) string {
	words := d.Decode(value)
	if len(words) == 0 {
		return value
	}

	var (
		b      strings.Builder
		offset int
	)

	for _, word := range words {
		if word.Span.Start < offset {
			// nested into the previous word
			continue
		}

		if word.Err != nil {
			b.WriteString(value[offset:word.Span.End])
		} else {
			b.WriteString(value[offset:word.Span.Start])
			b.WriteString(word.Value)
		}

		offset = word.Span.End
	}

	b.WriteString(value[offset:])

	return b.String()
}

func (d *Decoder) decodeWord(run string, span Span) (word Word) {
	word.Raw = []byte(run)
	word.Span = span

	fields := strings.SplitN(run, "?", 4)
	if len(fields) != 4 || fields[0] != "=" || !strings.HasSuffix(fields[3], closeMarker) {
		word.Err = ErrMalformed
		return word
	}

	word.Charset, word.Encoding = fields[1], fields[2]
	text := strings.TrimSuffix(fields[3], closeMarker)

	if !strcomp.EqualFold(word.Encoding, "B") {
		word.Err = ErrUnsupportedEncoding
		return word
	}

	raw, err := base64.RawStdEncoding.DecodeString(text)
	if err != nil {
		word.Err = errors.Join(ErrBadBase64, err)
		return word
	}

	enc, err := d.charsets.Lookup(word.Charset)
	if err != nil {
		word.Err = err
		return word
	}

	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		word.Err = err
		return word
	}

	word.Value = string(decoded)

	return word
}
