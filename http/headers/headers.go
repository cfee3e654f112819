package headers

import (
	"iter"

	"github.com/indigo-web/h1req/http/status"
	"github.com/indigo-web/utils/strcomp"
)

// Headers is an ordered set of headers, preserving the order they arrived in. Duplicate
// keys are allowed and stay separate entries. Lookups by key are case-insensitive.
type Headers struct {
	headers    []Header
	uniqueBuff []string
	valuesBuff []string
}

func New() *Headers {
	return NewPrealloc(0)
}

// NewPrealloc returns an instance with pre-allocated storage for n headers
func NewPrealloc(n int) *Headers {
	return &Headers{
		headers: make([]Header, 0, n),
	}
}

// NewFromMap returns headers built of the map. As maps are unordered, so will be
// the resulting headers.
func NewFromMap(m map[string][]string) (*Headers, error) {
	h := NewPrealloc(len(m))

	for key, values := range m {
		for _, value := range values {
			if err := h.Add(key, value); err != nil {
				return nil, err
			}
		}
	}

	return h, nil
}

func (h *Headers) Len() int {
	return len(h.headers)
}

// At returns a copy of the header by its index.
func (h *Headers) At(index int) (Header, error) {
	if index < 0 || index >= len(h.headers) {
		return Header{}, status.ErrIndexOutOfBounds
	}

	return h.headers[index].clone(), nil
}

// Set replaces the header by its index. The new pair is validated the same way as
// a parsed header.
func (h *Headers) Set(index int, key, value string) error {
	if index < 0 || index >= len(h.headers) {
		return status.ErrIndexOutOfBounds
	}

	header, err := Parse(line(key, value))
	if err != nil {
		return err
	}

	h.headers[index] = header
	return nil
}

// Add validates and appends a new pair.
func (h *Headers) Add(key, value string) error {
	header, err := Parse(line(key, value))
	if err != nil {
		return err
	}

	h.Push(header)
	return nil
}

// Push appends an already validated header.
func (h *Headers) Push(header Header) {
	h.headers = append(h.headers, header)
}

// Value returns the first value, corresponding to the key. Otherwise, empty string is returned
func (h *Headers) Value(key string) string {
	value, _ := h.Get(key)
	return value
}

// Get returns the first value corresponding to the key and a bool, indicating whether
// the key exists
func (h *Headers) Get(key string) (string, bool) {
	for _, header := range h.headers {
		if strcomp.EqualFold(header.Key, key) {
			return header.Value, true
		}
	}

	return "", false
}

// Values returns all values by the key. Returns nil if key doesn't exist.
//
// WARNING: calling it twice will override values, returned by the first call. Consider
// copying the returned slice for safe use
func (h *Headers) Values(key string) []string {
	h.valuesBuff = h.valuesBuff[:0]

	for _, header := range h.headers {
		if strcomp.EqualFold(header.Key, key) {
			h.valuesBuff = append(h.valuesBuff, header.Value)
		}
	}

	if len(h.valuesBuff) == 0 {
		return nil
	}

	return h.valuesBuff
}

// Keys returns all unique keys, in order of their first appearance.
//
// WARNING: calling it twice will override values, returned by the first call. Consider
// copying the returned slice for safe use
func (h *Headers) Keys() []string {
	h.uniqueBuff = h.uniqueBuff[:0]

	for _, header := range h.headers {
		if contains(h.uniqueBuff, header.Key) {
			continue
		}

		h.uniqueBuff = append(h.uniqueBuff, header.Key)
	}

	return h.uniqueBuff
}

func (h *Headers) Has(key string) bool {
	_, found := h.Get(key)
	return found
}

// Iter returns an iterator over the key-value pairs
func (h *Headers) Iter() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, header := range h.headers {
			if !yield(header.Key, header.Value) {
				return
			}
		}
	}
}

// Expose reveals the underlying storage. Modifying it bypasses the validation.
func (h *Headers) Expose() []Header {
	return h.headers
}

// Clone creates a deep copy
func (h *Headers) Clone() *Headers {
	headers := make([]Header, len(h.headers))
	for i, header := range h.headers {
		headers[i] = header.clone()
	}

	return &Headers{headers: headers}
}

// Clear all the entries. However, all the allocated space won't be freed
func (h *Headers) Clear() {
	h.headers = h.headers[:0]
}

func line(key, value string) []byte {
	b := make([]byte, 0, len(key)+len(value)+2)
	b = append(b, key...)
	b = append(b, ':', ' ')

	return append(b, value...)
}

func contains(collection []string, key string) bool {
	for _, element := range collection {
		if strcomp.EqualFold(element, key) {
			return true
		}
	}

	return false
}
