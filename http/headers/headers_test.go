package headers

import (
	"testing"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/h1req/http/status"
	"github.com/stretchr/testify/require"
)

func TestHeaders(t *testing.T) {
	t.Run("add and lookup", func(t *testing.T) {
		h := New()
		require.NoError(t, h.Add("Accept", "text/html"))
		require.NoError(t, h.Add("Host", "example.com"))
		require.NoError(t, h.Add("accept", "application/json"))

		require.Equal(t, 3, h.Len())
		require.Equal(t, "text/html", h.Value("ACCEPT"))
		require.Equal(t, []string{"text/html", "application/json"}, h.Values("Accept"))
		require.Equal(t, []string{"Accept", "Host"}, h.Keys())
		require.True(t, h.Has("host"))
		require.False(t, h.Has("Cookie"))
		require.Nil(t, h.Values("Cookie"))
	})

	t.Run("add rejects invalid", func(t *testing.T) {
		h := New()
		require.ErrorIs(t, h.Add("Bad Key", "x"), status.ErrSpaceBeforeColon)
		require.ErrorIs(t, h.Add("", "x"), status.ErrEmptyHeaderKey)
		require.ErrorIs(t, h.Add("Key", "é"), status.ErrNonASCII)
		require.Zero(t, h.Len())
	})

	t.Run("at", func(t *testing.T) {
		h := New()
		require.NoError(t, h.Add("Hello", "world"))

		header, err := h.At(0)
		require.NoError(t, err)
		require.Equal(t, "Hello", header.Key)
		require.Equal(t, "world", header.Value)
		require.Equal(t, []byte("Hello: world"), header.Bytes)

		header.Bytes[0] = 'J'
		header.Bytes[len(header.Bytes)-1] = 'D'
		again, err := h.At(0)
		require.NoError(t, err)
		require.Equal(t, []byte("Hello: world"), again.Bytes)
		require.Equal(t, "Hello", again.Key)
		require.Equal(t, "world", again.Value)
		require.Equal(t, "world", h.Value("hello"))

		_, err = h.At(1)
		require.ErrorIs(t, err, status.ErrIndexOutOfBounds)
		_, err = h.At(-1)
		require.ErrorIs(t, err, status.ErrIndexOutOfBounds)
	})

	t.Run("set", func(t *testing.T) {
		h := New()
		require.NoError(t, h.Add("A", "1"))
		require.NoError(t, h.Add("B", "2"))

		require.NoError(t, h.Set(0, "C", "3"))
		header, err := h.At(0)
		require.NoError(t, err)
		require.Equal(t, "C", header.Key)
		require.Equal(t, "3", header.Value)
		require.Equal(t, []byte("C: 3"), header.Bytes)

		require.ErrorIs(t, h.Set(2, "D", "4"), status.ErrIndexOutOfBounds)
		require.ErrorIs(t, h.Set(1, "D ", "4"), status.ErrSpaceBeforeColon)
		require.Equal(t, "2", h.Value("B"))
	})

	t.Run("iter", func(t *testing.T) {
		h := New()
		want := make([][2]string, 0, 10)
		for range 10 {
			key, value := uniuri.New(), uniuri.NewLen(30)
			want = append(want, [2]string{key, value})
			require.NoError(t, h.Add(key, value))
		}

		var got [][2]string
		for key, value := range h.Iter() {
			got = append(got, [2]string{key, value})
		}

		require.Equal(t, want, got)
	})

	t.Run("copies don't share memory", func(t *testing.T) {
		h := New()
		require.NoError(t, h.Add("Hello", "world"))
		copied, err := h.At(0)
		require.NoError(t, err)

		h.Expose()[0].Bytes[0] = 'J'
		require.Equal(t, "Hello", copied.Key)
		require.Equal(t, "world", copied.Value)

		clone := h.Clone()
		h.Expose()[0].Bytes[len("Hello: ")] = 'W'
		require.Equal(t, "world", clone.Value("jello"))
	})

	t.Run("clone", func(t *testing.T) {
		h := New()
		require.NoError(t, h.Add("A", "1"))
		clone := h.Clone()
		require.NoError(t, h.Set(0, "B", "2"))
		require.Equal(t, "1", clone.Value("A"))
		require.False(t, clone.Has("B"))
	})

	t.Run("from map", func(t *testing.T) {
		h, err := NewFromMap(map[string][]string{
			"Accept": {"a", "b"},
		})
		require.NoError(t, err)
		require.Equal(t, []string{"a", "b"}, h.Values("accept"))
	})

	t.Run("clear", func(t *testing.T) {
		h := New()
		require.NoError(t, h.Add("A", "1"))
		h.Clear()
		require.Zero(t, h.Len())
	})
}
