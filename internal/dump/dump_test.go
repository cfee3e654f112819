package dump

import (
	"testing"

	"github.com/indigo-web/h1req/http/headers"
	"github.com/stretchr/testify/require"
)

func TestRequest(t *testing.T) {
	t.Run("with headers", func(t *testing.T) {
		hdrs := headers.New()
		require.NoError(t, hdrs.Add("Host", "example.com"))
		require.NoError(t, hdrs.Add("Content-Length", "4"))

		got := Request("POST / HTTP/1.1", hdrs, []byte("BODY"))
		require.Equal(t, "POST / HTTP/1.1\r\nHost: example.com\r\nContent-Length: 4\r\n\r\nBODY", string(got))
	})

	t.Run("no headers", func(t *testing.T) {
		got := Request("GET / HTTP/1.1", headers.New(), nil)
		require.Equal(t, "GET / HTTP/1.1\r\n\r\n", string(got))
	})

	t.Run("result outlives the buffer", func(t *testing.T) {
		first := Request("GET /a HTTP/1.1", headers.New(), nil)
		_ = Request("GET /bbbbbbbbbb HTTP/1.1", headers.New(), nil)
		require.Equal(t, "GET /a HTTP/1.1\r\n\r\n", string(first))
	})
}
