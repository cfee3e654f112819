package config

import "time"

type (
	HeadersNumber struct {
		Default, Maximal int
	}

	HeadersSpace struct {
		Default, Maximal int
	}
)

type (
	Headers struct {
		// Number is responsible for headers set size.
		// Default value is an initial capacity of the headers set.
		// Maximal value is maximum number of headers allowed to be presented
		Number HeadersNumber
		// Space limits the amount of memory occupied by the request line and headers.
		// Default value is an initial capacity of the request buffer.
		// Maximal value is the size the buffer may reach before the end of headers is found
		Space HeadersSpace
	}

	Body struct {
		// MaxSize is the maximal Content-Length value accepted.
		MaxSize uint64
	}

	NET struct {
		// ReadBufferSize is a size of buffer in bytes which will be used to read from
		// the stream
		ReadBufferSize int
		// ReadTimeout limits every single read from streams supporting deadlines, so
		// stalled clients don't hold the reader forever.
		ReadTimeout time.Duration
	}
)

// Config holds restrictions and pre-allocations of the request parser and its transport.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	Headers Headers
	Body    Body
	NET     NET
}

// Default returns default config. Those are initially well-balanced, however maximal defaults
// are pretty permitting.
func Default() *Config {
	return &Config{
		Headers: Headers{
			Number: HeadersNumber{
				Default: 10,
				Maximal: 100,
			},
			Space: HeadersSpace{
				Default: 1 * 1024,  // 1kb for headers must be fairly enough in most cases.
				Maximal: 64 * 1024, // However, there also might be extremely long cookies.
			},
		},
		Body: Body{
			MaxSize: 512 * 1024 * 1024, // 512 megabytes
		},
		NET: NET{
			ReadBufferSize: 4 * 1024,
			ReadTimeout:    90 * time.Second,
		},
	}
}
