package transport

import (
	"errors"
	"io"

	"github.com/indigo-web/h1req/config"
	"github.com/indigo-web/h1req/http/parser/http1"
	"github.com/indigo-web/h1req/http/status"
	"github.com/sirupsen/logrus"
)

// Reader reads requests from a stream, feeding whatever arrives into the request parser.
type Reader struct {
	client Client
	cfg    *config.Config
	log    *logrus.Entry
}

func NewReader(client Client, cfg *config.Config, log *logrus.Entry) *Reader {
	return &Reader{
		client: client,
		cfg:    cfg,
		log:    log,
	}
}

// Read returns the next request. It returns as soon as the headers are parsed and either
// the whole body has arrived or chunked transfer encoding was declared; in the latter case
// the chunks received so far are available via Body. A stream closed before any byte
// arrived results in io.EOF, closed in the middle of a request in io.ErrUnexpectedEOF.
func (r *Reader) Read() (*http1.Request, error) {
	request := http1.NewRequest(r.cfg)

	for {
		data, err := r.client.Read()
		if len(data) > 0 {
			if perr := request.Append(data); perr != nil {
				r.log.WithError(perr).
					WithField("code", status.CodeOf(perr)).
					Warn("rejecting the request")

				return nil, perr
			}

			r.log.WithFields(logrus.Fields{
				"chunk":    len(data),
				"received": len(request.Raw()),
				"headers":  request.HeadersEnd().String(),
			}).Debug("chunk received")
		}

		if request.HeadersCompleted() {
			if request.Chunked() != http1.ChunkedUnset || request.BodyComplete() {
				r.log.WithField("request", request.RequestLine).Debug("request received")
				return request, nil
			}

			if length, ok := request.ContentLength(); ok && uint64(len(request.Body())) > length {
				r.log.WithField("declared", length).Warn("body exceeds Content-Length")
				return nil, status.ErrBodyOverflow
			}
		}

		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			if len(request.Raw()) == 0 {
				return nil, io.EOF
			}

			return nil, io.ErrUnexpectedEOF
		default:
			return nil, err
		}
	}
}
