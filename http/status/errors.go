package status

import (
	"strconv"
)

type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	ErrBadRequest                = NewError(BadRequest, "bad request")
	ErrNonUTF8                   = NewError(BadRequest, "bytes are not valid UTF-8")
	ErrNonASCII                  = NewError(BadRequest, "non-ASCII byte in header")
	ErrSpaceBeforeColon          = NewError(BadRequest, "whitespace between header field-name and colon")
	ErrEmptyHeaderKey            = NewError(BadRequest, "header key is empty")
	ErrLineBreakInHeader         = NewError(BadRequest, "line break inside a header")
	ErrDuplicateContentLength    = NewError(BadRequest, "duplicate Content-Length header")
	ErrBadContentLength          = NewError(BadRequest, "invalid Content-Length value")
	ErrChunkedNotLast            = NewError(BadRequest, "chunked must be the final transfer coding")
	ErrDuplicateTransferEncoding = NewError(BadRequest, "duplicate chunked Transfer-Encoding header")
	ErrAmbiguousFraming          = NewError(BadRequest, "both Content-Length and chunked Transfer-Encoding are set")
	ErrBodyOverflow              = NewError(BadRequest, "body exceeds the declared Content-Length")
	ErrBodyTooLarge              = NewError(RequestEntityTooLarge, "request body is too large")
	ErrHeaderFieldsTooLarge      = NewError(HeaderFieldsTooLarge, "too large headers section")
	ErrTooManyHeaders            = NewError(HeaderFieldsTooLarge, "too many headers")
	ErrIndexOutOfBounds          = NewError(InternalServerError, "header index out of bounds")
	ErrHeadersIncomplete         = NewError(InternalServerError, "headers parsed before their end was found")
)

// ParseError details one of the errors above with the position of the failure and,
// optionally, the error which caused it. errors.Is matches both of them.
type ParseError struct {
	Err    error
	Cause  error
	Offset int
}

// Wrap returns a ParseError. Negative offset means the position is unknown.
func Wrap(err error, offset int, cause error) error {
	return ParseError{
		Err:    err,
		Cause:  cause,
		Offset: offset,
	}
}

func (p ParseError) Error() string {
	msg := p.Err.Error()
	if p.Offset >= 0 {
		msg += " at byte " + strconv.Itoa(p.Offset)
	}

	if p.Cause != nil {
		msg += ": " + p.Cause.Error()
	}

	return msg
}

func (p ParseError) Unwrap() []error {
	if p.Cause == nil {
		return []error{p.Err}
	}

	return []error{p.Err, p.Cause}
}

// CodeOf returns the status code the error must be answered with. Errors not
// produced by the parser are considered internal.
func CodeOf(err error) Code {
	for err != nil {
		switch e := err.(type) {
		case HTTPError:
			return e.Code
		case ParseError:
			err = e.Err
		default:
			return InternalServerError
		}
	}

	return InternalServerError
}
