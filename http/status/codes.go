package status

type (
	Code   uint16
	Status string
)

// Codes the parser may attach to its errors. A transport answering on behalf of a rejected
// request is expected to respond with the error's code.
const (
	BadRequest            Code = 400 // RFC 9110, 15.5.1
	RequestEntityTooLarge Code = 413 // RFC 9110, 15.5.14
	HeaderFieldsTooLarge  Code = 431 // RFC 6585, 5
	InternalServerError   Code = 500 // RFC 9110, 15.6.1
)

// Text returns a text for the HTTP status code. It returns the empty
// string if the code is unknown.
func Text(code Code) Status {
	switch code {
	case BadRequest:
		return "Bad Request"
	case RequestEntityTooLarge:
		return "Request Entity Too Large"
	case HeaderFieldsTooLarge:
		return "Request Header Fields Too Large"
	case InternalServerError:
		return "Internal Server Error"
	default:
		return ""
	}
}
