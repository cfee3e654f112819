package main

import (
	"github.com/indigo-web/h1req/http/parser/http1"
)

type summary struct {
	RequestLine   string          `json:"request_line"`
	Headers       []headerSummary `json:"headers"`
	ContentLength *uint64         `json:"content_length,omitempty"`
	Chunked       string          `json:"chunked"`
	BodyLength    int             `json:"body_length"`
	BodyComplete  bool            `json:"body_complete"`
}

type headerSummary struct {
	Key     string   `json:"key"`
	Value   string   `json:"value"`
	Decoded string   `json:"decoded,omitempty"`
	Errors  []string `json:"encoded_word_errors,omitempty"`
}

func summarize(request *http1.Request) summary {
	s := summary{
		RequestLine:  request.RequestLine,
		Headers:      make([]headerSummary, 0, request.Headers.Len()),
		Chunked:      request.Chunked().String(),
		BodyLength:   len(request.Body()),
		BodyComplete: request.BodyComplete(),
	}

	if length, ok := request.ContentLength(); ok {
		s.ContentLength = &length
	}

	for _, h := range request.Headers.Expose() {
		hs := headerSummary{
			Key:   h.Key,
			Value: h.Value,
		}

		if words := h.Words(); len(words) > 0 {
			hs.Decoded = h.Decoded()
			for _, word := range words {
				if word.Err != nil {
					hs.Errors = append(hs.Errors, string(word.Raw)+": "+word.Err.Error())
				}
			}
		}

		s.Headers = append(s.Headers, hs)
	}

	return s
}
