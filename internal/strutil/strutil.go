package strutil

import (
	"strings"
	"unicode/utf8"
)

// LStripWS returns the slice without leading spaces and tabs.
func LStripWS(b []byte) []byte {
	for i, c := range b {
		switch c {
		case ' ', '\t':
		default:
			return b[i:]
		}
	}

	return b[:0]
}

// InvalidUTF8 returns the offset of the first byte not forming a valid UTF-8 sequence,
// or -1 if there's none.
func InvalidUTF8(b []byte) int {
	for offset := 0; offset < len(b); {
		r, size := utf8.DecodeRune(b[offset:])
		if r == utf8.RuneError && size <= 1 {
			return offset
		}

		offset += size
	}

	return -1
}

// Tokens splits a comma-separated list, trimming the tokens and skipping empty ones.
func Tokens(list string) []string {
	var tokens []string

	for len(list) > 0 {
		var token string
		comma := strings.IndexByte(list, ',')
		if comma == -1 {
			token, list = list, ""
		} else {
			token, list = list[:comma], list[comma+1:]
		}

		token = strings.Trim(token, " \t")
		if len(token) == 0 {
			continue
		}

		tokens = append(tokens, token)
	}

	return tokens
}
