package src

import (
	"errors"
	"fmt"
	"strings"
)

type RequestLine struct {
	method  string
	URI     string
	version string
}

const GET = "GET"

var (
	ErrMalformedRequestLine = errors.New("malformed request line")
	ErrInvalidTarget        = errors.New("invalid request target")
)

// parseRequestLine takes the first three space separated tokens of line.
// Tokens past the third are ignored.
func parseRequestLine(line string) (RequestLine, error) {
	split_line := strings.Split(line, " ")
	if len(split_line) < 3 {
		return RequestLine{}, fmt.Errorf("%w: %q has %d tokens, want 3", ErrMalformedRequestLine, line, len(split_line))
	}

	request := RequestLine{
		method:  split_line[0],
		URI:     split_line[1],
		version: split_line[2],
	}

	if !strings.HasPrefix(request.URI, "/") {
		return RequestLine{}, fmt.Errorf("%w: %q does not begin with \"/\"", ErrInvalidTarget, request.URI)
	}

	// the target is echoed into Location, so no control bytes may reach it
	if i := strings.IndexFunc(request.URI, isControl); i >= 0 {
		return RequestLine{}, fmt.Errorf("%w: control byte %#x in %q", ErrInvalidTarget, request.URI[i], request.URI)
	}

	return request, nil
}

func isControl(r rune) bool {
	return r < 0x20 || r == 0x7f
}
