package src

import (
	"net/url"
	"path/filepath"
	"strings"
)

// Request is a parsed request head. It is built once per request by Parse and
// never modified afterwards.
type Request struct {
	line    RequestLine
	headers map[string]string

	resolvedPath   string
	normalizedPath string
}

// Parse splits a raw request into its request line and header block and
// resolves the request target against cfg.Root.
//
// Header lines without a ':' are skipped. A repeated header name keeps the
// last value. Only a malformed request line is an error.
func Parse(raw string, cfg Config) (*Request, error) {
	lines := strings.Split(raw, CRLF)

	line, err := parseRequestLine(lines[0])
	if err != nil {
		return nil, err
	}

	req := &Request{
		line:    line,
		headers: parseHeaders(lines[1:]),
	}
	req.resolvedPath, req.normalizedPath = resolveTarget(cfg.Root, line.URI)

	return req, nil
}

func parseHeaders(lines []string) map[string]string {
	headers := make(map[string]string)
	for _, line := range lines {
		if line == "" {
			break
		}

		name, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		headers[name] = value
	}
	return headers
}

// resolveTarget joins root and the decoded target path. An undecodable
// target resolves to nothing.
func resolveTarget(root, target string) (resolved, normalized string) {
	target, _, _ = strings.Cut(target, "?")

	decoded, err := url.PathUnescape(target)
	if err != nil {
		return "", ""
	}

	resolved = root + decoded
	return resolved, filepath.Clean(resolved)
}

func (req *Request) Method() string  { return req.line.method }
func (req *Request) Path() string    { return req.line.URI }
func (req *Request) Version() string { return req.line.version }

// Header returns the raw value of the named header, leading whitespace included.
func (req *Request) Header(name string) (string, bool) {
	value, ok := req.headers[name]
	return value, ok
}

// Headers returns a copy of the header block.
func (req *Request) Headers() map[string]string {
	headers := make(map[string]string, len(req.headers))
	for name, value := range req.headers {
		headers[name] = value
	}
	return headers
}

func (req *Request) ResolvedPath() string   { return req.resolvedPath }
func (req *Request) NormalizedPath() string { return req.normalizedPath }

func (req *Request) String() string {
	return strings.Join([]string{req.line.method, req.line.URI, req.line.version}, " ")
}
