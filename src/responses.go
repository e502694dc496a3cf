package src

import (
	"path/filepath"
	"strconv"
	"strings"
)

const CRLF = "\r\n"

type Header struct {
	description string
	value       string
}

func NewHeader(name, value string) Header {
	return Header{description: name, value: value}
}

func (header Header) Name() string  { return header.description }
func (header Header) Value() string { return header.value }

func (header Header) serialize() string {
	return header.description + ": " + header.value
}

var contentTypes = map[string]string{
	".css":  "text/css",
	".html": "text/html",
}

// Response is a status line, an ordered header list and a body. Content-Length
// is not part of Headers; Serialize appends it.
type Response struct {
	line    ResponseLine
	headers []Header
	body    string
}

func NewResponse(code int, headers []Header, body string) (Response, error) {
	line, err := createResponseLine(code)
	if err != nil {
		return Response{}, err
	}

	return Response{
		line:    line,
		headers: append([]Header(nil), headers...),
		body:    body,
	}, nil
}

// Build renders a complete HTTP/1.1 response for code, headers and body.
func Build(code int, headers []Header, body string) (string, error) {
	response, err := NewResponse(code, headers, body)
	if err != nil {
		return "", err
	}
	return response.Serialize(), nil
}

func (response Response) Serialize() string {
	var b strings.Builder

	b.WriteString(response.line.serialize())
	b.WriteString(CRLF)
	for _, header := range response.headers {
		b.WriteString(header.serialize())
		b.WriteString(CRLF)
	}
	b.WriteString(NewHeader("Content-Length", strconv.Itoa(len(response.body))).serialize())
	b.WriteString(CRLF)
	b.WriteString(CRLF)
	b.WriteString(response.body)

	return b.String()
}

func (response Response) StatusCode() int { return response.line.status_code }
func (response Response) Reason() string  { return response.line.message }
func (response Response) Body() string    { return response.body }

// Header returns the first header with the given name. Content-Length is
// computed from the body.
func (response Response) Header(name string) (string, bool) {
	if name == "Content-Length" {
		return strconv.Itoa(len(response.body)), true
	}
	for _, header := range response.headers {
		if header.Name() == name {
			return header.Value(), true
		}
	}
	return "", false
}

// fixed builds a response for one of the known status codes.
func fixed(code int, headers []Header, body string) Response {
	return Response{
		line:    ResponseLine{version: HTTP_VERSION, status_code: code, message: reasonPhrases[code]},
		headers: headers,
		body:    body,
	}
}

// ServeFile reads name from fsys and answers 200 with its contents. Only
// .css and .html get a Content-Type.
func ServeFile(fsys FileSystem, name string) (Response, error) {
	content, err := fsys.ReadFile(name)
	if err != nil {
		return Response{}, err
	}

	var headers []Header
	if ct, ok := contentTypes[filepath.Ext(name)]; ok {
		headers = append(headers, NewHeader("Content-Type", ct))
	}

	return fixed(StatusOK, headers, string(content)), nil
}

func MovedPermanently(location string) Response {
	return fixed(StatusMovedPermanently, []Header{NewHeader("Location", location)}, "")
}

func NotFound() Response {
	return fixed(StatusNotFound, nil, "404 Not Found")
}

func MethodNotAllowed() Response {
	return fixed(StatusMethodNotAllowed, []Header{NewHeader("Allow", GET)}, "405 Method Not Allowed")
}
