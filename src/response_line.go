package src

import (
	"errors"
	"fmt"
)

const HTTP_VERSION = "HTTP/1.1"

const (
	StatusOK               = 200
	StatusMovedPermanently = 301
	StatusNotFound         = 404
	StatusMethodNotAllowed = 405
)

var reasonPhrases = map[int]string{
	StatusOK:               "OK",
	StatusMovedPermanently: "Moved Permanently",
	StatusNotFound:         "Not Found",
	StatusMethodNotAllowed: "Method Not Allowed",
}

var ErrUnknownStatus = errors.New("unknown status code")

type ResponseLine struct {
	version     string
	status_code int
	message     string
}

func createResponseLine(status_code int) (ResponseLine, error) {
	message, ok := reasonPhrases[status_code]
	if !ok {
		return ResponseLine{}, fmt.Errorf("%w: %d", ErrUnknownStatus, status_code)
	}

	return ResponseLine{
		version:     HTTP_VERSION,
		status_code: status_code,
		message:     message,
	}, nil
}

func (rl ResponseLine) serialize() string {
	return fmt.Sprintf("%s %d %s", rl.version, rl.status_code, rl.message)
}
