package src

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const MAX_HEAD_SIZE = 64 * 1024

var errHeadTooLarge = errors.New("request head too large")

// ConnectionHandler answers exactly one request per connection.
type ConnectionHandler struct {
	cfg    Config
	fsys   FileSystem
	logger zerolog.Logger
}

func NewConnectionHandler(cfg Config, fsys FileSystem, logger zerolog.Logger) *ConnectionHandler {
	return &ConnectionHandler{cfg: cfg, fsys: fsys, logger: logger}
}

func AcceptAndHandleConnections(listener net.Listener, handler *ConnectionHandler) error {
	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			handler.logger.Warn().Err(err).Msg("accept failed")
			continue
		}

		go handler.Handle(conn)
	}
}

func (handler *ConnectionHandler) Handle(conn net.Conn) {
	defer conn.Close()

	remote := conn.RemoteAddr().String()
	logger := handler.logger.With().Str("remote", remote).Logger()

	if handler.cfg.ReadTimeout > 0 {
		if err := conn.SetReadDeadline(time.Now().Add(handler.cfg.ReadTimeout)); err != nil {
			logger.Debug().Err(err).Msg("could not set read deadline")
		}
	}

	raw, err := readRequestHead(conn)
	if err != nil {
		logger.Warn().Err(err).Msg("could not read request")
		return
	}

	request_line, _, _ := strings.Cut(raw, CRLF)

	response, err := Respond(raw, handler.cfg, handler.fsys)
	if err != nil {
		logger.Warn().Err(err).Msg("dropping malformed request")
		return
	}

	if _, err := io.WriteString(conn, response.Serialize()); err != nil {
		logger.Error().Err(err).Msg("could not write response")
		return
	}

	logger.Info().
		Str("request", request_line).
		Int("status", response.StatusCode()).
		Int("bytes", len(response.Body())).
		Msg("served")
}

// readRequestHead reads up to and including the blank line that ends the
// header block. Anything after it is left unread.
func readRequestHead(r io.Reader) (string, error) {
	reader := bufio.NewReader(io.LimitReader(r, MAX_HEAD_SIZE))

	var head strings.Builder
	for {
		line, err := reader.ReadString('\n')
		head.WriteString(line)
		if line == CRLF {
			return head.String(), nil
		}
		if err != nil {
			if head.Len() >= MAX_HEAD_SIZE {
				return "", errHeadTooLarge
			}
			if err == io.EOF && head.Len() > 0 {
				return head.String(), nil
			}
			return "", fmt.Errorf("reading request head: %w", err)
		}
	}
}
