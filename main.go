package main

import (
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/yisrael-haber/go-static-responder/src"
)

func main() {

	if len(os.Args) > 1 && os.Args[1] == "help" {
		src.DisplayHelp()
		return
	}

	cfg, err := src.ExtractArgs(os.Args[1:])

	if err != nil {
		color.Red("Encountered error while reading arguments:\n\t%s", err.Error())
		os.Exit(1)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.DateTime}).
		With().Timestamp().Logger()

	logger.Info().Str("root", cfg.Root).Str("base", cfg.BaseURL).Msg("preparing to serve")
	logger.Info().Int("port", cfg.Port).Msg("binding to localhost")

	listener, err := src.BindPort(cfg.Port)
	if err != nil {
		color.Red("Encountered error while binding port %d:\n\t%s", cfg.Port, err.Error())
		os.Exit(1)
	}
	defer listener.Close()

	handler := src.NewConnectionHandler(cfg, src.OSFileSystem{}, logger)
	if err := src.AcceptAndHandleConnections(listener, handler); err != nil {
		logger.Error().Err(err).Msg("stopped accepting connections")
	}
}
