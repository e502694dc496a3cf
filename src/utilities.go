package src

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

func BindPort(port int) (net.Listener, error) {
	bind_addr := fmt.Sprintf("127.0.0.1:%d", port)
	return net.Listen("tcp", bind_addr)
}

func DisplayHelp() {
	color.New(color.Bold).Println("Usage: ./server [help|--port=PORT --loc=LOCATION --base=URL]")
	fmt.Printf("\tWhere PORT is a valid TCP port to serve on, %d by default.\n", DEFAULT_PORT)
	fmt.Printf("\tWhere LOCATION is the document root to serve, %q by default.\n", DEFAULT_ROOT)
	fmt.Println("\tWhere URL prefixes directory redirects, http://127.0.0.1:PORT by default.")
}

func ExtractArgs(args []string) (Config, error) {
	cfg := DefaultConfig()
	base_given := false

	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "--port="):
			right_side := strings.SplitN(arg, "=", 2)
			suggested_port, err := strconv.Atoi(right_side[1])
			if err != nil {
				return cfg, fmt.Errorf("provided port %q illegal", right_side[1])
			}

			if suggested_port < 1000 || suggested_port > 40000 {
				return cfg, fmt.Errorf("provided port %s not in valid range, requires 1000<PORT<40000", right_side[1])
			}

			cfg.Port = suggested_port

		case strings.HasPrefix(arg, "--loc="):
			right_side := strings.SplitN(arg, "=", 2)
			if right_side[1] == "" {
				return cfg, errors.New("provided location is empty")
			}

			info, err := os.Stat(right_side[1])
			if err != nil {
				return cfg, fmt.Errorf("while looking for path %s: %w", right_side[1], err)
			}
			if !info.IsDir() {
				return cfg, fmt.Errorf("provided location %s is not a directory", right_side[1])
			}

			cfg.Root = right_side[1]

		case strings.HasPrefix(arg, "--base="):
			right_side := strings.SplitN(arg, "=", 2)
			if !strings.HasPrefix(right_side[1], "http://") && !strings.HasPrefix(right_side[1], "https://") {
				return cfg, fmt.Errorf("provided base %q is not an http(s) URL", right_side[1])
			}

			cfg.BaseURL = strings.TrimRight(right_side[1], "/")
			base_given = true

		default:
			return cfg, fmt.Errorf("unknown argument %q", arg)
		}
	}

	if !base_given {
		cfg.BaseURL = baseURLForPort(cfg.Port)
	}

	return cfg, nil
}
