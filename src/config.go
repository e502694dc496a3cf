package src

import (
	"fmt"
	"time"
)

const (
	DEFAULT_PORT = 8080
	DEFAULT_ROOT = "./www"
)

// Config is shared read-only by every request.
type Config struct {
	Port int
	// Root is the document root every request target is resolved under.
	Root string
	// BaseURL prefixes the Location of directory redirects. No trailing slash.
	BaseURL     string
	ReadTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		Port:        DEFAULT_PORT,
		Root:        DEFAULT_ROOT,
		BaseURL:     baseURLForPort(DEFAULT_PORT),
		ReadTimeout: 10 * time.Second,
	}
}

func baseURLForPort(port int) string {
	return fmt.Sprintf("http://127.0.0.1:%d", port)
}
