package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application-level configuration for the TUI client.
type Config struct {
	ServerURL string        // e.g. "http://localhost:5000"
	Timeout   time.Duration // 0 means no request timeout
}

// Load reads configuration from environment variables.
//
//	EMOTERM_SERVER   — emoterm server base URL (default: "http://localhost:5000")
//	EMOTERM_TIMEOUT  — request timeout in seconds (default: 0, disabled).
//	                   With no timeout a stalled request stays in flight
//	                   forever and the result area is never touched.
func Load() (Config, error) {
	server := os.Getenv("EMOTERM_SERVER")
	if server == "" {
		server = "http://localhost:5000"
	}
	parsed, err := url.Parse(server)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return Config{}, fmt.Errorf("invalid EMOTERM_SERVER: must be an absolute URL")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return Config{}, fmt.Errorf("invalid EMOTERM_SERVER: scheme must be http or https")
	}
	server = strings.TrimRight(parsed.String(), "/")

	var timeout time.Duration
	if raw := os.Getenv("EMOTERM_TIMEOUT"); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs < 0 {
			return Config{}, fmt.Errorf("invalid EMOTERM_TIMEOUT: must be a non-negative integer (seconds)")
		}
		timeout = time.Duration(secs) * time.Second
	}

	return Config{
		ServerURL: server,
		Timeout:   timeout,
	}, nil
}
