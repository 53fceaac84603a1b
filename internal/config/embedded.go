package config

// EmbeddedTMDBKey is injected at build time via ldflags and serves as the
// default API key. Environment variables and the config file override it.
//
// Build with:
//
//	go build -ldflags "-X 'github.com/reelpick/reelpick/internal/config.EmbeddedTMDBKey=xxx'"
var EmbeddedTMDBKey string
