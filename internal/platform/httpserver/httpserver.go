package httpserver

import (
	"net/http"
	"time"

	"casework/internal/platform/config"
)

const readHeaderTimeout = 5 * time.Second

// New builds the API server. Idle connections live twice as long as a write.
func New(cfg config.Server, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       2 * cfg.WriteTimeout,
	}
}
