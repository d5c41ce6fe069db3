package middleware

import (
	"net/http"
	"time"

	"github.com/rejdeboer/tagpro-telemetry/internal/logger"
	"github.com/rs/zerolog/hlog"
)

func WithLogging(next http.Handler) http.Handler {
	l := logger.Get()
	hlogHandler := hlog.NewHandler(l)

	accessHandler := hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Stringer("url", r.URL).
			Int64("request_size", r.ContentLength).
			Int("status_code", status).
			Int("size", size).
			Dur("elapsed_ms", duration).
			Msg("")
	})

	userAgentHandler := hlog.UserAgentHandler("user_agent")
	remoteAddrHandler := hlog.RemoteAddrHandler("ip")
	requestIdHandler := hlog.RequestIDHandler("req_id", "Request-Id")

	return hlogHandler(accessHandler(userAgentHandler(remoteAddrHandler(requestIdHandler(next)))))
}
