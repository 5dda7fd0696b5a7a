package middleware

import (
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"

	"luxhome/shared"
	"luxhome/shared/cache"
	"luxhome/shared/constant"
	"luxhome/transport/http/response"

	"github.com/rs/zerolog/log"
)

const cacheKeyRateLimit = "limiter"

// RateLimit counts requests per client in a fixed window stored in redis. Failing to
// reach redis lets the request through.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	limit := a.config.App.RateLimiter.MaxRequests
	window := a.config.App.RateLimiter.WindowSeconds

	return func(next http.Handler) http.Handler {
		if !a.config.App.RateLimiter.Enable {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := shared.BuildCacheKey(cacheKeyRateLimit, clientIP(r), userAgent(r))

			count := 0

			err := a.cache.Get(r.Context(), key, &count)
			if err != nil && !errors.Is(err, cache.Nil) {
				log.Warn().Err(err).Msg("rate limiter unavailable")
				next.ServeHTTP(w, r)

				return
			}

			count++

			if count > limit {
				response.WithRequestLimitExceeded(w)

				return
			}

			if err = a.cache.Save(r.Context(), key, count, window); err != nil {
				log.Warn().Err(err).Msg("rate limiter unavailable")
			}

			header := w.Header()
			header.Set(constant.RequestHeaderRateLimit, strconv.Itoa(limit))
			header.Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(limit-count))
			header.Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(window))

			next.ServeHTTP(w, r)
		})
	}
}

func userAgent(r *http.Request) string {
	if ua := r.Header.Get(constant.RequestHeaderUserAgent); ua != "" {
		return ua
	}

	return "unknown"
}

// clientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then the peer address.
func clientIP(r *http.Request) string {
	if hop, _, _ := strings.Cut(r.Header.Get(constant.RequestHeaderForwardedFor), ","); strings.TrimSpace(hop) != "" {
		return strings.TrimSpace(hop)
	}

	if ip := strings.TrimSpace(r.Header.Get(constant.RequestHeaderRealIP)); ip != "" {
		return ip
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return host
	}

	return r.RemoteAddr
}
