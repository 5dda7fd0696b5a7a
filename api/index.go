package handler

import (
	"net/http"
	"sync"

	"luxhome/config"
	"luxhome/di"
	"luxhome/shared/logger"
	httpTransport "luxhome/transport/http"
)

var (
	server *httpTransport.HTTP
	once   sync.Once
)

// Handler serves the API as a single serverless function.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.Init(cfg)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
