package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/klauspost/compress/gzhttp"
	"github.com/pairboard/pairboard/pkg/api/handlers"
	"github.com/pairboard/pairboard/pkg/api/middleware"
	"github.com/pairboard/pairboard/pkg/log"
	"github.com/pairboard/pairboard/pkg/server"
	"github.com/pairboard/pairboard/web"
)

type APIServer struct {
	server *http.Server
	tls    *TLSConfig
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

type NewAPIServerOptions struct {
	Addr     string
	TLS      *TLSConfig
	WSServer *server.Server
}

// NewAPIServer creates a new http.Server serving the widget assets, the JSON
// APIs, and the WebSocket endpoint.
func NewAPIServer(opts NewAPIServerOptions) *APIServer {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", handlers.HandleHealth()).Methods(http.MethodGet)
	r.HandleFunc("/api/catalog", handlers.HandleCatalog()).Methods(http.MethodGet)
	r.HandleFunc("/api/layouts", handlers.HandleLayouts()).Methods(http.MethodGet)
	r.HandleFunc("/ws", opts.WSServer.HandleWS())
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(web.StaticFS())))
	r.PathPrefix("/").HandlerFunc(handlers.HandleIndex()).Methods(http.MethodGet)

	// The WebSocket upgrade must not pass through the gzip wrapper.
	gzipped := gzhttp.GzipHandler(r)
	handler := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path == "/ws" {
			r.ServeHTTP(w, req)
			return
		}
		gzipped.ServeHTTP(w, req)
	})

	requestLogger := middleware.NewRequestLogger()
	httpServer := &http.Server{
		Addr:              opts.Addr,
		Handler:           requestLogger(handler),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return &APIServer{
		server: httpServer,
		tls:    opts.TLS,
	}
}

// Start starts the APIServer
func (s *APIServer) Start() {
	var listenAndServe func() error
	if s.tls != nil {
		log.Info("Server listening on %s with TLS", s.server.Addr)
		listenAndServe = func() error {
			return s.server.ListenAndServeTLS(s.tls.CertFile, s.tls.KeyFile)
		}
	} else {
		log.Info("Server listening on %s", s.server.Addr)
		listenAndServe = s.server.ListenAndServe
	}
	if err := listenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("Server closed")
			return
		}
		log.Error("Server error: %v", err)
	}
}

// Stop stops the APIServer
func (s *APIServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
