package server

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/patrickmn/go-cache"

	"github.com/pdfpress/pdfpress/pkg/compress"
	"github.com/pdfpress/pdfpress/pkg/util/console"
)

// Compressed results are remembered for a while so a frontend retrying the
// same document doesn't cost another Ghostscript run.
const (
	cacheTTL     = 15 * time.Minute
	cacheCleanup = 30 * time.Minute
)

type Server struct {
	port       int
	compressor *compress.Compressor
	results    *cache.Cache
}

func NewServer(port int, compressor *compress.Compressor) *Server {
	return &Server{
		port:       port,
		compressor: compressor,
		results:    cache.New(cacheTTL, cacheCleanup),
	}
}

func (s *Server) Start() error {
	console.Infof("Server running on 0.0.0.0:%d", s.port)

	loggedRouter := handlers.LoggingHandler(os.Stdout, s.Handler())

	return http.ListenAndServe(fmt.Sprintf(":%d", s.port), loggedRouter)
}

func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()

	router.Path("/").
		Methods(http.MethodGet).
		HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("pdfpress backend is running"))
		})
	router.Path("/ping").
		Methods(http.MethodGet).
		HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("pong"))
		})
	router.Path("/compress-pdf").
		Methods(http.MethodPost).
		HandlerFunc(s.CompressPDF)

	return router
}
