// Package server exposes the renderer over HTTP: a JSON API for scene
// discovery and a websocket endpoint that streams progressive render
// passes to the browser.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/seridescent/raytracing/log"
	"github.com/seridescent/raytracing/pkg/scene"
)

var logger = log.New("web")

// Server handles web requests for the raytracer
type Server struct {
	addr     string
	mux      *http.ServeMux
	upgrader websocket.Upgrader
}

// NewServer creates a web server listening on addr
func NewServer(addr string) *Server {
	s := &Server{
		addr: addr,
		mux:  http.NewServeMux(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The preview UI may be served from a different origin
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}

	s.mux.HandleFunc("/api/health", s.handleHealth)
	s.mux.HandleFunc("/api/scenes", s.handleScenes)
	s.mux.HandleFunc("/ws/render", s.handleRender)
	return s
}

// Handler returns the server's route handler, for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start starts the web server and blocks until it fails
func (s *Server) Start() error {
	logger.Noticef("listening on %s", s.addr)
	return http.ListenAndServe(s.addr, s.mux)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// SceneInfo describes a built-in scene in API responses
type SceneInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	infos := scene.List()
	payload := make([]SceneInfo, 0, len(infos))
	for _, info := range infos {
		payload = append(payload, SceneInfo{Name: info.Name, Description: info.Description})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}
