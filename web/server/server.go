package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/df07/go-wavefront-pathtracer/pkg/scene"
)

// Server handles web requests for the path tracer
type Server struct {
	port     int
	upgrader websocket.Upgrader
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{
		port: port,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // In production, implement proper origin checking
			},
		},
	}
}

// Handler returns the server's HTTP handler
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir("static/")))
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/ws/render", s.handleRenderWS)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// SceneInfo describes an available scene to the client
type SceneInfo struct {
	Name       string `json:"name"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Iterations int    `json:"iterations"`
	MaxDepth   int    `json:"maxDepth"`
}

// handleScenes lists the available scenes and their default settings
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	var infos []SceneInfo
	for _, name := range scene.SceneNames() {
		sc, err := scene.NewScene(name)
		if err != nil {
			continue
		}
		camConfig := sc.Camera.Config()
		infos = append(infos, SceneInfo{
			Name:       name,
			Width:      camConfig.Width,
			Height:     camConfig.Height,
			Iterations: sc.Iterations,
			MaxDepth:   sc.MaxDepth,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(infos)
}
