package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/df07/go-wavefront-pathtracer/pkg/renderer"
	"github.com/df07/go-wavefront-pathtracer/pkg/scene"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene          string `json:"scene"`
	Width          int    `json:"width"`          // 0 = scene default
	Height         int    `json:"height"`         // 0 = scene default
	Iterations     int    `json:"iterations"`     // 0 = scene default
	MaxDepth       int    `json:"maxDepth"`       // 0 = scene default
	UpdateInterval int    `json:"updateInterval"` // Send an image every N iterations
}

// ProgressUpdate is sent to the client after each progressive update
type ProgressUpdate struct {
	Iteration       int    `json:"iteration"`
	TotalIterations int    `json:"totalIterations"`
	ImageData       string `json:"imageData"` // Base64 encoded PNG
	RaysTraced      int    `json:"raysTraced"`
	Bounces         int    `json:"bounces"`
	IsComplete      bool   `json:"isComplete"`
	ElapsedMs       int64  `json:"elapsedMs"`
}

// Event is the envelope for all messages sent over the websocket
type Event struct {
	Type string          `json:"type"` // "console", "progress", "error"
	Data json.RawMessage `json:"data"`
}

// handleRenderWS streams a progressive render over a websocket. The
// client sends one RenderRequest; the server replies with console and
// progress events until the render completes or the socket closes.
func (s *Server) handleRenderWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	var req RenderRequest
	if err := conn.ReadJSON(&req); err != nil {
		sendEvent(conn, "error", map[string]string{"message": "invalid request: " + err.Error()})
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// Cancel the render when the client closes the socket
	go func() {
		for {
			if _, _, err := conn.NextReader(); err != nil {
				cancel()
				return
			}
		}
	}()

	if err := s.streamRender(ctx, conn, req); err != nil {
		sendEvent(conn, "error", map[string]string{"message": err.Error()})
	}
}

func (s *Server) streamRender(ctx context.Context, conn *websocket.Conn, req RenderRequest) error {
	sc, err := scene.NewScene(req.Scene)
	if err != nil {
		return err
	}
	applyRequestOverrides(sc, req)
	if err := sc.Validate(); err != nil {
		return err
	}

	config := sc.RenderConfig()
	if req.Iterations > 0 {
		config.Iterations = req.Iterations
	}
	if req.MaxDepth > 0 {
		config.MaxDepth = req.MaxDepth
	}

	consoleChan := make(chan ConsoleMessage, 64)
	logger := NewWebLogger(consoleChan)
	r := renderer.NewRenderer(sc, config, logger)

	startTime := time.Now()
	resultChan, errChan := r.RenderProgressive(ctx, renderer.RenderOptions{
		UpdateInterval: req.UpdateInterval,
	})

	for {
		select {
		case msg := <-consoleChan:
			if err := sendEvent(conn, "console", msg); err != nil {
				return err
			}
		case result, ok := <-resultChan:
			if !ok {
				// Drain any remaining console output, then report errors
				drainConsole(conn, consoleChan)
				if err := <-errChan; err != nil {
					return fmt.Errorf("render failed: %w", err)
				}
				return nil
			}
			imageData, err := encodeImageBase64(result.Image)
			if err != nil {
				return fmt.Errorf("encoding image: %w", err)
			}
			update := ProgressUpdate{
				Iteration:       result.Iteration,
				TotalIterations: config.Iterations,
				ImageData:       imageData,
				RaysTraced:      result.Stats.RaysTraced,
				Bounces:         result.Stats.Bounces,
				IsComplete:      result.IsLast,
				ElapsedMs:       time.Since(startTime).Milliseconds(),
			}
			if err := sendEvent(conn, "progress", update); err != nil {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// applyRequestOverrides rebuilds the scene camera if the client asked
// for a different resolution than the scene default.
func applyRequestOverrides(sc *scene.Scene, req RenderRequest) {
	if req.Width <= 0 && req.Height <= 0 {
		return
	}
	camConfig := sc.Camera.Config()
	if req.Width > 0 {
		camConfig.Width = req.Width
	}
	if req.Height > 0 {
		camConfig.Height = req.Height
	}
	sc.Camera = renderer.NewCamera(camConfig)
}

func sendEvent(conn *websocket.Conn, eventType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding %s event: %w", eventType, err)
	}
	return conn.WriteJSON(Event{Type: eventType, Data: data})
}

func drainConsole(conn *websocket.Conn, consoleChan <-chan ConsoleMessage) {
	for {
		select {
		case msg := <-consoleChan:
			sendEvent(conn, "console", msg)
		default:
			return
		}
	}
}

// encodeImageBase64 encodes an image as a base64 PNG for JSON transport
func encodeImageBase64(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
