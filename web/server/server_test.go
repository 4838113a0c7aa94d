package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestHandleHealth(t *testing.T) {
	s := NewServer(0)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)

	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Invalid JSON response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %q", body["status"])
	}
}

func TestHandleScenes(t *testing.T) {
	s := NewServer(0)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/scenes", nil)

	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var infos []SceneInfo
	if err := json.NewDecoder(rec.Body).Decode(&infos); err != nil {
		t.Fatalf("Invalid JSON response: %v", err)
	}
	if len(infos) == 0 {
		t.Fatal("Expected at least one scene")
	}
	for _, info := range infos {
		if info.Name == "" || info.Width <= 0 || info.Height <= 0 {
			t.Errorf("Invalid scene info: %+v", info)
		}
	}
}

func TestRenderWebsocket(t *testing.T) {
	s := NewServer(0)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/render"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Websocket dial failed: %v", err)
	}
	defer conn.Close()

	request := RenderRequest{
		Scene:      "cornell",
		Width:      8,
		Height:     8,
		Iterations: 2,
		MaxDepth:   3,
	}
	if err := conn.WriteJSON(request); err != nil {
		t.Fatalf("Sending request failed: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(30 * time.Second))

	var progressCount int
	var sawComplete bool
	for !sawComplete {
		var event Event
		if err := conn.ReadJSON(&event); err != nil {
			t.Fatalf("Reading event failed after %d progress updates: %v", progressCount, err)
		}

		switch event.Type {
		case "console":
			// Log output, ignore
		case "progress":
			var update ProgressUpdate
			if err := json.Unmarshal(event.Data, &update); err != nil {
				t.Fatalf("Invalid progress payload: %v", err)
			}
			progressCount++
			if update.ImageData == "" {
				t.Error("Progress update missing image data")
			}
			if update.TotalIterations != 2 {
				t.Errorf("Expected 2 total iterations, got %d", update.TotalIterations)
			}
			sawComplete = update.IsComplete
		case "error":
			t.Fatalf("Server reported error: %s", event.Data)
		default:
			t.Fatalf("Unknown event type %q", event.Type)
		}
	}

	if progressCount != 2 {
		t.Errorf("Expected 2 progress updates, got %d", progressCount)
	}
}

func TestRenderWebsocket_UnknownScene(t *testing.T) {
	s := NewServer(0)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/render"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Websocket dial failed: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(RenderRequest{Scene: "nonexistent"}); err != nil {
		t.Fatalf("Sending request failed: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(10 * time.Second))
	for {
		var event Event
		if err := conn.ReadJSON(&event); err != nil {
			t.Fatalf("Reading event failed: %v", err)
		}
		if event.Type == "error" {
			return // expected
		}
		if event.Type == "progress" {
			t.Fatal("Expected error event, got progress")
		}
	}
}
