package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/seridescent/raytracing/pkg/bvh"
	"github.com/seridescent/raytracing/pkg/renderer"
	"github.com/seridescent/raytracing/pkg/scene"
)

// RenderRequest is the first message a client sends on the render socket
type RenderRequest struct {
	Scene           string `json:"scene"`           // Scene name (e.g. "cornell-box")
	Width           int    `json:"width"`           // Image width override, 0 keeps the scene default
	SamplesPerPixel int    `json:"samplesPerPixel"` // Sample budget override, 0 keeps the scene default
	MaxDepth        int    `json:"maxDepth"`        // Bounce limit override, 0 keeps the scene default
	MaxPasses       int    `json:"maxPasses"`       // Progressive passes, 0 = default
	Seed            int64  `json:"seed"`            // Base seed, 0 keeps the scene default
	Strategy        string `json:"strategy"`        // BVH split strategy, "" = sah
}

// RenderMessage is a single streamed event. Exactly one payload field is
// set, matched by Type: "console", "pass", "complete" or "error".
type RenderMessage struct {
	Type    string          `json:"type"`
	Console *ConsoleMessage `json:"console,omitempty"`
	Pass    *PassUpdate     `json:"pass,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// PassUpdate carries one completed progressive pass
type PassUpdate struct {
	PassNumber      int    `json:"passNumber"`
	ImageData       string `json:"imageData"` // Base64 encoded PNG
	SamplesPerPixel int    `json:"samplesPerPixel"`
	ElapsedMs       int64  `json:"elapsedMs"`
	IsLast          bool   `json:"isLast"`
}

// handleRender streams a progressive render over a websocket. The
// client sends one RenderRequest and receives RenderMessages until the
// final pass or an error.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warningf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	var req RenderRequest
	if err := conn.ReadJSON(&req); err != nil {
		writeError(conn, fmt.Sprintf("invalid render request: %v", err))
		return
	}

	pr, consoleChan, err := s.setupRender(req)
	if err != nil {
		writeError(conn, err.Error())
		return
	}

	// Cancel the render when the client goes away
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	startTime := time.Now()
	passChan, errChan := pr.RenderProgressive(ctx)

	for passChan != nil || errChan != nil {
		select {
		case msg := <-consoleChan:
			if err := conn.WriteJSON(RenderMessage{Type: "console", Console: &msg}); err != nil {
				cancel()
				return
			}

		case result, ok := <-passChan:
			if !ok {
				passChan = nil
				continue
			}
			update, err := encodePass(result, startTime)
			if err != nil {
				writeError(conn, err.Error())
				cancel()
				return
			}
			if err := conn.WriteJSON(RenderMessage{Type: "pass", Pass: update}); err != nil {
				cancel()
				return
			}

		case err, ok := <-errChan:
			if !ok {
				errChan = nil
				continue
			}
			if err != nil {
				writeError(conn, err.Error())
				return
			}
		}
	}

	conn.WriteJSON(RenderMessage{Type: "complete"})
}

// setupRender builds the requested scene and a progressive raytracer
// whose progress lines go to the returned console channel
func (s *Server) setupRender(req RenderRequest) (*renderer.ProgressiveRaytracer, chan ConsoleMessage, error) {
	if req.Scene == "" {
		req.Scene = "simple"
	}
	seed := req.Seed
	if seed == 0 {
		seed = 42
	}

	sc, err := scene.Create(req.Scene, seed)
	if err != nil {
		return nil, nil, err
	}

	if req.Width > 0 {
		sc.CameraConfig.Width = req.Width
	}
	if req.SamplesPerPixel > 0 {
		sc.Sampling.SamplesPerPixel = req.SamplesPerPixel
	}
	if req.MaxDepth > 0 {
		sc.Sampling.MaxDepth = req.MaxDepth
	}
	if req.Seed != 0 {
		sc.Sampling.Seed = req.Seed
	}

	opts := bvh.DefaultOptions()
	if req.Strategy != "" {
		strategy, err := bvh.ParseStrategy(req.Strategy)
		if err != nil {
			return nil, nil, err
		}
		opts.Strategy = strategy
	}
	if err := sc.Preprocess(opts); err != nil {
		return nil, nil, err
	}

	config := renderer.DefaultProgressiveConfig()
	if req.MaxPasses > 0 {
		config.MaxPasses = req.MaxPasses
	}

	consoleChan := make(chan ConsoleMessage, 100)
	pr, err := renderer.NewProgressiveRaytracer(sc, config, newWebLogger(consoleChan))
	if err != nil {
		return nil, nil, err
	}
	return pr, consoleChan, nil
}

// encodePass converts a pass result to its wire form with a PNG payload
func encodePass(result renderer.PassResult, startTime time.Time) (*PassUpdate, error) {
	var buf bytes.Buffer
	if err := result.Frame.WritePNG(&buf); err != nil {
		return nil, fmt.Errorf("encoding pass %d: %v", result.PassNumber, err)
	}

	return &PassUpdate{
		PassNumber:      result.PassNumber,
		ImageData:       base64.StdEncoding.EncodeToString(buf.Bytes()),
		SamplesPerPixel: result.Stats.SamplesPerPixel,
		ElapsedMs:       time.Since(startTime).Milliseconds(),
		IsLast:          result.IsLast,
	}, nil
}

func writeError(conn *websocket.Conn, message string) {
	logger.Warningf("render failed: %s", message)
	conn.WriteJSON(RenderMessage{Type: "error", Error: message})
}
