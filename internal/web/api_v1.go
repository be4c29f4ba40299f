package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rook-computer/pixelplay/internal/input"
	"github.com/rook-computer/pixelplay/internal/render"
)

// SnapshotTimeout bounds how long /frame.png waits for the frame loop.
var SnapshotTimeout = 2 * time.Second

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

func handleStats(deps APIV1Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, deps.Stats.Snapshot())
	}
}

// handleFramePNG encodes the current buffer. Alpha is forced opaque unless
// the request asks for ?alpha=keep.
func handleFramePNG(deps APIV1Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), SnapshotTimeout)
		defer cancel()

		pix, err := deps.Frames.RequestSnapshot(ctx)
		if errors.Is(err, context.DeadlineExceeded) {
			writeAPIError(w, http.StatusServiceUnavailable, "frame_loop_busy", "frame loop did not answer in time")
			return
		}
		if err != nil {
			writeAPIError(w, http.StatusServiceUnavailable, "snapshot_failed", err.Error())
			return
		}

		surface := deps.Frames.Surface()
		var out bytes.Buffer
		if r.URL.Query().Get("alpha") == "keep" {
			err = render.WriteFramePNG(&out, surface, pix)
		} else {
			canvas := render.NewCanvas(surface, nil)
			if err = canvas.Load(pix); err == nil {
				err = canvas.WritePNG(&out)
			}
		}
		if err != nil {
			deps.Logger.Errorf("web", "frame.png encode failed: %v", err)
			writeAPIError(w, http.StatusInternalServerError, "encode_failed", err.Error())
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(out.Bytes())
	}
}

func handleEvent(deps APIV1Deps, ev input.Event) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !deps.Events.Push(ev) {
			writeAPIError(w, http.StatusServiceUnavailable, "queue_full", "input queue is full")
			return
		}
		deps.Logger.Infof("web", "queued %s", ev)
		writeJSON(w, http.StatusAccepted, okResponse{OK: true})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiError{Error: code, Message: message})
}
