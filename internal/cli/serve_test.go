package cli

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cryspack/internal/logging"
)

// TestFrameServer_StreamsFrames dials the websocket endpoint and
// reads frames until the optimisation reports convergence.
func TestFrameServer_StreamsFrames(t *testing.T) {
	srv := &frameServer{
		logger: logging.NewLogger(io.Discard, logging.LevelError),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		shapes: shapeFlags{
			shape: "trimer", force: "hard",
			radius: 0.7, angle: 120, distance: 1, sides: 4,
		},
		group:    "p2",
		kt:       0,
		stepSize: 0.01,
		steps:    50,
	}

	ts := httptest.NewServer(http.HandlerFunc(srv.handler))
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Minute)))

	var (
		frames int
		last   Frame
	)
	for {
		var f Frame
		if err = conn.ReadJSON(&f); err != nil {
			break
		}
		frames++
		last = f
		if f.Done {
			break
		}
	}

	require.Greater(t, frames, 0, "at least one frame must arrive")
	assert.True(t, last.Done)
	assert.Less(t, last.StepSize, 1e-5)
	assert.Greater(t, last.Score, 0.0)
	assert.True(t, strings.HasPrefix(last.SVG, "<svg"))
}

// TestFrameServer_RejectsBadShape fails the session before any frame.
func TestFrameServer_RejectsBadShape(t *testing.T) {
	srv := &frameServer{
		logger:   logging.NewLogger(io.Discard, logging.LevelError),
		upgrader: websocket.Upgrader{},
		shapes:   shapeFlags{shape: "polygon", force: "lj", sides: 4},
		group:    "p2",
	}

	ts := httptest.NewServer(http.HandlerFunc(srv.handler))
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var f Frame
	assert.Error(t, conn.ReadJSON(&f))
}
