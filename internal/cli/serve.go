package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cryspack/optimise"
	"github.com/katalvlaran/cryspack/wallpaper"
)

// Frame is one optimisation update pushed to a live viewer: the
// current rendering plus the loop diagnostics the viewer displays.
type Frame struct {
	Score    float64 `json:"score"`
	StepSize float64 `json:"step_size"`
	Kt       float64 `json:"kt"`
	Steps    int     `json:"steps"`
	SVG      string  `json:"svg"`
	Done     bool    `json:"done"`
}

// frameServer drives one frame-based optimisation per websocket
// client connection.
type frameServer struct {
	logger   *slog.Logger
	upgrader websocket.Upgrader
	shapes   shapeFlags
	group    string
	groups   string
	kt       float64
	stepSize float64
	steps    int
}

// serveClient runs the optimisation loop for one connection, pushing
// a frame after every batch of steps until the step size converges or
// the client goes away.
func (s *frameServer) serveClient(ctx context.Context, conn *websocket.Conn) error {
	defer conn.Close()

	group, err := lookupGroup(s.group, s.groups)
	if err != nil {
		return err
	}

	state, err := s.shapes.buildState(group)
	if err != nil {
		return err
	}

	opt := optimise.SetupOpt(s.kt, s.stepSize, s.steps)
	opt.Seed = time.Now().UnixNano()

	var total int
	for !opt.Converged() {
		if err = ctx.Err(); err != nil {
			return err
		}

		if err = opt.OptimiseState(state); err != nil {
			return err
		}
		total += opt.Steps

		score, err := state.Score()
		if err != nil {
			return err
		}

		frame := Frame{
			Score:    score,
			StepSize: opt.StepSize,
			Kt:       opt.Kt,
			Steps:    total,
			SVG:      state.AsSVG().String(),
			Done:     opt.Converged(),
		}
		if err = conn.WriteJSON(frame); err != nil {
			return err
		}
	}

	return nil
}

// handler upgrades an HTTP request to a websocket and runs the loop.
func (s *frameServer) handler(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)

		return
	}

	s.logger.Info("viewer connected", "remote", r.RemoteAddr)
	if err = s.serveClient(r.Context(), conn); err != nil &&
		!errors.Is(err, context.Canceled) && !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		s.logger.Warn("viewer session ended", "remote", r.RemoteAddr, "error", err)

		return
	}
	s.logger.Info("viewer finished", "remote", r.RemoteAddr)
}

// newServeCommand builds the live viewer: a websocket endpoint that
// streams optimisation frames as SVG for rendering in a browser.
func newServeCommand(opts *Options) *cobra.Command {
	var (
		srv        frameServer
		addr       string
		groupNames = wallpaper.Names()
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Stream a live packing optimisation over a websocket",
		Long: "serve listens for websocket connections on /ws and runs one " +
			"frame-driven optimisation per client, pushing score, step size " +
			"and the rendered structure after every batch of steps. The " +
			"session ends once the step size converges.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			srv.logger = opts.Logger
			srv.upgrader = websocket.Upgrader{
				ReadBufferSize:  1024,
				WriteBufferSize: 1024,
			}

			if _, err := lookupGroup(srv.group, srv.groups); err != nil {
				return err
			}

			mux := http.NewServeMux()
			mux.HandleFunc("/ws", srv.handler)

			server := &http.Server{Addr: addr, Handler: mux}
			go func() {
				<-cmd.Context().Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = server.Shutdown(shutdownCtx)
			}()

			opts.Logger.Info("serving live optimisation",
				"addr", addr, "group", srv.group, "groups", groupNames)
			if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}

			return nil
		},
	}

	s := opts.Settings
	flags := cmd.Flags()
	srv.shapes.register(flags)
	flags.StringVar(&addr, "addr", s.ServeAddr, "Listen address for the live viewer")
	flags.StringVar(&srv.group, "wallpaper", "p2", "The defining symmetry of the unit cell")
	flags.StringVar(&srv.groups, "groups-file", s.GroupsFile, "YAML file with additional wallpaper group definitions")
	flags.Float64Var(&srv.kt, "kt", 0.1, "The fixed temperature of the frame loop")
	flags.Float64Var(&srv.stepSize, "step-size", 0.01, "The initial Monte-Carlo move size")
	flags.IntVar(&srv.steps, "steps", 100, "Monte-Carlo steps per frame")

	return cmd
}
