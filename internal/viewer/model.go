package viewer

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/Faultbox/showcase/internal/assets"
	"github.com/Faultbox/showcase/internal/engine/overlay"
	"github.com/Faultbox/showcase/internal/engine/scene"
	"github.com/Faultbox/showcase/internal/logger"
)

// modelCallbacks wires a load to the world and the loading bar. All three
// run on the main goroutine.
func modelCallbacks(w *World, state *overlay.LoadState) assets.Callbacks {
	return assets.Callbacks{
		OnProgress: func(p assets.Progress) {
			state.Percent = p.Percent()
			logger.Debug("loading progress",
				zap.String("percent", formatPercent(p.Percent())),
				zap.Int64("loaded", p.Loaded),
				zap.Int64("total", p.Total),
			)
		},
		OnLoad: func(model *scene.Node) {
			state.Loading = false
			state.Percent = 100
			if err := w.OnModelLoaded(model); err != nil {
				logger.Warn("ignoring extra model", zap.Error(err))
			}
		},
		OnError: func(err *assets.LoadError) {
			state.Loading = false
			state.Failed = true
			state.Message = string(err.Type)
			logger.Error("error loading model", zap.Error(err))
			logger.Error("error details",
				zap.String("message", err.Message),
				zap.String("type", string(err.Type)),
				zap.String("stack", err.Stack),
			)
		},
	}
}

func formatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', 2, 64) + "%"
}
