// Package viewer assembles the showcase: it mounts a drawing surface into
// the page, builds the scene, starts the render loop and the model load,
// and routes window input to the page and the camera controls.
package viewer

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/showcase/internal/config"
	"github.com/Faultbox/showcase/internal/logger"
	"github.com/Faultbox/showcase/internal/nav"
	"github.com/Faultbox/showcase/internal/page"
)

// ErrMountNotFound is returned when the page has no element to mount the
// drawing surface into.
var ErrMountNotFound = errors.New("mount element not found")

// NewDocument lays out the showcase page for a viewport of the given size:
// a fixed navigation bar, the hero block holding the 3D surface, and the
// main content section below it.
func NewDocument(cfg config.PageConfig, width, height int) *page.Document {
	doc := page.NewDocument(width, height)

	bar := doc.Append(page.NewElement("nav", "nav"))
	bar.Fixed = true
	bar.Height = nav.NavHeight

	hero := cfg.HeroHeight
	if hero <= 0 {
		hero = height
	}
	if cfg.MountID != "" {
		mount := doc.Append(page.NewElement("div", cfg.MountID))
		mount.Height = float32(hero)
	}

	main := doc.Append(page.NewElement("section", "main", "main"))
	main.Top = float32(hero)
	main.Height = float32(cfg.MainHeight)

	return doc
}

// Bootstrap looks up the mount element. When it is missing nothing else may
// be constructed; the error wraps ErrMountNotFound.
func Bootstrap(doc *page.Document, mountID string) (*page.Element, error) {
	logger.Info("script starting")

	mount := doc.GetElementByID(mountID)
	if mount == nil {
		logger.Error("container not found", zap.String("id", mountID))
		return nil, fmt.Errorf("%w: #%s", ErrMountNotFound, mountID)
	}

	logger.Info("container found", zap.String("id", mountID))
	return mount, nil
}
