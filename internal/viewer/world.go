package viewer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/showcase/internal/config"
	"github.com/Faultbox/showcase/internal/engine/camera"
	"github.com/Faultbox/showcase/internal/engine/scene"
	"github.com/Faultbox/showcase/internal/logger"
	"github.com/Faultbox/showcase/pkg/math"
)

// World is the GL-free half of the viewer: scene, camera, controls, the
// placeholder cube and the loaded model.
type World struct {
	Scene       *scene.Scene
	Camera      *camera.PerspectiveCamera
	Controls    *camera.OrbitControls
	Placeholder *scene.Node

	model     Cell[*scene.Node]
	placement Placement
}

// NewWorld builds the scene for a width x height surface.
func NewWorld(cfg *config.Config, width, height int) *World {
	w := &World{placement: DefaultPlacement}

	w.Scene = scene.New()
	logger.Info("scene created")

	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	cc := cfg.Camera
	w.Camera = camera.NewPerspectiveCamera(cc.FOV, aspect, cc.Near, cc.Far)
	w.Camera.Position = math.V3(cc.Position[0], cc.Position[1], cc.Position[2])
	logger.Info("camera set up", zap.Float32("fov", cc.FOV), zap.Float32("aspect", aspect))

	sc := cfg.Scene
	w.Scene.Ambient.Intensity = sc.AmbientIntensity
	w.Scene.Directional.Intensity = sc.DirectionalIntensity
	w.Scene.Directional.Position = math.V3(sc.DirectionalPosition[0], sc.DirectionalPosition[1], sc.DirectionalPosition[2])
	logger.Info("lights added",
		zap.Float32("ambient", sc.AmbientIntensity),
		zap.Float32("directional", sc.DirectionalIntensity),
	)

	ctl := cfg.Controls
	w.Controls = camera.NewOrbitControls(w.Camera)
	w.Controls.EnableDamping = ctl.EnableDamping
	w.Controls.DampingFactor = ctl.DampingFactor
	w.Controls.EnableZoom = ctl.EnableZoom
	w.Controls.EnablePan = ctl.EnablePan
	w.Controls.RotateSpeed = ctl.RotateSpeed
	w.Controls.EnableRotate = ctl.EnableRotate
	logger.Info("orbit controls initialized", zap.Bool("damping", ctl.EnableDamping))

	box := scene.NewBox(1, 1, 1, scene.Material{
		Color:     scene.ColorFromHex(sc.PlaceholderColor),
		Shininess: 30,
	})
	w.Placeholder = scene.NewMeshNode("placeholder", box)
	w.Scene.Add(w.Placeholder)
	logger.Info("test cube added")

	return w
}

// Model returns the loaded model, if any.
func (w *World) Model() (*scene.Node, bool) {
	return w.model.Get()
}

// OnModelLoaded places model, adds it to the scene and hides the
// placeholder. A second model is rejected.
func (w *World) OnModelLoaded(model *scene.Node) error {
	if err := w.model.Set(model); err != nil {
		return fmt.Errorf("model %q: %w", model.Name, err)
	}
	logger.Info("model loaded successfully", zap.String("name", model.Name))

	PlaceModel(model, w.placement)
	w.Scene.Add(model)
	w.Placeholder.Visible = false

	logger.Info("model added to scene",
		zap.Float32("x", model.Position.X),
		zap.Float32("y", model.Position.Y),
		zap.Float32("z", model.Position.Z),
	)
	return nil
}
