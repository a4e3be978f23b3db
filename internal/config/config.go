// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Camera   CameraConfig   `yaml:"camera"`
	Controls ControlsConfig `yaml:"controls"`
	Scene    SceneConfig    `yaml:"scene"`
	Asset    AssetConfig    `yaml:"asset"`
	Page     PageConfig     `yaml:"page"`
	Logging  LoggingConfig  `yaml:"logging"`

	Screenshot ScreenshotConfig `yaml:"screenshot"`

	// source is the file the config was read from, if any.
	source string
}

// WindowConfig holds display and drawing surface settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	Samples    int    `yaml:"samples"` // MSAA samples, 0 disables antialiasing
	SRGB       bool   `yaml:"srgb"`
}

// CameraConfig holds the perspective camera parameters.
type CameraConfig struct {
	FOV      float32    `yaml:"fov"` // vertical, degrees
	Near     float32    `yaml:"near"`
	Far      float32    `yaml:"far"`
	Position [3]float32 `yaml:"position"`
}

// ControlsConfig holds orbit control settings.
type ControlsConfig struct {
	EnableDamping bool    `yaml:"enable_damping"`
	DampingFactor float32 `yaml:"damping_factor"`
	RotateSpeed   float32 `yaml:"rotate_speed"`
	EnableRotate  bool    `yaml:"enable_rotate"`
	EnableZoom    bool    `yaml:"enable_zoom"`
	EnablePan     bool    `yaml:"enable_pan"`
}

// SceneConfig holds light and placeholder settings.
type SceneConfig struct {
	AmbientIntensity     float32    `yaml:"ambient_intensity"`
	DirectionalIntensity float32    `yaml:"directional_intensity"`
	DirectionalPosition  [3]float32 `yaml:"directional_position"`
	PlaceholderColor     uint32     `yaml:"placeholder_color"` // 0xRRGGBB
}

// AssetConfig holds the model location.
type AssetConfig struct {
	// ModelPath is resolved relative to BaseDir unless absolute.
	ModelPath string `yaml:"model_path"`
}

// PageConfig describes the page layout the viewer is mounted in.
type PageConfig struct {
	MountID    string  `yaml:"mount_id"`
	HeroHeight int     `yaml:"hero_height"` // 0 uses the initial window height
	MainHeight int     `yaml:"main_height"`
	ScrollStep float32 `yaml:"scroll_step"` // pixels per wheel notch
}

// ScreenshotConfig holds where F12 captures are written.
type ScreenshotConfig struct {
	Dir string `yaml:"dir"` // resolved relative to BaseDir unless absolute
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the values the viewer ships with.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Showcase",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			Samples:    4,
			SRGB:       true,
		},
		Camera: CameraConfig{
			FOV:      75,
			Near:     0.1,
			Far:      1000,
			Position: [3]float32{0.5, -1, 10},
		},
		Controls: ControlsConfig{
			EnableDamping: true,
			DampingFactor: 0.05,
			RotateSpeed:   1,
			EnableRotate:  true,
			EnableZoom:    false,
			EnablePan:     false,
		},
		Scene: SceneConfig{
			AmbientIntensity:     0,
			DirectionalIntensity: 0,
			DirectionalPosition:  [3]float32{0, 5, 5},
			PlaceholderColor:     0x00ff00,
		},
		Asset: AssetConfig{
			ModelPath: "./taino.glb",
		},
		Page: PageConfig{
			MountID:    "threejs-container",
			HeroHeight: 0,
			MainHeight: 1600,
			ScrollStep: 60,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Screenshot: ScreenshotConfig{
			Dir: "screenshots",
		},
	}
}
