package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the path to the sandbox config file, relative to the process working directory.
const DefaultPath = "config/sandbox.yaml"

// Config holds every tunable of the sandbox. The zero value is not usable; start from Default().
type Config struct {
	Window       Window        `yaml:"window"`
	World        World         `yaml:"world"`
	Light        Light         `yaml:"light"`
	Clouds       Clouds        `yaml:"clouds"`
	Camera       Camera        `yaml:"camera"`
	Gestures     Gestures      `yaml:"gestures"`
	RemovalDelay time.Duration `yaml:"removal_delay"`
	// Seed drives block/ground colours and cloud placement. 0 means time-based.
	Seed    uint64 `yaml:"seed"`
	LogPath string `yaml:"log_path"`
	Debug   Debug  `yaml:"debug"`
}

// Window configures the raylib window and frame rate.
type Window struct {
	Title      string `yaml:"title"`
	Width      int32  `yaml:"width"`
	Height     int32  `yaml:"height"`
	FPS        int32  `yaml:"fps"`
	Fullscreen bool   `yaml:"fullscreen"`
}

// World holds ground and block dimensions in world units.
type World struct {
	GroundSize      float32 `yaml:"ground_size"`
	GroundThickness float32 `yaml:"ground_thickness"`
	BlockSize       float32 `yaml:"block_size"`
	// GroundTextureSize is the edge length in pixels of the generated ground texture.
	GroundTextureSize int `yaml:"ground_texture_size"`
}

// Light is the single directional "sun" light. It always faces the origin.
type Light struct {
	Intensity float32   `yaml:"intensity"`
	Position  mgl32.Vec3 `yaml:"position"`
}

// Clouds are the decorative spheres spawned at random positions inside [Min, Max].
type Clouds struct {
	Count  int        `yaml:"count"`
	Radius float32    `yaml:"radius"`
	Min    mgl32.Vec3 `yaml:"min"`
	Max    mgl32.Vec3 `yaml:"max"`
}

// Camera is the initial camera placement and its perspective projection.
type Camera struct {
	Position mgl32.Vec3 `yaml:"position"`
	Target   mgl32.Vec3 `yaml:"target"`
	FovY     float32    `yaml:"fov_y"` // degrees
	ZNear    float32    `yaml:"z_near"`
	ZFar     float32    `yaml:"z_far"`
}

// Gestures tunes the pointer recognizer.
type Gestures struct {
	// MoveThreshold is how far (pixels) a press may travel before it becomes a pan.
	MoveThreshold     float32       `yaml:"move_threshold"`
	LongPressDuration time.Duration `yaml:"long_press_duration"`
}

// Debug toggles the HUD overlays. All off by default.
type Debug struct {
	ShowFPS   bool `yaml:"show_fps"`
	ShowStats bool `yaml:"show_stats"`
	ShowLog   bool `yaml:"show_log"`
	// Font is a font name looked up under assets/fonts; empty uses the raylib default font.
	Font string `yaml:"font"`
}

// Default returns the stock sandbox: 10x10 ground, 0.5 blocks, five clouds, 2s removal delay.
func Default() Config {
	return Config{
		Window: Window{
			Title:  "block sandbox",
			Width:  1280,
			Height: 720,
			FPS:    60,
		},
		World: World{
			GroundSize:        10,
			GroundThickness:   0.1,
			BlockSize:         0.5,
			GroundTextureSize: 256,
		},
		Light: Light{
			Intensity: 1000,
			Position:  mgl32.Vec3{0, 10, 10},
		},
		Clouds: Clouds{
			Count:  5,
			Radius: 0.5,
			Min:    mgl32.Vec3{-5, 5, -5},
			Max:    mgl32.Vec3{5, 10, 5},
		},
		Camera: Camera{
			Position: mgl32.Vec3{0, 5, 15},
			Target:   mgl32.Vec3{0, 0, 0},
			FovY:     60,
			ZNear:    1,
			ZFar:     100,
		},
		Gestures: Gestures{
			MoveThreshold:     10,
			LongPressDuration: 500 * time.Millisecond,
		},
		RemovalDelay: 2 * time.Second,
		LogPath:      "logs/sandbox.txt",
	}
}

// Load reads the config at path on top of Default(), so a file only needs the keys it changes.
// A missing file is not an error. On a parse or validation error the defaults are returned
// together with the error so the caller can log it and keep running.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Default(), errors.Wrapf(err, "read %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), errors.Wrapf(err, "parse %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), errors.Wrapf(err, "invalid %s", path)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating the parent directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "create config dir")
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "encode config")
	}
	return errors.Wrapf(os.WriteFile(path, data, 0644), "write %s", path)
}

// Validate rejects values that would make the scene degenerate.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return errors.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	case c.World.GroundSize <= 0:
		return errors.Errorf("world.ground_size must be positive, got %v", c.World.GroundSize)
	case c.World.GroundThickness <= 0:
		return errors.Errorf("world.ground_thickness must be positive, got %v", c.World.GroundThickness)
	case c.World.BlockSize <= 0:
		return errors.Errorf("world.block_size must be positive, got %v", c.World.BlockSize)
	case c.World.GroundTextureSize <= 0:
		return errors.Errorf("world.ground_texture_size must be positive, got %d", c.World.GroundTextureSize)
	case c.Clouds.Count < 0:
		return errors.Errorf("clouds.count must not be negative, got %d", c.Clouds.Count)
	case c.Clouds.Radius <= 0:
		return errors.Errorf("clouds.radius must be positive, got %v", c.Clouds.Radius)
	case c.Camera.FovY <= 0 || c.Camera.FovY >= 180:
		return errors.Errorf("camera.fov_y must be in (0, 180), got %v", c.Camera.FovY)
	case c.Camera.ZNear <= 0 || c.Camera.ZFar <= c.Camera.ZNear:
		return errors.Errorf("camera clip planes invalid: near %v far %v", c.Camera.ZNear, c.Camera.ZFar)
	case c.Camera.Position == c.Camera.Target:
		return errors.New("camera.position and camera.target must differ")
	case c.RemovalDelay < 0:
		return errors.Errorf("removal_delay must not be negative, got %v", c.RemovalDelay)
	case c.Gestures.MoveThreshold < 0:
		return errors.Errorf("gestures.move_threshold must not be negative, got %v", c.Gestures.MoveThreshold)
	case c.Gestures.LongPressDuration <= 0:
		return errors.Errorf("gestures.long_press_duration must be positive, got %v", c.Gestures.LongPressDuration)
	}
	return nil
}
