package engineconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// EngineConfigPath is the path to the engine config file, relative to the process working directory.
const EngineConfigPath = "config/engine.json"

// EnginePrefs holds engine preferences: window, overlays, physics, and asset paths. Persisted across runs.
type EnginePrefs struct {
	WindowWidth    int32      `json:"window_width"`
	WindowHeight   int32      `json:"window_height"`
	Fullscreen     bool       `json:"fullscreen"`
	ShowFPS        bool       `json:"show_fps"`
	ShowMemAlloc   bool       `json:"show_memalloc"`
	GridVisible    bool       `json:"grid_visible"`
	Gravity        [3]float32 `json:"gravity"`
	PhysicsStep    float32    `json:"physics_step"`
	PrimitivesPath string     `json:"primitives_path"`
	StartupScript  string     `json:"startup_script,omitempty"`
	LogPath        string     `json:"log_path"`
}

// Default returns default engine preferences (windowed 1280x720, overlays off, grid on, 60 Hz physics).
func Default() EnginePrefs {
	return EnginePrefs{
		WindowWidth:    1280,
		WindowHeight:   720,
		GridVisible:    true,
		Gravity:        [3]float32{0, -9.8, 0},
		PhysicsStep:    1.0 / 60,
		PrimitivesPath: "assets/primitives.yaml",
		StartupScript:  "config/startup.txt",
		LogPath:        "logs/engine.txt",
	}
}

// Load reads engine preferences from path. If the file is missing or invalid, it returns
// Default() and does not create a file. Fields absent from the file keep their defaults.
func Load(path string) (EnginePrefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}
	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	if p.PhysicsStep <= 0 {
		p.PhysicsStep = Default().PhysicsStep
	}
	if p.WindowWidth <= 0 || p.WindowHeight <= 0 {
		p.WindowWidth, p.WindowHeight = Default().WindowWidth, Default().WindowHeight
	}
	return p, nil
}

// Save writes engine preferences to path, creating the directory if needed.
func Save(path string, p EnginePrefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
