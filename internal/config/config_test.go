package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultMatchesEmbedded(t *testing.T) {
	// The embedded YAML and the hardcoded fallback must agree, or the
	// game plays differently depending on which one loaded.
	var loaded Config
	if err := yaml.Unmarshal(DefaultYAML(), &loaded); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if loaded != Default() {
		t.Errorf("embedded defaults diverge from hardcoded defaults:\nembedded: %+v\nhardcoded: %+v", loaded, Default())
	}
}

func TestDefaultTuning(t *testing.T) {
	cfg := Default()

	if cfg.Enemies.Rows*cfg.Enemies.Cols != 72 {
		t.Errorf("grid = %dx%d, want 72 blocks", cfg.Enemies.Cols, cfg.Enemies.Rows)
	}
	if cfg.Ball.Speed != 400 || cfg.Paddle.Speed != 500 {
		t.Errorf("speeds = ball %f paddle %f, want 400/500", cfg.Ball.Speed, cfg.Paddle.Speed)
	}
	if cfg.Particles.MinCount > cfg.Particles.MaxCount {
		t.Errorf("particle count bounds inverted: [%d,%d]", cfg.Particles.MinCount, cfg.Particles.MaxCount)
	}
}

func TestLoadCustomPath(t *testing.T) {
	custom := `
arena:
  left_wall: -100.0
  right_wall: 100.0
ball:
  speed: 250.0
`
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte(custom), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}

	if cfg.Arena.LeftWall != -100 || cfg.Arena.RightWall != 100 {
		t.Errorf("arena walls = %f/%f, want -100/100", cfg.Arena.LeftWall, cfg.Arena.RightWall)
	}
	if cfg.Ball.Speed != 250 {
		t.Errorf("ball speed = %f, want 250", cfg.Ball.Speed)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load of a missing explicit path should fail")
	}
}

func TestLoadMalformedCustomPathFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("arena: ["), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load of malformed YAML should fail")
	}
}
