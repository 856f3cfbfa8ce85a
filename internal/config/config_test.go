package config

import "testing"

func TestLoadFallsBackToEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Board.ColumnCount != 5 {
		t.Errorf("ColumnCount = %d, want 5", cfg.Board.ColumnCount)
	}
	if cfg.Board.Width != cfg.Board.TileSize*float64(cfg.Board.ColumnCount) {
		t.Errorf("width %g does not match column_count*tile_size", cfg.Board.Width)
	}
	if len(cfg.Spawn.TileValues) == 0 {
		t.Error("spawn pool is empty")
	}
}

func TestLoadRejectsMissingCustomPath(t *testing.T) {
	if _, err := Load("/nonexistent/tilefall.yaml"); err == nil {
		t.Error("expected error for missing custom path")
	}
}

func TestToEngineValidates(t *testing.T) {
	cfg := DefaultTilefallConfig()

	ec := cfg.ToEngine(42)
	if err := ec.Validate(); err != nil {
		t.Fatalf("default config should produce a valid engine config: %v", err)
	}
	if ec.Seed != 42 {
		t.Errorf("Seed = %d, want 42", ec.Seed)
	}
	if ec.LevelUpScore != cfg.Difficulty.LevelUpScore {
		t.Errorf("LevelUpScore = %d, want %d", ec.LevelUpScore, cfg.Difficulty.LevelUpScore)
	}
}

func TestToEngineDisabledProgression(t *testing.T) {
	cfg := DefaultTilefallConfig()
	cfg.Difficulty.Enabled = false

	ec := cfg.ToEngine(1)
	if ec.LevelUpScore != 0 {
		t.Errorf("LevelUpScore = %d, want 0 when progression disabled", ec.LevelUpScore)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantEnabled bool
		wantLevelUp int
	}{
		{DifficultyEasy, true, 128},
		{DifficultyNormal, true, 64},
		{DifficultyHard, true, 32},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultTilefallConfig()
			ApplyPreset(&cfg, tt.preset)
			if cfg.Difficulty.Enabled != tt.wantEnabled {
				t.Errorf("Enabled = %v", cfg.Difficulty.Enabled)
			}
			if cfg.Difficulty.LevelUpScore != tt.wantLevelUp {
				t.Errorf("LevelUpScore = %d, want %d", cfg.Difficulty.LevelUpScore, tt.wantLevelUp)
			}
		})
	}

	cfg := DefaultTilefallConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}
