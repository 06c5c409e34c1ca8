package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg.DataDir != "tasks" {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, "tasks")
	}
	if cfg.MaxClipDuration != 3 {
		t.Errorf("MaxClipDuration = %v, want 3", cfg.MaxClipDuration)
	}
	if cfg.Encode.VideoCodec != "libx264" || cfg.Encode.AudioCodec != "aac" {
		t.Errorf("Encode codecs = %q/%q, want libx264/aac", cfg.Encode.VideoCodec, cfg.Encode.AudioCodec)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vidclip.yaml")
	body := `
data_dir: /srv/clips
max_clip_duration: 10
encode:
  video_codec: libx264
  audio_codec: aac
  preset: veryslow
  crf: 18
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DataDir != "/srv/clips" {
		t.Errorf("DataDir = %q, want /srv/clips", cfg.DataDir)
	}
	if cfg.MaxClipDuration != 10 {
		t.Errorf("MaxClipDuration = %v, want 10", cfg.MaxClipDuration)
	}
	if cfg.Encode.Preset != "veryslow" || cfg.Encode.CRF != 18 {
		t.Errorf("Encode = %+v", cfg.Encode)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("VIDCLIP_DATA_DIR", "/mnt/scratch")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DataDir != "/mnt/scratch" {
		t.Errorf("DataDir = %q, want env override", cfg.DataDir)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad preset", "encode:\n  preset: warp9\n"},
		{"crf out of range", "encode:\n  crf: 99\n"},
		{"negative cap", "max_clip_duration: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "vidclip.yaml")
			if err := os.WriteFile(path, []byte(tt.body), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Errorf("Load() accepted invalid config:\n%s", tt.body)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() expected error for missing explicit config path")
	}
}
