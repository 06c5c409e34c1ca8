package media

import (
	"os"
	"strings"
	"testing"
)

const probeWithAudio = `{
  "streams": [
    {
      "codec_type": "video",
      "codec_name": "h264",
      "width": 1920,
      "height": 1080,
      "r_frame_rate": "30000/1001",
      "duration": "10.010000"
    },
    {
      "codec_type": "audio",
      "codec_name": "aac"
    }
  ],
  "format": {
    "duration": "10.052000"
  }
}`

const probeVideoOnly = `{
  "streams": [
    {
      "codec_type": "video",
      "codec_name": "h264",
      "width": 640,
      "height": 480,
      "r_frame_rate": "25/1"
    }
  ],
  "format": {
    "duration": "42.5"
  }
}`

func TestParseProbe(t *testing.T) {
	meta, err := parseProbe(probeWithAudio, "input.mp4")
	if err != nil {
		t.Fatalf("parseProbe() error = %v", err)
	}
	if meta.Width != 1920 || meta.Height != 1080 {
		t.Errorf("parseProbe() dimensions = %dx%d, want 1920x1080", meta.Width, meta.Height)
	}
	if meta.Duration != 10.010000 {
		t.Errorf("parseProbe() duration = %v, want 10.01", meta.Duration)
	}
	if !meta.HasAudio {
		t.Error("parseProbe() HasAudio = false, want true")
	}
	if meta.FPS < 29.96 || meta.FPS > 29.98 {
		t.Errorf("parseProbe() fps = %v, want ~29.97", meta.FPS)
	}
}

func TestParseProbeFormatDurationFallback(t *testing.T) {
	meta, err := parseProbe(probeVideoOnly, "input.mp4")
	if err != nil {
		t.Fatalf("parseProbe() error = %v", err)
	}
	if meta.Duration != 42.5 {
		t.Errorf("parseProbe() duration = %v, want 42.5", meta.Duration)
	}
	if meta.HasAudio {
		t.Error("parseProbe() HasAudio = true, want false")
	}
	if meta.FPS != 25 {
		t.Errorf("parseProbe() fps = %v, want 25", meta.FPS)
	}
}

func TestParseProbeNoVideoStream(t *testing.T) {
	raw := `{"streams": [{"codec_type": "audio"}], "format": {"duration": "5"}}`
	if _, err := parseProbe(raw, "audio.mp3"); err == nil {
		t.Error("parseProbe() expected error for missing video stream")
	}
}

func TestParseFrameRate(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"25/1", 25},
		{"30", 30},
		{"0/0", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := parseFrameRate(tt.input); got != tt.want {
			t.Errorf("parseFrameRate(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestWriteConcatList(t *testing.T) {
	list, err := writeConcatList([]string{"a.mp4", "b.mp4"})
	if err != nil {
		t.Fatalf("writeConcatList() error = %v", err)
	}
	defer os.Remove(list)

	data, err := os.ReadFile(list)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("writeConcatList() wrote %d lines, want 2", len(lines))
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "file '") || !strings.HasSuffix(line, "'") {
			t.Errorf("writeConcatList() line %q not in concat demuxer form", line)
		}
	}
}

func TestNewFFmpegEngineDefaults(t *testing.T) {
	e := NewFFmpegEngine(EncodeProfile{})
	if e.profile != DefaultEncodeProfile() {
		t.Errorf("NewFFmpegEngine(zero) profile = %+v, want defaults", e.profile)
	}

	e = NewFFmpegEngine(EncodeProfile{Preset: "veryslow", CRF: 18})
	if e.profile.Preset != "veryslow" || e.profile.CRF != 18 {
		t.Errorf("NewFFmpegEngine() did not keep explicit settings: %+v", e.profile)
	}
	if e.profile.VideoCodec != "libx264" {
		t.Errorf("NewFFmpegEngine() VideoCodec = %q, want libx264 default", e.profile.VideoCodec)
	}
}
