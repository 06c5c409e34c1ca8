package media

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/melody-ding/go-vidclip/internal/types"
)

// EncodeProfile selects the output codec settings for re-encoded clips.
type EncodeProfile struct {
	VideoCodec string
	AudioCodec string
	Preset     string
	CRF        int
}

// DefaultEncodeProfile returns the standard H.264 + AAC pairing.
func DefaultEncodeProfile() EncodeProfile {
	return EncodeProfile{
		VideoCodec: "libx264",
		AudioCodec: "aac",
		Preset:     "fast",
		CRF:        23,
	}
}

// FFmpegEngine runs probing, extraction, and concatenation through ffmpeg.
type FFmpegEngine struct {
	profile EncodeProfile
}

// NewFFmpegEngine creates an engine with the given encode profile. Empty
// profile fields fall back to the defaults.
func NewFFmpegEngine(profile EncodeProfile) *FFmpegEngine {
	def := DefaultEncodeProfile()
	if profile.VideoCodec == "" {
		profile.VideoCodec = def.VideoCodec
	}
	if profile.AudioCodec == "" {
		profile.AudioCodec = def.AudioCodec
	}
	if profile.Preset == "" {
		profile.Preset = def.Preset
	}
	if profile.CRF == 0 {
		profile.CRF = def.CRF
	}
	return &FFmpegEngine{profile: profile}
}

type probeStream struct {
	CodecType  string `json:"codec_type"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Duration   string `json:"duration"`
	RFrameRate string `json:"r_frame_rate"`
}

type probeFormat struct {
	Duration string `json:"duration"`
}

type probeDoc struct {
	Streams []probeStream `json:"streams"`
	Format  probeFormat   `json:"format"`
}

// Probe reads stream metadata from the file via ffprobe.
func (e *FFmpegEngine) Probe(path string) (*types.VideoMetadata, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, "stat %s", path)
	}

	raw, err := ffmpeg.Probe(path)
	if err != nil {
		return nil, errors.Wrapf(err, "probe %s", path)
	}

	return parseProbe(raw, path)
}

func parseProbe(raw, path string) (*types.VideoMetadata, error) {
	var doc probeDoc
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, errors.Wrap(err, "decode probe output")
	}

	var video *probeStream
	hasAudio := false
	for i := range doc.Streams {
		switch doc.Streams[i].CodecType {
		case "video":
			if video == nil {
				video = &doc.Streams[i]
			}
		case "audio":
			hasAudio = true
		}
	}
	if video == nil {
		return nil, errors.Errorf("no video stream in %s", path)
	}

	duration := parseSeconds(video.Duration)
	if duration == 0 {
		duration = parseSeconds(doc.Format.Duration)
	}
	if duration == 0 {
		return nil, errors.Errorf("cannot determine duration of %s", path)
	}

	return &types.VideoMetadata{
		Path:     path,
		Width:    video.Width,
		Height:   video.Height,
		FPS:      parseFrameRate(video.RFrameRate),
		Duration: duration,
		HasAudio: hasAudio,
	}, nil
}

func parseSeconds(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// parseFrameRate converts an ffprobe rational like "30000/1001" to fps.
func parseFrameRate(s string) float64 {
	num, den, ok := strings.Cut(s, "/")
	if !ok {
		return parseSeconds(s)
	}
	n := parseSeconds(num)
	d := parseSeconds(den)
	if d == 0 {
		return 0
	}
	return n / d
}

// ExtractSubclip re-encodes [start, end) of src into out. If the muxed
// encode fails on a source with audio, the clip is retried video-only so a
// broken audio track does not lose the segment.
func (e *FFmpegEngine) ExtractSubclip(src string, start, end float64, hasAudio bool, out string) error {
	duration := end - start
	if duration <= 0 {
		return errors.Errorf("invalid subclip range %.3f-%.3f", start, end)
	}

	err := e.encodeSubclip(src, start, duration, hasAudio, out)
	if err != nil && hasAudio {
		if videoErr := e.encodeSubclip(src, start, duration, false, out); videoErr == nil {
			return nil
		}
	}
	return err
}

func (e *FFmpegEngine) encodeSubclip(src string, start, duration float64, withAudio bool, out string) error {
	args := ffmpeg.KwArgs{
		"t":       fmt.Sprintf("%.3f", duration),
		"c:v":     e.profile.VideoCodec,
		"preset":  e.profile.Preset,
		"crf":     e.profile.CRF,
		"pix_fmt": "yuv420p",
	}
	if withAudio {
		args["c:a"] = e.profile.AudioCodec
	} else {
		args["an"] = ""
	}

	stream := ffmpeg.Input(src, ffmpeg.KwArgs{"ss": fmt.Sprintf("%.3f", start)}).
		Output(out, args).
		OverWriteOutput()
	if err := stream.Run(); err != nil {
		return errors.Wrapf(err, "ffmpeg extract %s [%.3fs +%.3fs]", src, start, duration)
	}
	return nil
}

// Concat joins the inputs in order through the concat demuxer, re-encoding
// to the profile codecs so clips from different encode runs mux cleanly.
func (e *FFmpegEngine) Concat(paths []string, out string) error {
	if len(paths) == 0 {
		return errors.New("no input clips to concatenate")
	}

	list, err := writeConcatList(paths)
	if err != nil {
		return err
	}
	defer os.Remove(list)

	stream := ffmpeg.Input(list, ffmpeg.KwArgs{"f": "concat", "safe": "0"}).
		Output(out, ffmpeg.KwArgs{
			"c:v":     e.profile.VideoCodec,
			"c:a":     e.profile.AudioCodec,
			"preset":  e.profile.Preset,
			"crf":     e.profile.CRF,
			"pix_fmt": "yuv420p",
		}).
		OverWriteOutput()
	if err := stream.Run(); err != nil {
		os.Remove(out)
		return errors.Wrapf(err, "ffmpeg concat %d clips", len(paths))
	}
	return nil
}

func writeConcatList(paths []string) (string, error) {
	f, err := os.CreateTemp("", "vidclip-concat-*.txt")
	if err != nil {
		return "", errors.Wrap(err, "create concat list")
	}
	defer f.Close()

	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			os.Remove(f.Name())
			return "", errors.Wrapf(err, "resolve %s", p)
		}
		if _, err := fmt.Fprintf(f, "file '%s'\n", abs); err != nil {
			os.Remove(f.Name())
			return "", errors.Wrap(err, "write concat list")
		}
	}
	return f.Name(), nil
}
