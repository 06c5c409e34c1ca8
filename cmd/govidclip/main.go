package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/melody-ding/go-vidclip/internal/config"
	"github.com/melody-ding/go-vidclip/internal/media"
)

var version = "0.1.0"

var (
	cfgPath string
	verbose bool
	logger  zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "govidclip",
	Short: "Extract, pad, and concatenate video subclips with ffmpeg",
	Long: `govidclip cuts time-ranged subclips out of a source video, optionally
loops over the produced clips to pad up to a target total duration, and can
concatenate a set of clips into one file. All codec work is delegated to
ffmpeg; govidclip only plans the trim boundaries.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("govidclip version %s\n", version)
	},
}

func engineFromConfig(cfg *config.Config) *media.FFmpegEngine {
	return media.NewFFmpegEngine(media.EncodeProfile{
		VideoCodec: cfg.Encode.VideoCodec,
		AudioCodec: cfg.Encode.AudioCodec,
		Preset:     cfg.Encode.Preset,
		CRF:        cfg.Encode.CRF,
	})
}

// resolveMaxClip prefers an explicit --max-clip flag over the config default.
func resolveMaxClip(cmd *cobra.Command, flagValue float64, cfg *config.Config) float64 {
	if cmd.Flags().Changed("max-clip") {
		return flagValue
	}
	return cfg.MaxClipDuration
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(clipCmd)
	rootCmd.AddCommand(concatCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(versionCmd)
}
