package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/melody-ding/go-vidclip/internal/archive"
	"github.com/melody-ding/go-vidclip/internal/clipper"
	"github.com/melody-ding/go-vidclip/internal/config"
	"github.com/melody-ding/go-vidclip/internal/taskdir"
)

var (
	batchTar    string
	batchRanges []string
	batchMax    float64
	batchTarget float64
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Clip every video in a tar archive with the same timestamp ranges",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}

		taskID := uuid.NewString()
		workDir, err := taskdir.Resolve(cfg.DataDir, taskID)
		if err != nil {
			return err
		}
		logger.Info().Str("task", taskID).Str("dir", workDir).Msg("batch task started")

		srcDir := filepath.Join(workDir, "sources")
		if err := os.MkdirAll(srcDir, 0755); err != nil {
			return err
		}

		sources, err := archive.ExtractVideosFromTar(batchTar, srcDir)
		if err != nil {
			return fmt.Errorf("extract archive: %w", err)
		}
		if len(sources) == 0 {
			return fmt.Errorf("no videos found in %s", batchTar)
		}

		c := clipper.New(engineFromConfig(cfg), logger)
		maxClip := resolveMaxClip(cmd, batchMax, cfg)
		bar := progressbar.Default(int64(len(sources)), "clipping")

		var produced int
		for _, src := range sources {
			outDir := filepath.Join(workDir, src.Key)
			if err := os.MkdirAll(outDir, 0755); err != nil {
				return err
			}

			result := c.ClipVideo(src.Path, batchRanges, clipper.Options{
				OutputDir:       outDir,
				MaxClipDuration: maxClip,
				TargetDuration:  batchTarget,
			})
			produced += len(result.Clips)
			bar.Add(1)
		}

		fmt.Printf("\nProduced %d clips across %d videos in %s\n", produced, len(sources), workDir)
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchTar, "tar", "", "tar archive of source videos")
	batchCmd.Flags().StringArrayVar(&batchRanges, "ts", nil, "timestamp range start-end (repeatable)")
	batchCmd.Flags().Float64Var(&batchMax, "max-clip", clipper.DefaultMaxClipDuration, "max duration per clip in seconds, 0 disables")
	batchCmd.Flags().Float64Var(&batchTarget, "target", 0, "target total duration per video in seconds, 0 disables")
	batchCmd.MarkFlagRequired("tar")
	batchCmd.MarkFlagRequired("ts")
}
