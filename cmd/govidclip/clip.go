package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/melody-ding/go-vidclip/internal/archive"
	"github.com/melody-ding/go-vidclip/internal/clipper"
	"github.com/melody-ding/go-vidclip/internal/config"
	"github.com/melody-ding/go-vidclip/internal/storage"
	"github.com/melody-ding/go-vidclip/internal/taskdir"
)

var (
	clipTask   string
	clipVideo  string
	clipRanges []string
	clipMax    float64
	clipTarget float64
	clipBundle string
)

var clipCmd = &cobra.Command{
	Use:   "clip",
	Short: "Extract subclips from a source video",
	Long: `Extract one subclip per timestamp range from a source video into the
task's working directory. Ranges use start-end notation where each side is
seconds, minutes:seconds, or hours:minutes:seconds, e.g. 0:15-0:18 or
01:02:03-01:05:00. With --target, clips are looped over to pad the total
duration up to the target.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}

		taskID := clipTask
		if taskID == "" {
			taskID = uuid.NewString()
			logger.Info().Str("task", taskID).Msg("generated task id")
		}
		outDir, err := taskdir.Resolve(cfg.DataDir, taskID)
		if err != nil {
			return err
		}

		src := clipVideo
		if storage.IsS3URL(src) {
			logger.Info().Str("url", src).Msg("fetching source from S3")
			local, err := storage.FetchS3(src, outDir)
			if err != nil {
				return err
			}
			src = local
		}

		c := clipper.New(engineFromConfig(cfg), logger)
		result := c.ClipVideo(src, clipRanges, clipper.Options{
			OutputDir:       outDir,
			MaxClipDuration: resolveMaxClip(cmd, clipMax, cfg),
			TargetDuration:  clipTarget,
		})
		if len(result.Clips) == 0 {
			return fmt.Errorf("no clips produced from %s", clipVideo)
		}

		if clipBundle != "" {
			if err := archive.WriteClipBundle(result.Clips, clipBundle); err != nil {
				return err
			}
			logger.Info().Str("bundle", clipBundle).Msg("clip bundle written")
		}

		fmt.Printf("Produced %d clips (%.1fs) in %s\n", len(result.Clips), result.TotalDuration, outDir)
		return nil
	},
}

func init() {
	clipCmd.Flags().StringVar(&clipTask, "task", "", "task id selecting the output directory (default: random)")
	clipCmd.Flags().StringVar(&clipVideo, "video", "", "source video path or s3:// URL")
	clipCmd.Flags().StringArrayVar(&clipRanges, "ts", nil, "timestamp range start-end (repeatable)")
	clipCmd.Flags().Float64Var(&clipMax, "max-clip", clipper.DefaultMaxClipDuration, "max duration per clip in seconds, 0 disables")
	clipCmd.Flags().Float64Var(&clipTarget, "target", 0, "target total duration in seconds, 0 disables")
	clipCmd.Flags().StringVar(&clipBundle, "bundle", "", "also write the produced clips into this tar archive")
	clipCmd.MarkFlagRequired("video")
	clipCmd.MarkFlagRequired("ts")
}
