package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/melody-ding/go-vidclip/internal/clipper"
	"github.com/melody-ding/go-vidclip/internal/config"
)

var concatOut string

var concatCmd = &cobra.Command{
	Use:   "concat <clip>...",
	Short: "Concatenate clips into a single video",
	Long: `Concatenate the given clip files, in argument order, into one output
file with the standard H.264 + AAC pairing.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}

		c := clipper.New(engineFromConfig(cfg), logger)
		out, err := c.ConcatClips(args, concatOut)
		if err != nil {
			return err
		}

		fmt.Println("Combined video written to", out)
		return nil
	},
}

func init() {
	concatCmd.Flags().StringVar(&concatOut, "out", "combined.mp4", "output file path")
}
