package main

import (
	"github.com/phanxgames/motion"
	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view <scene.yaml>",
	Short: "Open a window and play a scene with live mouse input",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := loadScene(args[0])
		if err != nil {
			return err
		}
		stage, err := motion.NewStageFromScene(spec)
		if err != nil {
			return err
		}
		debug, _ := cmd.Flags().GetBool("debug")
		shots, _ := cmd.Flags().GetString("screenshots")
		title := spec.Title
		if title == "" {
			title = "motion: " + args[0]
		}
		return motion.Run(stage, motion.RunConfig{Title: title, Debug: debug, ScreenshotDir: shots})
	},
}

func init() {
	viewCmd.Flags().Bool("debug", false, "Show the stats overlay and log frame timings (with --verbose)")
	viewCmd.Flags().String("screenshots", "", "Directory for snapshot screenshots (default ./screenshots)")
	rootCmd.AddCommand(viewCmd)
}
