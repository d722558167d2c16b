package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/phanxgames/motion"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "motion",
	Short: "Play declarative element animations",
	Long: `motion loads YAML scene documents describing animated boxes (initial,
animate, whileHover, whileTap, transition and variants) and plays them,
either headless with a printed trace or in a window.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		if verbose {
			motion.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log engine diagnostics to stderr")
}

func loadScene(path string) (*motion.SceneSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return motion.LoadScene(data)
}
