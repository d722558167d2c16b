package main

import (
	"fmt"
	"io"

	"github.com/phanxgames/motion"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play <scene.yaml>",
	Short: "Play a scene headless and print rendered styles",
	Long: `Steps the scene at a fixed frame rate without opening a window. The
scene's script drives pointer and prop changes. Rendered styles are printed
at every snapshot step, every --every frames, and once at the end.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := loadScene(args[0])
		if err != nil {
			return err
		}
		fps, _ := cmd.Flags().GetInt("fps")
		frames, _ := cmd.Flags().GetInt("frames")
		every, _ := cmd.Flags().GetInt("every")
		return runPlay(cmd.OutOrStdout(), spec, fps, frames, every)
	},
}

func init() {
	playCmd.Flags().Int("fps", 60, "Simulated frames per second")
	playCmd.Flags().Int("frames", 120, "Frames to play after the script finishes")
	playCmd.Flags().Int("every", 0, "Also print every N frames (0 disables)")
	rootCmd.AddCommand(playCmd)
}

func runPlay(w io.Writer, spec *motion.SceneSpec, fps, frames, every int) error {
	if fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", fps)
	}
	p, err := motion.NewPlayerFromScene(spec)
	if err != nil {
		return err
	}
	defer p.Dispose()

	p.OnSnapshot = func(label string, frame int) {
		printFrame(w, p, fmt.Sprintf("snapshot %q", label), frame)
	}
	dt := float32(1.0 / float64(fps))

	// The script runs to completion first, then the tail frames let the last
	// animations settle.
	for p.Script() != nil && !p.Script().Done() {
		if err := step(w, p, dt, every); err != nil {
			return err
		}
	}
	for i := 0; i < frames; i++ {
		if err := step(w, p, dt, every); err != nil {
			return err
		}
	}
	printFrame(w, p, "final", p.Frame())
	return nil
}

func step(w io.Writer, p *motion.Player, dt float32, every int) error {
	if err := p.Step(dt); err != nil {
		return err
	}
	if every > 0 && p.Frame()%every == 0 {
		printFrame(w, p, "frame", p.Frame())
	}
	return nil
}

func printFrame(w io.Writer, p *motion.Player, label string, frame int) {
	fmt.Fprintf(w, "%s @%d (%d running)\n", label, frame, p.Ticker().Active())
	for _, b := range p.Boxes() {
		fmt.Fprintf(w, "  %s: %s\n", b.Name, b.Element.Render())
	}
}
