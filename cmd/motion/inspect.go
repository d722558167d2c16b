package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/phanxgames/motion"
	"github.com/spf13/cobra"
)

var decomposeCmd = &cobra.Command{
	Use:   "decompose <a> <b> <c> <d> <e> <f>",
	Short: "Decompose a 2D affine matrix into translate, scale, skew and rotation",
	Args:  cobra.ExactArgs(6),
	RunE: func(cmd *cobra.Command, args []string) error {
		var m motion.Matrix
		for i, arg := range args {
			f, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return fmt.Errorf("coefficient %d: %w", i+1, err)
			}
			m[i] = f
		}
		d := motion.Decompose(m)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "translateX %g\ntranslateY %g\n", d.TranslateX, d.TranslateY)
		fmt.Fprintf(out, "scaleX     %g\nscaleY     %g\n", d.ScaleX, d.ScaleY)
		fmt.Fprintf(out, "skewX      %g\nskewY      %g\n", d.SkewX, d.SkewY)
		fmt.Fprintf(out, "rotation   %g\n", d.Rotation)
		return nil
	},
}

var renderCmd = &cobra.Command{
	Use:   "render <key=value>...",
	Short: "Render style-state pairs into style declarations",
	Long: `Builds a style state from key=value pairs, in argument order, and prints
the declarations it renders to. Values that parse as numbers are numbers.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		props := make([]motion.Prop, 0, len(args))
		for _, arg := range args {
			key, raw, ok := strings.Cut(arg, "=")
			if !ok || key == "" {
				return fmt.Errorf("want key=value, got %q", arg)
			}
			v := motion.Str(raw)
			if f, err := strconv.ParseFloat(raw, 64); err == nil {
				v = motion.Num(f)
			}
			props = append(props, motion.Prop{Key: key, Value: v})
		}
		for _, d := range motion.Render(motion.NewStyleState(props...)) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", d.Property, d.Value)
		}
		return nil
	},
}

var easingsCmd = &cobra.Command{
	Use:   "easings",
	Short: "List the supported easing names",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range motion.EaseNames() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

func init() {
	rootCmd.AddCommand(decomposeCmd, renderCmd, easingsCmd)
}
