package cmd

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/TasseDeCafe/app-monorepo-template-sub005/internal/cefr"
)

var levelCmd = &cobra.Command{
	Use:   "level",
	Short: "Convert between word positions, slider values and CEFR levels",
}

func configuredScale(cmd *cobra.Command) (*cefr.Scale, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return cfg.Scale()
}

var levelListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the CEFR bands",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		scale, err := configuredScale(cmd)
		if err != nil {
			return err
		}

		// Header.
		fmt.Printf("%-5s  %13s  %6s  %s\n", "Level", "Positions", "Width", "Slider")
		fmt.Println(strings.Repeat("─", 48))

		start := 0.0
		for _, l := range scale.Levels() {
			end := start + l.VisualWidth
			fmt.Printf("%-5s  %6d-%-6d  %6.2f  %.2f-%.2f\n",
				l.Name, l.Lower(), l.Upper(), l.VisualWidth, start, end)
			start = end
		}

		fmt.Printf("\nslider range 0-%.2f\n", scale.TotalVisualWidth())
		return nil
	},
}

var levelShowCmd = &cobra.Command{
	Use:   "show <position>",
	Short: "Show the level containing a word position",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pos, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("position must be an integer: %w", err)
		}
		scale, err := configuredScale(cmd)
		if err != nil {
			return err
		}
		l := scale.CurrentLevel(pos)
		fmt.Printf("%s (positions %d-%d)\n", l.Name, l.Lower(), l.Upper())
		return nil
	},
}

var levelSliderCmd = &cobra.Command{
	Use:   "slider <position>",
	Short: "Convert a word position to a slider value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pos, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("position must be an integer: %w", err)
		}
		scale, err := configuredScale(cmd)
		if err != nil {
			return err
		}
		fmt.Printf("%.4f\t%s\n", scale.PositionToSliderValue(pos), scale.CurrentLevel(pos).Name)
		return nil
	},
}

var levelPositionCmd = &cobra.Command{
	Use:   "position <slider-value>",
	Short: "Convert a slider value to a word position",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[0], 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			return fmt.Errorf("slider value must be a finite number, got %q", args[0])
		}
		scale, err := configuredScale(cmd)
		if err != nil {
			return err
		}
		if total := scale.TotalVisualWidth(); value < -total || value > 2*total {
			return fmt.Errorf("slider value %g outside [%g, %g]", value, -total, 2*total)
		}
		pos := scale.SliderValueToPosition(value)
		fmt.Printf("%d\t%s\n", pos, scale.CurrentLevel(pos).Name)
		return nil
	},
}

func init() {
	levelCmd.AddCommand(levelListCmd)
	levelCmd.AddCommand(levelShowCmd)
	levelCmd.AddCommand(levelSliderCmd)
	levelCmd.AddCommand(levelPositionCmd)
}
