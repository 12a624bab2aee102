package cmd

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/TasseDeCafe/app-monorepo-template-sub005/internal/learner"
)

var positionCmd = &cobra.Command{
	Use:   "position",
	Short: "Inspect or change a learner's word position",
}

func parseUserID(arg string) (uuid.UUID, error) {
	id, err := uuid.Parse(arg)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user id %q: %w", arg, err)
	}
	return id, nil
}

func printPosition(v learner.PositionView) {
	state := "stored"
	if !v.Stored {
		state = "default"
	}
	fmt.Printf("position %d (%s)  slider %.2f  level %s\n", v.Position, state, v.SliderValue, v.Level.Name)
}

var positionGetCmd = &cobra.Command{
	Use:   "get <user-id>",
	Short: "Show a learner's position",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseUserID(args[0])
		if err != nil {
			return err
		}
		d, err := openDeps(cmd, false)
		if err != nil {
			return err
		}
		defer d.Close()

		view, err := d.learner.Position(cmd.Context(), id)
		if err != nil {
			return err
		}
		printPosition(view)
		return nil
	},
}

var positionSetCmd = &cobra.Command{
	Use:   "set <user-id> <value>",
	Short: "Set a learner's position (or slider value with --slider)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseUserID(args[0])
		if err != nil {
			return err
		}
		slider, _ := cmd.Flags().GetBool("slider")

		d, err := openDeps(cmd, false)
		if err != nil {
			return err
		}
		defer d.Close()

		var view learner.PositionView
		if slider {
			value, perr := strconv.ParseFloat(args[1], 64)
			if perr != nil {
				return fmt.Errorf("slider value must be a number: %w", perr)
			}
			view, err = d.learner.CommitSliderValue(cmd.Context(), id, value)
		} else {
			pos, perr := strconv.Atoi(args[1])
			if perr != nil {
				return fmt.Errorf("position must be an integer: %w", perr)
			}
			view, err = d.learner.CommitPosition(cmd.Context(), id, pos)
		}
		if err != nil {
			return err
		}
		printPosition(view)
		return nil
	},
}

func init() {
	positionSetCmd.Flags().Bool("slider", false, "Interpret the value as a slider value")

	positionCmd.AddCommand(positionGetCmd)
	positionCmd.AddCommand(positionSetCmd)
}
