package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/TasseDeCafe/app-monorepo-template-sub005/internal/learner"
	"github.com/TasseDeCafe/app-monorepo-template-sub005/internal/onboarding"
)

var onboardingCmd = &cobra.Command{
	Use:   "onboarding",
	Short: "Inspect or edit a learner's onboarding progress",
}

func printOnboarding(v learner.OnboardingView) {
	p := v.Progress
	minutes := "-"
	if p.DailyStudyMinutes != nil {
		minutes = fmt.Sprintf("%d", *p.DailyStudyMinutes)
	}
	fmt.Printf("%-22s %s\n", "mother language", orDash(p.MotherLanguage))
	fmt.Printf("%-22s %s\n", "study language", orDash(p.StudyLanguage))
	fmt.Printf("%-22s %s\n", "dialect", orDash(p.Dialect))
	fmt.Printf("%-22s %t\n", "has voice", p.HasVoice)
	fmt.Printf("%-22s %t\n", "just selected topics", p.HasJustSelectedTopics)
	fmt.Printf("%-22s %s\n", "daily study minutes", minutes)
	fmt.Printf("%-22s %t\n", "just accepted terms", p.HasJustAcceptedTerms)
	fmt.Printf("%-22s %t\n", "just cloned voice", p.HasJustClonedVoice)
	fmt.Println()
	if v.IsOnboarded {
		fmt.Println("onboarded")
		return
	}
	fmt.Printf("next step: %s (%s)\n", v.MissingStep, v.MissingStep.Label())
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

var onboardingStatusCmd = &cobra.Command{
	Use:   "status <user-id>",
	Short: "Show onboarding progress and the next missing step",
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

		view, err := d.learner.Onboarding(cmd.Context(), id)
		if err != nil {
			return err
		}
		printOnboarding(view)
		return nil
	},
}

// patchFromFlags builds a Patch from the flags the user actually passed.
func patchFromFlags(cmd *cobra.Command) onboarding.Patch {
	var pa onboarding.Patch
	f := cmd.Flags()
	str := func(name string) *string {
		if !f.Changed(name) {
			return nil
		}
		v, _ := f.GetString(name)
		return &v
	}
	boolean := func(name string) *bool {
		if !f.Changed(name) {
			return nil
		}
		v, _ := f.GetBool(name)
		return &v
	}

	pa.MotherLanguage = str("mother")
	pa.StudyLanguage = str("study")
	pa.Dialect = str("dialect")
	pa.HasVoice = boolean("has-voice")
	pa.HasJustSelectedTopics = boolean("topics")
	pa.HasJustAcceptedTerms = boolean("terms")
	pa.HasJustClonedVoice = boolean("cloned-voice")
	if f.Changed("minutes") {
		m, _ := f.GetInt("minutes")
		pa.DailyStudyMinutes = &m
	}
	pa.ClearDailyStudyMinutes, _ = f.GetBool("clear-minutes")
	return pa
}

var onboardingSetCmd = &cobra.Command{
	Use:   "set <user-id>",
	Short: "Record completed onboarding screens",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseUserID(args[0])
		if err != nil {
			return err
		}
		patch := patchFromFlags(cmd)
		if patch.Empty() {
			return errors.New("nothing to set; pass at least one flag")
		}

		d, err := openDeps(cmd, false)
		if err != nil {
			return err
		}
		defer d.Close()

		view, err := d.learner.UpdateOnboarding(cmd.Context(), id, patch)
		if err != nil {
			return err
		}
		printOnboarding(view)
		return nil
	},
}

var onboardingResetCmd = &cobra.Command{
	Use:   "reset <user-id>",
	Short: "Clear a learner's onboarding progress",
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

		if _, err := d.learner.ResetOnboarding(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Println("onboarding progress cleared")
		return nil
	},
}

var onboardingNextCmd = &cobra.Command{
	Use:   "next <user-id> <current-step>",
	Short: "Show where a learner on current-step should be sent",
	Args:  cobra.ExactArgs(2),
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

		nav, err := d.learner.NextScreen(cmd.Context(), id, onboarding.Step(args[1]))
		if err != nil {
			return err
		}
		if !nav.Navigate {
			fmt.Printf("stay on %s\n", orDash(string(nav.Current)))
			return nil
		}
		target := string(nav.Target)
		if nav.Target == onboarding.StepNone {
			target = "home"
		}
		fmt.Printf("go to %s\n", target)
		return nil
	},
}

func addPatchFlags(f *pflag.FlagSet) {
	f.String("mother", "", "Mother language code")
	f.String("study", "", "Study language code")
	f.String("dialect", "", "Study dialect")
	f.Bool("has-voice", false, "Learner already has a cloned voice")
	f.Bool("topics", false, "Topics screen completed")
	f.Int("minutes", 0, "Daily study minutes")
	f.Bool("clear-minutes", false, "Clear daily study minutes")
	f.Bool("terms", false, "Terms accepted")
	f.Bool("cloned-voice", false, "Voice cloning completed")
}

func init() {
	addPatchFlags(onboardingSetCmd.Flags())

	onboardingCmd.AddCommand(onboardingStatusCmd)
	onboardingCmd.AddCommand(onboardingSetCmd)
	onboardingCmd.AddCommand(onboardingResetCmd)
	onboardingCmd.AddCommand(onboardingNextCmd)
}
