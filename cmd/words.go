package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/TasseDeCafe/app-monorepo-template-sub005/internal/store"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Record and inspect learned words",
}

var wordsAddCmd = &cobra.Command{
	Use:   "add <user-id> <word>",
	Short: "Record a learned word",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseUserID(args[0])
		if err != nil {
			return err
		}
		language, _ := cmd.Flags().GetString("lang")
		atFlag, _ := cmd.Flags().GetString("at")

		var at time.Time
		if atFlag != "" {
			at, err = time.Parse(time.RFC3339, atFlag)
			if err != nil {
				return fmt.Errorf("--at must be RFC 3339: %w", err)
			}
		}

		d, err := openDeps(cmd, false)
		if err != nil {
			return err
		}
		defer d.Close()

		seq, err := d.learner.RecordWord(cmd.Context(), id, args[1], language, at)
		if err != nil {
			return err
		}
		fmt.Printf("recorded #%d\n", seq)
		return nil
	},
}

var wordsListCmd = &cobra.Command{
	Use:   "list <user-id>",
	Short: "List a learner's recorded words",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseUserID(args[0])
		if err != nil {
			return err
		}
		limit, _ := cmd.Flags().GetInt("limit")
		language, _ := cmd.Flags().GetString("lang")

		d, err := openDeps(cmd, false)
		if err != nil {
			return err
		}
		defer d.Close()

		events, err := d.store.WordRepo().QueryWords(cmd.Context(), id, store.QueryOpts{Limit: limit, Language: language})
		if err != nil {
			return fmt.Errorf("query words: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No words recorded.")
			return nil
		}

		// Header.
		fmt.Printf("%-6s  %-19s  %-4s  %s\n", "Seq", "Learned", "Lang", "Word")
		fmt.Println(strings.Repeat("─", 60))

		for _, e := range events {
			fmt.Printf("%-6d  %-19s  %-4s  %s\n",
				e.Sequence,
				e.LearnedAt.Local().Format("2006-01-02 15:04:05"),
				e.Language,
				e.Word,
			)
		}
		return nil
	},
}

var wordsStreakCmd = &cobra.Command{
	Use:   "streak <user-id>",
	Short: "Show a learner's study streak",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseUserID(args[0])
		if err != nil {
			return err
		}
		tz, _ := cmd.Flags().GetString("tz")
		loc := time.Local
		if tz != "" {
			loc, err = time.LoadLocation(tz)
			if err != nil {
				return fmt.Errorf("unknown time zone %q: %w", tz, err)
			}
		}

		d, err := openDeps(cmd, false)
		if err != nil {
			return err
		}
		defer d.Close()

		view, err := d.learner.Streak(cmd.Context(), id, loc)
		if err != nil {
			return err
		}
		today := "no"
		if view.ActiveToday {
			today = "yes"
		}
		fmt.Printf("current streak  %d days\n", view.Current)
		fmt.Printf("longest streak  %d days\n", view.Longest)
		fmt.Printf("studied today   %s\n", today)
		fmt.Printf("active days     %d\n", view.TotalDays)
		fmt.Printf("words learned   %d\n", view.Words)
		return nil
	},
}

func init() {
	wordsAddCmd.Flags().String("lang", "", "Language code of the word")
	_ = wordsAddCmd.MarkFlagRequired("lang")
	wordsAddCmd.Flags().String("at", "", "When the word was learned (RFC 3339, default now)")

	wordsListCmd.Flags().Int("limit", 50, "Maximum number of words to list")
	wordsListCmd.Flags().String("lang", "", "Only show words in this language")

	wordsStreakCmd.Flags().String("tz", "", "IANA time zone for day boundaries (default local)")

	wordsCmd.AddCommand(wordsAddCmd)
	wordsCmd.AddCommand(wordsListCmd)
	wordsCmd.AddCommand(wordsStreakCmd)
}
