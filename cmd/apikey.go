package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/TasseDeCafe/app-monorepo-template-sub005/internal/apikey"
)

var apikeyCmd = &cobra.Command{
	Use:   "apikey",
	Short: "Generate or check time-windowed frontend keys",
}

func frontendKeys(cmd *cobra.Command) (*apikey.Generator, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	keys, err := cfg.FrontendKeys()
	if err != nil {
		return nil, err
	}
	if keys == nil {
		return nil, errors.New("no frontend key secret configured; set LINGO_FRONTEND_KEY_SECRET")
	}
	return keys, nil
}

var apikeyGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print the key for the current window",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		keys, err := frontendKeys(cmd)
		if err != nil {
			return err
		}
		now := time.Now()
		fmt.Println(keys.Key(now))
		fmt.Printf("valid until %s\n", keys.Expires(now).Local().Format(time.RFC3339))
		return nil
	},
}

var apikeyVerifyCmd = &cobra.Command{
	Use:   "verify <key>",
	Short: "Check whether a key is currently accepted",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		keys, err := frontendKeys(cmd)
		if err != nil {
			return err
		}
		if !keys.Verify(args[0], time.Now()) {
			return errors.New("key rejected")
		}
		fmt.Println("key accepted")
		return nil
	},
}

func init() {
	apikeyCmd.AddCommand(apikeyGenerateCmd)
	apikeyCmd.AddCommand(apikeyVerifyCmd)
}
