package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/TasseDeCafe/app-monorepo-template-sub005/internal/httpapi"
	"github.com/TasseDeCafe/app-monorepo-template-sub005/internal/lang"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the learner API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd, true)
		if err != nil {
			return err
		}
		defer d.Close()

		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = d.cfg.HTTP.Addr
		}

		keys, err := d.cfg.FrontendKeys()
		if err != nil {
			return fmt.Errorf("frontend keys: %w", err)
		}
		if keys == nil {
			d.log.Warn("frontend key check disabled; set LINGO_FRONTEND_KEY_SECRET to enable it")
		}

		if d.cfg.IsProduction() {
			gin.SetMode(gin.ReleaseMode)
		}
		srv := httpapi.NewServer(httpapi.Options{
			Learner:        d.learner,
			Catalog:        lang.Default,
			Keys:           keys,
			Logger:         d.log,
			AllowedOrigins: d.cfg.HTTP.AllowedOrigins,
		})

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return srv.Run(ctx, addr, d.cfg.HTTP.ShutdownTimeout)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides LINGO_HTTP_ADDR and config)")
}
