// Package serve contains the HTTP API command.
package serve

import (
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"

	"github.com/Origon/StatementParser/internal/api"
	"github.com/Origon/StatementParser/internal/config"
)

var addr string

// Cmd runs the statement conversion HTTP API.
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the statement conversion HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := fiber.New(fiber.Config{
			AppName:   "statementparser",
			BodyLimit: 32 << 20,
		})
		h := &api.Handler{Log: config.Logger}
		h.Register(app)

		config.Logger.WithField("addr", addr).Info("Listening")
		return app.Listen(addr)
	},
}

func init() {
	Cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "Listen address")
}
