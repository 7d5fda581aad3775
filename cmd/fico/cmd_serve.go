package main

import (
	"github.com/spf13/cobra"

	"github.com/Raviisinghh-stack/Fico-implementation/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the assistant as a local JSON API",
	Long: `Start an HTTP server exposing the assistant:

  POST   /api/v1/query      {intent, query, document}
  POST   /api/v1/fsd        multipart: file, text
  POST   /api/v1/format     {text}
  POST   /api/v1/speech     {text}
  GET    /api/v1/audio/:id
  DELETE /api/v1/audio/:id
  GET    /healthz`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := cfg.Server.Addr
		if serveAddr != "" {
			addr = serveAddr
		}

		srv := server.New(newService(), server.Options{
			Addr:           addr,
			RequestTimeout: cfg.RequestTimeout,
			Logger:         logger,
		})
		return srv.Run(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config, 127.0.0.1:8080)")
}
