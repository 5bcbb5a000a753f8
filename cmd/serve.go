package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"

	"github.com/fincast/portfolio-calculator/internal/server"
)

var flagPort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the projection HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&flagPort, "port", "p", "8080", "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	srv := server.New()
	srv.Engine = newEngine()

	log.Printf("listening on :%s", flagPort)
	return fasthttp.ListenAndServe(":"+flagPort, srv.Handler())
}
