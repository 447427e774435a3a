package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pdfpress/pdfpress/pkg/compress"
	"github.com/pdfpress/pdfpress/pkg/server"
	"github.com/pdfpress/pdfpress/pkg/util/console"
)

var port int

func newServerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the PDF compression backend",
		RunE:  startServer,
		Args:  cobra.NoArgs,
	}

	cmd.Flags().IntVar(&port, "port", 0, "Server port, defaults to the PORT environment variable")
	return cmd
}

func startServer(cmd *cobra.Command, args []string) error {
	var err error
	if port == 0 {
		portEnv := os.Getenv("PORT")
		if portEnv == "" {
			return fmt.Errorf("--port flag or PORT env must be defined")
		}
		port, err = strconv.Atoi(portEnv)
		if err != nil {
			return fmt.Errorf("Failed to convert PORT %s to integer", portEnv)
		}
	}

	console.Debugf("Preparing to start server on port %d", port)

	s := server.NewServer(port, compress.NewCompressor())
	return s.Start()
}
