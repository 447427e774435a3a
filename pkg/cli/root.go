package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdfpress/pdfpress/pkg/global"
	"github.com/pdfpress/pdfpress/pkg/util/console"
)

var projectDirFlag string

func NewRootCommand() (*cobra.Command, error) {
	rootCmd := cobra.Command{
		Use:     "pdfpress",
		Short:   "Compress PDF files with Ghostscript",
		Version: fmt.Sprintf("%s (built %s)", global.Version, global.BuildTime),
		// This stops errors being printed because we print them in cmd/pdfpress/main.go
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if global.Verbose {
				console.SetLevel(console.DebugLevel)
			}
			console.SetColor(console.IsTTY(os.Stderr))
			cmd.SilenceUsage = true
		},
		SilenceErrors: true,
	}
	setPersistentFlags(&rootCmd)

	rootCmd.AddCommand(
		newSetupCommand(),
		newCompressCommand(),
		newServerCommand(),
		newDoctorCommand(),
	)

	return &rootCmd, nil
}

func setPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&global.Verbose, "verbose", "v", false, "Verbose output")
}

func addProjectDirFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&projectDirFlag, "project-dir", "D", "", "Project directory, defaults to current working directory")
}
