package cli

import (
	"github.com/spf13/cobra"

	"github.com/pdfpress/pdfpress/pkg/config"
	"github.com/pdfpress/pdfpress/pkg/setup"
	"github.com/pdfpress/pdfpress/pkg/util/console"
)

func newSetupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Install Ghostscript and the project's Python dependencies",
		Long: `Install the system packages the backend needs (Ghostscript by default)
through apt, then install Python dependencies with pip. The pip step only
runs if the system install succeeds.`,
		RunE: runSetup,
		Args: cobra.NoArgs,
	}
	addProjectDirFlag(cmd)
	return cmd
}

func runSetup(cmd *cobra.Command, args []string) error {
	cfg, projectDir, err := config.GetConfig(projectDirFlag)
	if err != nil {
		return err
	}
	console.Debugf("Using project directory %s", projectDir)

	installer := setup.NewInstaller()
	if err := installer.Run(cfg.Setup); err != nil {
		return err
	}

	console.Info("Setup complete")
	return nil
}
