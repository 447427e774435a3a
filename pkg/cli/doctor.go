package cli

import (
	"github.com/spf13/cobra"

	"github.com/pdfpress/pdfpress/pkg/config"
	"github.com/pdfpress/pdfpress/pkg/doctor"
)

func newDoctorCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that Ghostscript and pip are installed and usable",
		RunE:  runDoctor,
		Args:  cobra.NoArgs,
	}
	addProjectDirFlag(cmd)
	return cmd
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, _, err := config.GetConfig(projectDirFlag)
	if err != nil {
		return err
	}
	return doctor.NewDoctor().Check(cfg)
}
