package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdfpress/pdfpress/pkg/compress"
	"github.com/pdfpress/pdfpress/pkg/util/console"
)

var (
	compressLevel  string
	compressOutput string
)

func newCompressCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compress <file.pdf>",
		Short: "Compress a PDF file",
		RunE:  runCompress,
		Args:  cobra.ExactArgs(1),
	}

	cmd.Flags().StringVarP(&compressLevel, "level", "l", "recommended", "Compression level: less, recommended or extreme")
	cmd.Flags().StringVarP(&compressOutput, "output", "o", "", "Output file, defaults to <name>_compressed.pdf")

	return cmd
}

func runCompress(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	level, err := compress.ParseLevel(compressLevel)
	if err != nil {
		return err
	}

	pdf, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("Failed to read %s: %w", inputPath, err)
	}

	result, err := compress.NewCompressor().Compress(pdf, level)
	if err != nil {
		return err
	}

	outputPath := compressOutput
	if outputPath == "" {
		outputPath = compress.CompressedFilename(inputPath)
	}
	if err := os.WriteFile(outputPath, result.Data, 0o644); err != nil {
		return fmt.Errorf("Failed to write %s: %w", outputPath, err)
	}

	console.Infof("Wrote %s (%d -> %d bytes)", outputPath, result.OriginalSize, result.CompressedSize)
	if result.CompressedSize >= result.OriginalSize {
		console.Warn("Compressed file is not smaller than the original, it may already be optimized")
	}
	return nil
}
