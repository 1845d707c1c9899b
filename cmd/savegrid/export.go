package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ukaji3/savegrid-go/pkg/savegrid"
	"github.com/ukaji3/savegrid-go/pkg/savegrid/exporter"
	"github.com/ukaji3/savegrid-go/pkg/savegrid/models"
	"github.com/ukaji3/savegrid-go/pkg/savegrid/output"
	"github.com/ukaji3/savegrid-go/pkg/savegrid/parser"
)

func newExportCmd() *cobra.Command {
	var (
		flags          inputFlags
		outputDir      string
		filename       string
		pageSize       string
		pageWidth      float64
		columnsPerPage int
	)

	cmd := &cobra.Command{
		Use:       "export (xlsx|pdf)",
		Short:     "Export the savings grid to a spreadsheet or PDF file",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"xlsx", "pdf"},
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := savegrid.ParseFormat(args[0])
			if err != nil {
				return err
			}
			s, err := newSession()
			if err != nil {
				return err
			}
			_, grid, err := generate(cmd, s, &flags)
			if err != nil {
				return err
			}

			opts, err := exportOptions(cmd, s, filename, pageSize, pageWidth, columnsPerPage)
			if err != nil {
				return err
			}

			a, err := exporter.New(s.logger).Export(format, grid, opts)
			if errors.Is(err, savegrid.ErrEmptyData) {
				return fmt.Errorf("%s: %w", s.bundle.Label("no_data"), err)
			}
			if err != nil {
				return err
			}

			dir := s.cfg.OutputDir
			if cmd.Flags().Changed("output-dir") {
				dir = outputDir
			}
			path, err := writeArtifact(dir, a)
			if err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			s.logger.WithField("path", path).Info("export written")
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", ".", "Directory to write the file to")
	cmd.Flags().StringVar(&filename, "filename", "", "Override the default file name")
	cmd.Flags().StringVar(&pageSize, "page-size", "", "PDF paper size: a4, letter or legal")
	cmd.Flags().Float64Var(&pageWidth, "page-width", 0, "PDF page width in millimetres (overrides --page-size width)")
	cmd.Flags().IntVar(&columnsPerPage, "columns-per-page", 0, "PDF cells per row (default: grid columns)")
	return cmd
}

func exportOptions(cmd *cobra.Command, s *session, filename, pageSize string, pageWidth float64, columnsPerPage int) (exporter.Options, error) {
	pdfCfg := s.cfg.PDF
	if cmd.Flags().Changed("page-size") {
		pdfCfg.PageSize = pageSize
	}
	if cmd.Flags().Changed("page-width") {
		pdfCfg.PageWidth = pageWidth
	}
	if cmd.Flags().Changed("columns-per-page") {
		pdfCfg.ColumnsPerPage = columnsPerPage
	}

	width, height, err := exporter.PageSize(pdfCfg.PageSize)
	if err != nil {
		return exporter.Options{}, err
	}
	if pdfCfg.PageWidth > 0 {
		width = pdfCfg.PageWidth
	}

	return exporter.Options{
		Options:        s.options(),
		Filename:       filename,
		PageWidth:      width,
		PageHeight:     height,
		ColumnsPerPage: pdfCfg.ColumnsPerPage,
	}, nil
}

// writeArtifact is the download step: it stores the artifact under dir.
func writeArtifact(dir string, a *models.Artifact) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, filepath.Base(a.Filename))
	if err := os.WriteFile(path, a.Data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func newReadCmd() *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "read [input.xlsx]",
		Short: "Read an exported workbook back as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]
			if _, err := os.Stat(inputPath); os.IsNotExist(err) {
				return fmt.Errorf("file not found: %s", inputPath)
			}

			sheet, err := parser.ReadSavingsFile(inputPath)
			if err != nil {
				return fmt.Errorf("reading %s: %w", inputPath, err)
			}

			data, err := output.SheetToJSON(sheet, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}
