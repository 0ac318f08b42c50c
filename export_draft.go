package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pocketbase/pocketbase"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"firequote/config"
	"firequote/services"
)

// newExportDraftCmd exports the saved draft without starting the server.
func newExportDraftCmd(app *pocketbase.PocketBase, cfg config.Config, logger *zap.Logger) *cobra.Command {
	var (
		format string
		outDir string
	)
	cmd := &cobra.Command{
		Use:   "export-draft",
		Short: "Export the saved quote draft as a PDF, Excel or CSV file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := services.ParseFormat(format)
			if err != nil {
				return err
			}

			s, err := newSession(app, cfg, logger)
			if err != nil {
				return err
			}
			defer s.Close()

			if !s.RestoreDraft() {
				return errors.New("no saved draft to export")
			}
			doc, err := s.Export(f)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}
			path := filepath.Join(outDir, doc.FileName)
			if err := os.WriteFile(path, doc.Content, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "pdf", "document format: pdf, xlsx or csv")
	cmd.Flags().StringVar(&outDir, "out", ".", "output directory")
	return cmd
}
