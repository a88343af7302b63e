package commands

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/piwi3910/giftwrap/internal/export"
	"github.com/piwi3910/giftwrap/internal/importer"
	"github.com/piwi3910/giftwrap/internal/model"
)

// order <file>: import quotes from CSV or Excel, print the receipt and export it.
func orderCmd() *cobra.Command {
	var (
		id     int
		dir    string
		pdf    bool
		xlsx   bool
		tags   bool
		dryRun bool
		strict bool
	)
	cmd := &cobra.Command{
		Use:   "order <file.csv|file.xlsx>",
		Short: "Import a batch of quotes and export the order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := importer.ImportFile(args[0])
			errOut := cmd.ErrOrStderr()
			for _, w := range res.Warnings {
				fmt.Fprintln(errOut, "warning:", w)
			}
			for _, e := range res.Errors {
				fmt.Fprintln(errOut, "error:", e)
			}
			if strict && len(res.Errors) > 0 {
				return fmt.Errorf("%d row(s) failed to import", len(res.Errors))
			}
			if len(res.Quotes) == 0 {
				return fmt.Errorf("no quotes imported from %s: %w", args[0], model.ErrEmptyOrder)
			}

			if !cmd.Flags().Changed("id") {
				id = appCfg.StartOrderID
			}
			order, err := model.NewOrder(id)
			if err != nil {
				return err
			}
			for _, q := range res.Quotes {
				order.Append(q)
			}

			now := time.Now()
			store := model.Settings().StoreName
			out := cmd.OutOrStdout()
			for _, line := range order.Receipt(store, now) {
				fmt.Fprintln(out, line)
			}
			if dryRun {
				return nil
			}

			dir = exportDir(dir)
			if err := ensureDir(dir); err != nil {
				return err
			}
			name, err := order.ExportTo(dir, store, now)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "Exported", filepath.Join(dir, name))

			base := filepath.Join(dir, strings.TrimSuffix(name, filepath.Ext(name)))
			if pdf {
				if err := export.ExportReceiptPDF(base+".pdf", order, now); err != nil {
					return err
				}
				fmt.Fprintln(out, "Exported", base+".pdf")
			}
			if xlsx {
				if err := export.ExportOrderXLSX(base+".xlsx", order); err != nil {
					return err
				}
				fmt.Fprintln(out, "Exported", base+".xlsx")
			}
			if tags {
				path := base + " - Tags.pdf"
				switch err := export.ExportGiftTags(path, order); {
				case err == nil:
					fmt.Fprintln(out, "Exported", path)
				case errors.Is(err, export.ErrNoLabels):
					fmt.Fprintln(errOut, "warning: no labelled quotes, skipping gift tags")
				default:
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&id, "id", 1, "order number (default from config start_order_id)")
	cmd.Flags().StringVar(&dir, "dir", "", "export directory (default from config export_dir)")
	cmd.Flags().BoolVar(&pdf, "pdf", false, "also write a PDF receipt")
	cmd.Flags().BoolVar(&xlsx, "xlsx", false, "also write an Excel workbook")
	cmd.Flags().BoolVar(&tags, "tags", false, "also write printable gift tags for labelled quotes")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the receipt without writing files")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail if any row is rejected")
	return cmd
}
