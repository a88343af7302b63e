package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/piwi3910/giftwrap/internal/model"
	"github.com/piwi3910/giftwrap/internal/project"
	"github.com/piwi3910/giftwrap/internal/shell"
)

// shell: edit orders interactively on stdin/stdout.
func shellCmd() *cobra.Command {
	var (
		id  int
		dir string
	)
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Edit an order interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !verbose {
				model.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelWarn})))
			}
			if !cmd.Flags().Changed("id") {
				id = appCfg.StartOrderID
			}
			order, err := model.NewOrder(id)
			if err != nil {
				return err
			}
			store, err := project.LoadTemplates(templatePath)
			if err != nil {
				return err
			}
			dir = exportDir(dir)
			if err := ensureDir(dir); err != nil {
				return err
			}

			sh := shell.New(order, shell.Options{ExportDir: dir, Templates: &store})
			return sh.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVar(&id, "id", 1, "first order number (default from config start_order_id)")
	cmd.Flags().StringVar(&dir, "dir", "", "export directory (default from config export_dir)")
	return cmd
}
