package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/giftwrap/internal/project"
)

// backup export|import: copy config and templates to or from one file.
func backupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Back up or restore config and templates",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "export <file>",
		Short: "Write config and templates to a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := project.LoadTemplates(templatePath)
			if err != nil {
				return err
			}
			if err := project.ExportAllData(args[0], appCfg, store); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Backed up config and %d template(s) to %s\n", len(store.Templates), args[0])
			return nil
		},
	}, &cobra.Command{
		Use:   "import <file>",
		Short: "Restore config and templates from a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backup, err := project.ImportAllData(args[0])
			if err != nil {
				return err
			}
			if err := project.SaveAppConfig(configPath, backup.Config); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			if err := project.SaveTemplates(templatePath, backup.Templates); err != nil {
				return fmt.Errorf("failed to save templates: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Restored config to %s and %d template(s) to %s\n",
				configPath, len(backup.Templates.Templates), templatePath)
			return nil
		},
	})
	return cmd
}
