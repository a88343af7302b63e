package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/piwi3910/giftwrap/internal/model"
	"github.com/piwi3910/giftwrap/internal/project"
)

var (
	configPath   string
	templatePath string
	verbose      bool

	appCfg model.AppConfig
)

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "giftwrap",
		Short:        "Gift-wrap quote pricing and paper patterns",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			model.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

			if configPath == "" {
				configPath = project.DefaultConfigPath()
			}
			if templatePath == "" {
				templatePath = project.DefaultTemplatePath()
			}

			cfg, err := project.LoadAppConfig(configPath)
			if err != nil {
				return err
			}
			cfg.Apply()
			appCfg = cfg
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.giftwrap/config.json)")
	root.PersistentFlags().StringVar(&templatePath, "templates", "", "template store (default ~/.giftwrap/templates.json)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(quoteCmd(), compareCmd(), orderCmd(), patternCmd(), templateCmd(), backupCmd(), shellCmd())
	return root
}

func exportDir(flag string) string {
	if flag != "" {
		return flag
	}
	if appCfg.ExportDir != "" {
		return appCfg.ExportDir
	}
	return "."
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
