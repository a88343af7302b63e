package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/piwi3910/giftwrap/internal/model"
	"github.com/piwi3910/giftwrap/internal/project"
)

// template list|save|delete: manage the saved quote templates.
func templateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Manage saved quote templates",
	}
	cmd.AddCommand(templateListCmd(), templateSaveCmd(), templateDeleteCmd())
	return cmd
}

func templateListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := project.LoadTemplates(templatePath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(store.Templates) == 0 {
				fmt.Fprintln(out, "No templates saved.")
				return nil
			}
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, t := range store.Templates {
				fmt.Fprintf(w, "%s\t%s\t%s\n", t.Name, t.Description, t.Quote.Summary())
			}
			return w.Flush()
		},
	}
}

func templateSaveCmd() *cobra.Command {
	var (
		f           quoteFlags
		description string
	)
	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Save a quote configuration as a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := f.build()
			if err != nil {
				return err
			}
			store, err := project.LoadTemplates(templatePath)
			if err != nil {
				return err
			}
			if existing := store.FindByName(args[0]); existing != nil {
				store.Remove(existing.ID)
			}
			store.Add(model.NewQuoteTemplate(args[0], description, q))
			if err := project.SaveTemplates(templatePath, store); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved template %q: %s\n", args[0], q.Summary())
			return nil
		},
	}
	f.register(cmd)
	cmd.Flags().StringVar(&description, "description", "", "template description")
	return cmd
}

func templateDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := project.LoadTemplates(templatePath)
			if err != nil {
				return err
			}
			t := store.FindByName(args[0])
			if t == nil {
				return fmt.Errorf("no template named %q", args[0])
			}
			store.Remove(t.ID)
			if err := project.SaveTemplates(templatePath, store); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted template %q\n", args[0])
			return nil
		},
	}
}
