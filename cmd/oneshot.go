package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"smallt/internal/ui"
)

// newAddCmd appends a task without entering the shell.
func newAddCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text>...",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, th, err := setup(opts)
			if err != nil {
				return err
			}
			list, err := st.Load()
			if err != nil {
				return ioErr(err)
			}
			list, err = list.Add(strings.Join(args, " "))
			if err != nil {
				return err
			}
			if err := st.Save(list); err != nil {
				return ioErr(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), th.Success.Render("Added: "+list[len(list)-1].Text))
			return nil
		},
	}
}

// newListCmd prints the numbered task list and exits.
func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show all tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, th, err := setup(opts)
			if err != nil {
				return err
			}
			list, err := st.Load()
			if err != nil {
				return ioErr(err)
			}
			if len(list) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tasks yet.")
				return nil
			}
			for _, line := range ui.TaskLines(th, list) {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "smallt %s\n", Version)
		},
	}
}
