package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/rebootkit/pkg/pending"
)

var removeContinueOnError bool

func init() {
	fileCmd := newRemoveFileCmd()
	folderCmd := newRemoveFolderCmd()
	for _, cmd := range []*cobra.Command{fileCmd, folderCmd} {
		cmd.Flags().BoolVar(&removeContinueOnError, "continue-on-error", true,
			"Log failures and continue instead of escalating")
	}
	rootCmd.AddCommand(fileCmd)
	rootCmd.AddCommand(folderCmd)
}

func newRemoveFileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-file <source>",
		Short: "Schedule a file deletion for the next reboot",
		Long: `The remove-file command schedules a file for deletion during the next
boot sequence. The pending-operations list is additive, so scheduling the
same file twice is harmless.

Example:
  rebootctl remove-file "C:\Program Files\App\locked.dll"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			opts := &pending.RemoveOptions{ContinueOnError: removeContinueOnError}
			if err := c.RemoveFileOnReboot(args[0], opts); err != nil {
				return err
			}
			printSuccess("Deletion scheduled: %s\n", args[0])
			return nil
		},
	}
}

func newRemoveFolderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-folder <source>",
		Short: "Schedule a folder deletion for the next reboot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			opts := &pending.RemoveOptions{ContinueOnError: removeContinueOnError}
			if err := c.RemoveFolderOnReboot(args[0], opts); err != nil {
				return err
			}
			printSuccess("Deletion scheduled: %s\n", args[0])
			return nil
		},
	}
}
