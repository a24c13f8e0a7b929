package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/rebootkit/pkg/pending"
)

var (
	moveReplaceExisting bool
	moveContinueOnError bool
)

func init() {
	fileCmd := newMoveFileCmd()
	folderCmd := newMoveFolderCmd()
	for _, cmd := range []*cobra.Command{fileCmd, folderCmd} {
		cmd.Flags().BoolVarP(&moveReplaceExisting, "replace-existing", "r", false,
			"Allow the scheduled move to overwrite the destination")
		cmd.Flags().BoolVar(&moveContinueOnError, "continue-on-error", true,
			"Log failures and continue instead of escalating")
	}
	rootCmd.AddCommand(fileCmd)
	rootCmd.AddCommand(folderCmd)
}

func newMoveFileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move-file <source> <destination>",
		Short: "Schedule a file move for the next reboot",
		Long: `The move-file command schedules a file to be moved or renamed during
the next boot sequence, before most services start. Useful for replacing
files that are locked while Windows is running.

Example:
  rebootctl move-file "C:\staging\app.dll" "C:\Program Files\App\app.dll" --replace-existing`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			opts := &pending.MoveOptions{
				ReplaceExisting: moveReplaceExisting,
				ContinueOnError: moveContinueOnError,
			}
			if err := c.MoveFileOnReboot(args[0], args[1], opts); err != nil {
				return err
			}
			printSuccess("Move scheduled: %s -> %s\n", args[0], args[1])
			return nil
		},
	}
}

func newMoveFolderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move-folder <source> <destination>",
		Short: "Schedule a folder move for the next reboot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			opts := &pending.MoveOptions{
				ReplaceExisting: moveReplaceExisting,
				ContinueOnError: moveContinueOnError,
			}
			if err := c.MoveFolderOnReboot(args[0], args[1], opts); err != nil {
				return err
			}
			printSuccess("Move scheduled: %s -> %s\n", args[0], args[1])
			return nil
		},
	}
}
