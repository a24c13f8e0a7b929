package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/rebootkit/pkg/pending"
)

var (
	keySID             string
	keyDeleteIfExist   bool
	keyContinueOnError bool
)

func init() {
	cmd := newVolatileKeyCmd()
	cmd.Flags().StringVar(&keySID, "sid", "",
		"Rewrite a HKEY_CURRENT_USER key onto HKEY_USERS under this SID")
	cmd.Flags().BoolVar(&keyDeleteIfExist, "delete-if-exist", false,
		"Delete and recreate the key if it already exists")
	cmd.Flags().BoolVar(&keyContinueOnError, "continue-on-error", true,
		"Log failures and continue instead of escalating")
	rootCmd.AddCommand(cmd)
}

func newVolatileKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create-volatile-key <key>",
		Short: "Create a volatile registry key",
		Long: `The create-volatile-key command creates a registry key with the
volatile option set. The key lives only in memory and is discarded when the
hosting hive unloads at logoff or shutdown, which makes it a natural
"reboot pending" marker.

Example:
  rebootctl create-volatile-key "HKEY_LOCAL_MACHINE\SOFTWARE\MyApp\RebootPending"
  rebootctl create-volatile-key "HKCU\Software\MyApp\Session" --sid S-1-5-21-1234-1001`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			opts := &pending.KeyOptions{
				SID:             keySID,
				DeleteIfExist:   keyDeleteIfExist,
				ContinueOnError: keyContinueOnError,
			}
			if err := c.CreateVolatileKey(args[0], opts); err != nil {
				return err
			}
			printSuccess("Volatile key created: %s\n", args[0])
			return nil
		},
	}
}
