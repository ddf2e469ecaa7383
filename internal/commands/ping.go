package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPingCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check backend connectivity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := opts.setup()
			if err != nil {
				return err
			}
			if err := client.Ping(cmd.Context()); err != nil {
				return describeBackendError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Backend OK")
			return nil
		},
	}
}
