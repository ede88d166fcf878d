package commands

import (
	"github.com/spf13/cobra"

	"mozciphers/internal/generate"
)

func Execute() error {
	root := &cobra.Command{
		Use:   "mozciphers <firefox-source-dir> <openssl-source-dir>",
		Short: "Generate the client cipher list from Firefox and OpenSSL sources",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Usage only helps with argument errors, not pipeline failures.
			cmd.SilenceUsage = true
			return generate.Run(generate.Config{
				FirefoxRoot: args[0],
				OpenSSLRoot: args[1],
				Out:         cmd.OutOrStdout(),
				Diag:        cmd.ErrOrStderr(),
			})
		},
	}
	return root.Execute()
}
