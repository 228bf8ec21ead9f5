package cmd

import (
	"github.com/spf13/cobra"
)

// statsCmd shows usage against limits
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show bandwidth, storage and website usage",
	Long: `Show usage against limits. Without --tenant the account-wide figures are
shown; with --tenant the figures of that tenant, including its tenant count.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := client.GetStatistics(commandContext(cmd), callOptions()...)
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), stats)
	},
}
