package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/s0up4200/pageblade/pageblade"
)

var websiteOrderKeys = []string{
	string(pageblade.WebsiteOrderByWhenCreated),
	string(pageblade.WebsiteOrderByWhenUpdated),
}

var (
	websiteList   listFlags
	websiteCreate payloadFlags
	websiteUpdate payloadFlags
)

// websiteCmd groups the website commands
var websiteCmd = &cobra.Command{
	Use:     "website",
	Aliases: []string{"websites", "site"},
	Short:   "Manage websites",
}

var websiteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List websites",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateOrderBy(websiteList.orderBy, websiteOrderKeys...); err != nil {
			return err
		}
		opts, err := websiteList.options(cmd)
		if err != nil {
			return err
		}
		req := pageblade.WebsiteListRequest{
			ListOptions: opts,
			OrderBy:     pageblade.WebsiteOrderBy(websiteList.orderBy),
		}
		return runList(cmd, &websiteList,
			func(ctx context.Context) (*pageblade.Page[pageblade.Website], error) {
				return client.ListWebsites(ctx, &req, callOptions()...)
			},
			func(ctx context.Context) ([]pageblade.Website, error) {
				return client.AllWebsites(ctx, req, callOptions()...)
			},
		)
	},
}

var websiteGetCmd = &cobra.Command{
	Use:   "get <website-id>",
	Short: "Show a website",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		website, err := client.GetWebsite(commandContext(cmd), args[0], callOptions()...)
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), website)
	},
}

var websiteCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a website",
	Long: `Create a website from a JSON or YAML body, for example:

  pageblade website create --data '{"name": "Docs", "subdomain": "docs"}'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var req pageblade.WebsiteCreateRequest
		if err := websiteCreate.decode(cmd, &req); err != nil {
			return err
		}
		website, err := client.CreateWebsite(commandContext(cmd), &req, callOptions()...)
		if err != nil {
			return err
		}
		logger.Info().Str("website_id", website.ID).Msg("Website created")
		return printResult(cmd.OutOrStdout(), website)
	},
}

var websiteUpdateCmd = &cobra.Command{
	Use:   "update <website-id>",
	Short: "Update a website",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var req pageblade.WebsiteUpdateRequest
		if err := websiteUpdate.decode(cmd, &req); err != nil {
			return err
		}
		website, err := client.UpdateWebsite(commandContext(cmd), args[0], &req, callOptions()...)
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), website)
	},
}

var websiteDuplicateCmd = &cobra.Command{
	Use:   "duplicate <website-id>",
	Short: "Duplicate a website",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		website, err := client.DuplicateWebsite(commandContext(cmd), args[0], callOptions()...)
		if err != nil {
			return err
		}
		logger.Info().Str("source_id", args[0]).Str("website_id", website.ID).Msg("Website duplicated")
		return printResult(cmd.OutOrStdout(), website)
	},
}

var websiteDeleteCmd = &cobra.Command{
	Use:   "delete <website-id>...",
	Short: "Delete one or more websites",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result := client.DeleteWebsites(commandContext(cmd), args, batchOptions()...)
		if err := printResult(cmd.OutOrStdout(), summarizeBatch(result)); err != nil {
			return err
		}
		return result.Err()
	},
}

var websiteDownloadCmd = &cobra.Command{
	Use:   "download <website-id>",
	Short: "Request a downloadable archive of a website",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		download, err := client.DownloadWebsite(commandContext(cmd), args[0], callOptions()...)
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), download)
	},
}

func init() {
	websiteList.register(websiteListCmd, websiteOrderKeys...)
	websiteCreate.register(websiteCreateCmd)
	websiteUpdate.register(websiteUpdateCmd)

	websiteCmd.AddCommand(
		websiteListCmd,
		websiteGetCmd,
		websiteCreateCmd,
		websiteUpdateCmd,
		websiteDuplicateCmd,
		websiteDeleteCmd,
		websiteDownloadCmd,
	)
}
