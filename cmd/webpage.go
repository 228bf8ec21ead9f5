package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/s0up4200/pageblade/pageblade"
)

var webpageOrderKeys = []string{
	string(pageblade.WebpageOrderByWhenCreated),
	string(pageblade.WebpageOrderByWhenUpdated),
	string(pageblade.WebpageOrderByWhenPublished),
	string(pageblade.WebpageOrderBySlug),
	string(pageblade.WebpageOrderByRedirectURL),
}

var (
	webpageList      listFlags
	webpageWebsiteID string
	webpageCreate    payloadFlags
	webpageUpdate    payloadFlags
	webpageHTMLDraft bool
	webpageVersion   int
)

// webpageCmd groups the webpage commands
var webpageCmd = &cobra.Command{
	Use:     "webpage",
	Aliases: []string{"webpages", "page"},
	Short:   "Manage webpages and their published versions",
}

var webpageListCmd = &cobra.Command{
	Use:   "list",
	Short: "List webpages",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateOrderBy(webpageList.orderBy, webpageOrderKeys...); err != nil {
			return err
		}
		opts, err := webpageList.options(cmd)
		if err != nil {
			return err
		}
		req := pageblade.WebpageListRequest{
			ListOptions: opts,
			WebsiteID:   webpageWebsiteID,
			OrderBy:     pageblade.WebpageOrderBy(webpageList.orderBy),
		}
		return runList(cmd, &webpageList,
			func(ctx context.Context) (*pageblade.Page[pageblade.Webpage], error) {
				return client.ListWebpages(ctx, &req, callOptions()...)
			},
			func(ctx context.Context) ([]pageblade.Webpage, error) {
				return client.AllWebpages(ctx, req, callOptions()...)
			},
		)
	},
}

var webpageGetCmd = &cobra.Command{
	Use:   "get <webpage-id>",
	Short: "Show a webpage",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		webpage, err := client.GetWebpage(commandContext(cmd), args[0], callOptions()...)
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), webpage)
	},
}

var webpageCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a webpage",
	Long: `Create a webpage from a JSON or YAML body, for example:

  pageblade webpage create --data '{"name": "Home", "slug": "home", "websiteId": "..."}'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var req pageblade.WebpageCreateRequest
		if err := webpageCreate.decode(cmd, &req); err != nil {
			return err
		}
		webpage, err := client.CreateWebpage(commandContext(cmd), &req, callOptions()...)
		if err != nil {
			return err
		}
		logger.Info().Str("webpage_id", webpage.ID).Msg("Webpage created")
		return printResult(cmd.OutOrStdout(), webpage)
	},
}

var webpageUpdateCmd = &cobra.Command{
	Use:   "update <webpage-id>",
	Short: "Update a webpage",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var req pageblade.WebpageUpdateRequest
		if err := webpageUpdate.decode(cmd, &req); err != nil {
			return err
		}
		webpage, err := client.UpdateWebpage(commandContext(cmd), args[0], &req, callOptions()...)
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), webpage)
	},
}

var webpagePublishCmd = &cobra.Command{
	Use:   "publish <webpage-id> [version]",
	Short: "Publish the draft, or make an earlier version live again",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext(cmd)

		var (
			webpage *pageblade.Webpage
			err     error
		)
		if len(args) == 2 {
			n, convErr := parseVersion(args[1])
			if convErr != nil {
				return convErr
			}
			webpage, err = client.PublishVersion(ctx, args[0], n, callOptions()...)
		} else {
			webpage, err = client.PublishDraft(ctx, args[0], callOptions()...)
		}
		if err != nil {
			return err
		}

		logger.Info().
			Str("webpage_id", webpage.ID).
			Int("version", webpage.LatestVersion()).
			Msg("Webpage published")
		return printResult(cmd.OutOrStdout(), webpage)
	},
}

var webpageDuplicateCmd = &cobra.Command{
	Use:   "duplicate <webpage-id>",
	Short: "Duplicate a webpage",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		webpage, err := client.DuplicateWebpage(commandContext(cmd), args[0], callOptions()...)
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), webpage)
	},
}

var webpageDeleteCmd = &cobra.Command{
	Use:   "delete <webpage-id>...",
	Short: "Delete one or more webpages",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result := client.DeleteWebpages(commandContext(cmd), args, batchOptions()...)
		if err := printResult(cmd.OutOrStdout(), summarizeBatch(result)); err != nil {
			return err
		}
		return result.Err()
	},
}

var webpageHTMLCmd = &cobra.Command{
	Use:   "html <webpage-id>",
	Short: "Print the HTML of a webpage",
	Long: `Print the live HTML of a webpage. Use --draft for the unpublished draft
or --version for a specific published version.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext(cmd)

		var (
			doc *pageblade.HTMLDocument
			err error
		)
		switch {
		case webpageHTMLDraft:
			doc, err = client.GetWebpageDraftHTML(ctx, args[0], callOptions()...)
		case cmd.Flags().Changed("version"):
			doc, err = client.GetWebpagePublishedVersionHTML(ctx, args[0], webpageVersion, callOptions()...)
		default:
			doc, err = client.GetWebpagePublishedHTML(ctx, args[0], callOptions()...)
		}
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), doc.HTML)
		return err
	},
}

// parseVersion parses a published version number
func parseVersion(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid version: %s (must be a positive integer)", s)
	}
	return n, nil
}

func init() {
	webpageList.register(webpageListCmd, webpageOrderKeys...)
	webpageListCmd.Flags().StringVar(&webpageWebsiteID, "website", "", "only list webpages of this website")
	webpageCreate.register(webpageCreateCmd)
	webpageUpdate.register(webpageUpdateCmd)

	webpageHTMLCmd.Flags().BoolVar(&webpageHTMLDraft, "draft", false, "print the draft instead of the live page")
	webpageHTMLCmd.Flags().IntVar(&webpageVersion, "version", 0, "print a specific published version")
	webpageHTMLCmd.MarkFlagsMutuallyExclusive("draft", "version")

	webpageCmd.AddCommand(
		webpageListCmd,
		webpageGetCmd,
		webpageCreateCmd,
		webpageUpdateCmd,
		webpagePublishCmd,
		webpageDuplicateCmd,
		webpageDeleteCmd,
		webpageHTMLCmd,
	)
}
