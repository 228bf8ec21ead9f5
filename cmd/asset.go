package cmd

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/s0up4200/pageblade/pageblade"
)

var assetOrderKeys = []string{
	string(pageblade.AssetOrderByWhenCreated),
	string(pageblade.AssetOrderBySlug),
	string(pageblade.AssetOrderBySize),
	string(pageblade.AssetOrderByFilename),
}

var (
	assetList        listFlags
	assetWebsiteID   string
	assetContentType string
	assetName        string
)

// assetCmd groups the asset commands
var assetCmd = &cobra.Command{
	Use:     "asset",
	Aliases: []string{"assets"},
	Short:   "Manage files served by websites",
}

var assetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List assets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateOrderBy(assetList.orderBy, assetOrderKeys...); err != nil {
			return err
		}
		opts, err := assetList.options(cmd)
		if err != nil {
			return err
		}
		req := pageblade.AssetListRequest{
			ListOptions: opts,
			WebsiteID:   assetWebsiteID,
			OrderBy:     pageblade.AssetOrderBy(assetList.orderBy),
		}
		return runList(cmd, &assetList,
			func(ctx context.Context) (*pageblade.Page[pageblade.Asset], error) {
				return client.ListAssets(ctx, &req, callOptions()...)
			},
			func(ctx context.Context) ([]pageblade.Asset, error) {
				return client.AllAssets(ctx, req, callOptions()...)
			},
		)
	},
}

var assetGetCmd = &cobra.Command{
	Use:   "get <asset-id>",
	Short: "Show an asset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asset, err := client.GetAsset(commandContext(cmd), args[0], callOptions()...)
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), asset)
	},
}

var assetUploadCmd = &cobra.Command{
	Use:   "upload <website-id> <file>...",
	Short: "Upload files to a website",
	Long: `Upload one or more files to a website. The content type is taken from
--content-type, else guessed from the file extension and contents.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		websiteID, paths := args[0], args[1:]
		if assetName != "" && len(paths) > 1 {
			return fmt.Errorf("--name can only be used with a single file")
		}

		files := make([]pageblade.UploadFile, 0, len(paths))
		for _, path := range paths {
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", path, err)
			}
			defer f.Close()

			contentType := assetContentType
			if contentType == "" {
				contentType, err = detectContentType(path, f)
				if err != nil {
					return err
				}
			}

			name := filepath.Base(path)
			if assetName != "" {
				name = assetName
			}

			files = append(files, pageblade.UploadFile{
				Filename:    name,
				ContentType: contentType,
				Data:        f,
			})
		}

		assets, result := client.UploadAssets(commandContext(cmd), websiteID, files, batchOptions()...)

		uploaded := make([]*pageblade.Asset, 0, len(assets))
		for _, a := range assets {
			if a != nil {
				uploaded = append(uploaded, a)
			}
		}
		if len(result.Failed) > 0 {
			if err := printResult(cmd.OutOrStdout(), summarizeBatch(result)); err != nil {
				return err
			}
			return result.Err()
		}
		return printResult(cmd.OutOrStdout(), uploaded)
	},
}

var assetDeleteCmd = &cobra.Command{
	Use:   "delete <asset-id>...",
	Short: "Delete one or more assets",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result := client.DeleteAssets(commandContext(cmd), args, batchOptions()...)
		if err := printResult(cmd.OutOrStdout(), summarizeBatch(result)); err != nil {
			return err
		}
		return result.Err()
	},
}

// detectContentType guesses the media type of a file from its extension,
// falling back to sniffing its first bytes. The reader is rewound.
func detectContentType(path string, r io.ReadSeeker) (string, error) {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		return ct, nil
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to rewind %s: %w", path, err)
	}
	return http.DetectContentType(head[:n]), nil
}

func init() {
	assetList.register(assetListCmd, assetOrderKeys...)
	assetListCmd.Flags().StringVar(&assetWebsiteID, "website", "", "only list assets of this website")

	assetUploadCmd.Flags().StringVar(&assetContentType, "content-type", "", "content type sent for every file")
	assetUploadCmd.Flags().StringVar(&assetName, "name", "", "filename to store a single upload under")

	assetCmd.AddCommand(
		assetListCmd,
		assetGetCmd,
		assetUploadCmd,
		assetDeleteCmd,
	)
}
