package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/pageblade/config"
	"github.com/s0up4200/pageblade/pageblade"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *pageblade.Client

	// Global flags
	tenantID     string
	outputFormat string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pageblade",
	Short: "Manage websites, webpages and assets hosted on PageBlade",
	Long: `pageblade is a CLI for the PageBlade content-hosting API.

It manages websites, their webpages and uploaded assets, tenants and usage
statistics. Credentials are read from the config file or the PAGEBLADE_URL
and PAGEBLADE_API_KEY environment variables.`,
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./pageblade.yaml)")
	rootCmd.PersistentFlags().StringVarP(&tenantID, "tenant", "t", "", "tenant to act on, overriding api.default_tenant")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format (json or yaml)")

	// Add subcommands
	rootCmd.AddCommand(websiteCmd)
	rootCmd.AddCommand(webpageCmd)
	rootCmd.AddCommand(assetCmd)
	rootCmd.AddCommand(tenantCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the configuration and client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	if outputFormat != "" {
		cfg.Output.Format = outputFormat
	}
	if cfg.Output.Format != "json" && cfg.Output.Format != "yaml" {
		return fmt.Errorf("invalid output format: %s (must be 'json' or 'yaml')", cfg.Output.Format)
	}

	client, err = newClient(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create PageBlade client: %w", err)
	}

	logger.Debug().
		Str("base_url", client.BaseURL()).
		Str("tenant", pageblade.ResolveTenant(tenantID, cfg.API.DefaultTenant)).
		Msg("PageBlade client ready")

	return nil
}

// newClient builds a client from the loaded configuration
func newClient(cfg *config.Config, logger zerolog.Logger) (*pageblade.Client, error) {
	policy := pageblade.DefaultRetryPolicy()
	policy.MaxRetries = cfg.Retry.MaxRetries
	if cfg.Retry.InitialBackoff > 0 {
		policy.InitialInterval = cfg.Retry.InitialBackoff
	}
	if cfg.Retry.MaxBackoff > 0 {
		policy.MaxInterval = cfg.Retry.MaxBackoff
	}

	opts := []pageblade.Option{
		pageblade.WithLogger(logger),
		pageblade.WithUserAgent("pageblade-cli/" + version),
		pageblade.WithRetryPolicy(policy),
	}
	if cfg.API.URL != "" {
		opts = append(opts, pageblade.WithBaseURL(cfg.API.URL))
	}
	if cfg.API.APIKey != "" {
		opts = append(opts, pageblade.WithAPIKey(cfg.API.APIKey))
	}
	if cfg.API.DefaultTenant != "" {
		opts = append(opts, pageblade.WithDefaultTenant(cfg.API.DefaultTenant))
	}
	if cfg.API.Timeout > 0 {
		opts = append(opts, pageblade.WithTimeout(cfg.API.Timeout))
	}
	if cfg.API.InsecureSkipVerify {
		opts = append(opts, pageblade.WithInsecureSkipVerify())
	}
	if cfg.API.Tracing {
		opts = append(opts, pageblade.WithTracing())
	}

	return pageblade.NewClient(opts...)
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format, colour only on a terminal
	fd := os.Stderr.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !tty,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// callOptions returns the per-call options selected by global flags
func callOptions() []pageblade.CallOption {
	if tenantID == "" {
		return nil
	}
	return []pageblade.CallOption{pageblade.WithTenant(tenantID)}
}

// batchOptions returns the options applied to every batch command
func batchOptions() []pageblade.BatchOption {
	return []pageblade.BatchOption{
		pageblade.WithConcurrency(cfg.Output.BatchConcurrency),
		pageblade.WithCallOptions(callOptions()...),
	}
}

// commandContext returns the command's context, which is unset when a
// command runs outside Execute
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
