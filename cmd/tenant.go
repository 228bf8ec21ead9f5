package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/pageblade/pageblade"
)

var tenantOrderKeys = []string{
	string(pageblade.TenantOrderByWhenCreated),
}

var (
	tenantList   listFlags
	tenantCreate payloadFlags
	tenantUpdate payloadFlags
)

// tenantCmd groups the tenant commands
var tenantCmd = &cobra.Command{
	Use:     "tenant",
	Aliases: []string{"tenants"},
	Short:   "Manage tenants and their limits",
}

var tenantListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tenants",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateOrderBy(tenantList.orderBy, tenantOrderKeys...); err != nil {
			return err
		}
		opts, err := tenantList.options(cmd)
		if err != nil {
			return err
		}
		req := pageblade.TenantListRequest{
			ListOptions: opts,
			OrderBy:     pageblade.TenantOrderBy(tenantList.orderBy),
		}
		return runList(cmd, &tenantList,
			func(ctx context.Context) (*pageblade.Page[pageblade.Tenant], error) {
				return client.ListTenants(ctx, &req)
			},
			func(ctx context.Context) ([]pageblade.Tenant, error) {
				return client.AllTenants(ctx, req)
			},
		)
	},
}

var tenantGetCmd = &cobra.Command{
	Use:   "get [tenant-id]",
	Short: "Show a tenant, by default the one selected by --tenant",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := tenantArg(args)
		if err != nil {
			return err
		}
		tenant, err := client.GetTenant(commandContext(cmd), id)
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), tenant)
	},
}

var tenantCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a tenant",
	Long: `Create a tenant from a JSON or YAML body, for example:

  pageblade tenant create --data '{"name": "Acme", "websitesLimit": 5}'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var req pageblade.TenantCreateRequest
		if err := tenantCreate.decode(cmd, &req); err != nil {
			return err
		}
		tenant, err := client.CreateTenant(commandContext(cmd), &req)
		if err != nil {
			return err
		}
		logger.Info().Str("tenant_id", tenant.ID).Msg("Tenant created")
		return printResult(cmd.OutOrStdout(), tenant)
	},
}

var tenantUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update the tenant selected by --tenant or api.default_tenant",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var req pageblade.TenantUpdateRequest
		if err := tenantUpdate.decode(cmd, &req); err != nil {
			return err
		}
		tenant, err := client.UpdateTenant(commandContext(cmd), &req, callOptions()...)
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), tenant)
	},
}

var tenantDeleteCmd = &cobra.Command{
	Use:   "delete <tenant-id>",
	Short: "Delete a tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := client.DeleteTenant(commandContext(cmd), args[0]); err != nil {
			return err
		}
		logger.Info().Str("tenant_id", args[0]).Msg("Tenant deleted")
		return nil
	},
}

// tenantArg returns the positional tenant id, else the global selection
func tenantArg(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if id := pageblade.ResolveTenant(tenantID, cfg.API.DefaultTenant); id != "" {
		return id, nil
	}
	return "", fmt.Errorf("no tenant given, pass an id or use --tenant")
}

func init() {
	tenantList.register(tenantListCmd, tenantOrderKeys...)
	tenantCreate.register(tenantCreateCmd)
	tenantUpdate.register(tenantUpdateCmd)

	tenantCmd.AddCommand(
		tenantListCmd,
		tenantGetCmd,
		tenantCreateCmd,
		tenantUpdateCmd,
		tenantDeleteCmd,
	)
}
