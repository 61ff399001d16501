package system

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/config"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/service/permission"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/store/entstore"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/pkg/database"
)

// NewSeedCommand provisions the system stakeholder roles for one fund.
// Safe to re-run: existing roles are left untouched.
func NewSeedCommand() *cobra.Command {
	var fundIDStr string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Provision system stakeholder roles for a fund",
		RunE: func(cmd *cobra.Command, args []string) error {
			fundID, err := uuid.Parse(fundIDStr)
			if err != nil {
				return fmt.Errorf("invalid --fund value: %w", err)
			}

			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			client, err := database.NewEntClient(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to create ent client: %w", err)
			}
			defer client.Close()

			svc := permission.NewService(
				entstore.NewRoleStore(client),
				entstore.NewGrantStore(client),
				entstore.NewOverrideStore(client),
				nil,
			)

			timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			roles, err := svc.InitializeRolesForFund(ctx, fundID)
			if err != nil {
				return fmt.Errorf("failed to provision roles: %w", err)
			}

			fmt.Printf("Fund %s has %d system roles:\n", fundID, len(roles))
			for _, r := range roles {
				fmt.Printf("  %-24s %s\n", r.BaseType, r.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fundIDStr, "fund", "", "fund UUID to provision roles for")
	_ = cmd.MarkFlagRequired("fund")

	return cmd
}
