package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/AndrejDratschuk/citadels-investor-portal-sub003/cmd/http"
	systemcmd "github.com/AndrejDratschuk/citadels-investor-portal-sub003/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "citadels",
	Short: "Citadels investor portal backend.",
	Long: `Citadels is the backend for a multi-tenant real-estate fund investor
portal. It manages funds, stakeholder roles and the hierarchical permission
model that governs what each stakeholder can see and do.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
