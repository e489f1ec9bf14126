package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import seeders so their init() funcs run and register themselves.
	_ "github.com/shashiranjanraj/stylevault/database/seeders"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stylevault",
	Short: "StyleVault — e-commerce storefront backend",
	Long:  "StyleVault is a clothing storefront backend: catalog, cart, checkout, and order notifications.",
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)
	rootCmd.AddCommand(seedCmd)
}
