package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"rental-yield/cli"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "rental-yield",
		Short: "Short-term rental yield calculator",
	}
	rootCmd.PersistentFlags().String("config", "", "path to config file (default ./config.yaml)")

	rootCmd.AddCommand(
		cli.ServeCmd(),
		cli.ProjectCmd(),
		cli.CompareCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
