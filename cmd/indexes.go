/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/staffdesk/apiserver/config"
	"github.com/staffdesk/apiserver/internal/db"
)

// indexesCmd represents the indexes command.
var indexesCmd = &cobra.Command{
	Use:   "indexes",
	Short: "Create the MongoDB indexes the API relies on",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()

		mongo, err := db.Open(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("open mongodb: %w", err)
		}
		defer func() {
			_ = mongo.Close(context.Background())
		}()

		if err := mongo.EnsureIndexes(cmd.Context()); err != nil {
			return fmt.Errorf("ensure indexes: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(indexesCmd)
}
