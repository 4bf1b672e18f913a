package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inercia/go-bedrock-gateway/pkg/gateway"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the configured model aliases",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := gateway.NewClient(cmd.Context(), clientOptions()...)
		if err != nil {
			return err
		}

		cfg := client.Config()
		for _, alias := range client.Models() {
			fmt.Printf("%-12s %s\n", alias, cfg.ModelMap[alias])
		}
		return nil
	},
}
