package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inercia/go-bedrock-gateway/pkg/gateway"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the authenticated AWS identity",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := gateway.NewClient(cmd.Context(), clientOptions()...)
		if err != nil {
			return err
		}

		fmt.Printf("User ARN: %s\n", client.Identity())
		return nil
	},
}
