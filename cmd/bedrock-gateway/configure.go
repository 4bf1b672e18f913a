package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inercia/go-bedrock-gateway/pkg/gateway"
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Save gateway settings to ~/.bedrock-gateway/config.yaml",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := gateway.SettingsPath()
		if err != nil {
			return err
		}

		// Start from whatever is already persisted so that configuring
		// one field does not wipe the others.
		cfg, err := gateway.LoadSettings(path)
		if err != nil {
			return err
		}

		if flagGatewayURL != "" {
			cfg.GatewayURL = flagGatewayURL
		}
		if flagAPIID != "" {
			cfg.APIID = flagAPIID
		}
		if flagRegion != "" {
			cfg.Region = flagRegion
		}
		if flagProfile != "" {
			cfg.Profile = flagProfile
		}

		if err := gateway.SaveSettings(path, cfg); err != nil {
			return err
		}

		fmt.Printf("✅ Configuration saved to %s\n", path)
		return nil
	},
}
