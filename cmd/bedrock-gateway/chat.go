package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inercia/go-bedrock-gateway/pkg/gateway"
)

var (
	flagModel       string
	flagMaxTokens   int
	flagSystem      string
	flagTemperature float64
	flagTopP        float64
)

var chatCmd = &cobra.Command{
	Use:   "chat MESSAGE",
	Short: "Send a chat message through the gateway",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := gateway.NewClient(cmd.Context(), clientOptions()...)
		if err != nil {
			return err
		}

		opts := &gateway.ChatOptions{
			Model:     flagModel,
			MaxTokens: flagMaxTokens,
			System:    flagSystem,
		}
		if cmd.Flags().Changed("temperature") {
			opts.Temperature = &flagTemperature
		}
		if cmd.Flags().Changed("top-p") {
			opts.TopP = &flagTopP
		}

		result, err := client.Chat(cmd.Context(), args[0], opts)
		if err != nil {
			return err
		}

		fmt.Println()
		fmt.Println(result.Text)
		fmt.Println()
		fmt.Printf("📊 Tokens: %d | ⚡ Latency: %dms\n", result.TotalTokens, result.LatencyMS)
		return nil
	},
}

func init() {
	chatCmd.Flags().StringVar(&flagModel, "model", "sonnet-4.5", "model alias or raw model id")
	chatCmd.Flags().IntVar(&flagMaxTokens, "max-tokens", 2000, "maximum tokens to generate")
	chatCmd.Flags().StringVar(&flagSystem, "system", "", "system prompt")
	chatCmd.Flags().Float64Var(&flagTemperature, "temperature", 0, "sampling temperature")
	chatCmd.Flags().Float64Var(&flagTopP, "top-p", 0, "nucleus sampling probability")
}

// clientOptions translates the persistent flags into client options,
// leaving unset flags to the lower configuration layers.
func clientOptions() []gateway.Option {
	var opts []gateway.Option
	if flagGatewayURL != "" {
		opts = append(opts, gateway.WithGatewayURL(flagGatewayURL))
	}
	if flagAPIID != "" {
		opts = append(opts, gateway.WithAPIID(flagAPIID))
	}
	if flagRegion != "" {
		opts = append(opts, gateway.WithRegion(flagRegion))
	}
	if flagProfile != "" {
		opts = append(opts, gateway.WithProfile(flagProfile))
	}
	if flagVerbose {
		opts = append(opts, gateway.WithVerbose())
	}
	return opts
}
