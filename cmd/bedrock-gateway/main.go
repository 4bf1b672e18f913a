// Command bedrock-gateway is a thin command-line front end for the
// gateway client: configure persisted settings, send a one-shot chat
// message, or check the authenticated AWS identity.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	flagGatewayURL string
	flagAPIID      string
	flagRegion     string
	flagProfile    string
	flagVerbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "bedrock-gateway",
	Short: "Client for an IAM-protected Bedrock gateway",
	Long: "bedrock-gateway sends SigV4-signed chat requests to a Bedrock gateway\n" +
		"endpoint, resolving settings from ~/.bedrock-gateway/config.yaml,\n" +
		"environment variables, and flags.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A .env next to the working directory is a convenience for
		// local use; absence is fine.
		_ = godotenv.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagGatewayURL, "gateway-url", "", "full gateway URL")
	rootCmd.PersistentFlags().StringVar(&flagAPIID, "api-id", "", "API Gateway id")
	rootCmd.PersistentFlags().StringVar(&flagRegion, "region", "", "AWS region")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "", "AWS profile")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(configureCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(modelsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
