package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/quotient-io/quotient-client/internal/constants"
	"github.com/quotient-io/quotient-client/pkg/qclient"
	"github.com/quotient-io/quotient-client/pkg/quotient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var apiEndpoint string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an access token",
		Long:  "Verify an API token against the endpoint and store it in the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiEndpoint == "" {
				apiEndpoint = viper.GetString("api")
			}

			token := viper.GetString("token")
			if token == "" {
				fmt.Print("API token: ")

				tokenBytes, err := term.ReadPassword(syscall.Stdin)

				fmt.Println()

				if err != nil {
					return fmt.Errorf("reading token: %w", err)
				}

				token = strings.TrimSpace(string(tokenBytes))
			}

			if token == "" {
				return ErrTokenRequired
			}

			client, err := qclient.New(&quotient.Config{
				APIEndpoint: apiEndpoint,
				AccessToken: token,
			})
			if err != nil {
				return err
			}

			// A cheap authenticated call proves the token works.
			_, err = client.ManagedIntegrations().List(context.Background())
			if err != nil && !quotient.IsNotFound(err) {
				return fmt.Errorf("token verification failed: %w", err)
			}

			viper.Set("token", token)

			if apiEndpoint != "" {
				viper.Set("api", apiEndpoint)
			}

			if err := viper.WriteConfig(); err != nil {
				if err := viper.SafeWriteConfig(); err != nil {
					return fmt.Errorf("saving config: %w", err)
				}
			}

			// The config file holds the token, so keep it owner-only.
			if cfgFile := viper.ConfigFileUsed(); cfgFile != "" {
				if err := os.Chmod(cfgFile, constants.ConfigFilePerm); err != nil {
					return fmt.Errorf("restricting config permissions: %w", err)
				}
			}

			fmt.Println("Token saved.")

			return nil
		},
	}

	cmd.Flags().StringVar(&apiEndpoint, "endpoint", "", "API endpoint URL")

	return cmd
}
