package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"payrise-engine/internal/secrets"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Manage provider API keys in the OS keyring",
}

var keysSetCmd = &cobra.Command{
	Use:   "set <provider>",
	Short: "Store the API key read from stdin for a provider",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := readKey(cmd.InOrStdin())
		if err != nil {
			return err
		}
		if err := secrets.SetProviderAPIKey(args[0], key); err != nil {
			return fmt.Errorf("storing key for %s: %w", args[0], err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "stored api key for %s\n", args[0])
		return nil
	},
}

var keysDeleteCmd = &cobra.Command{
	Use:   "delete <provider>",
	Short: "Remove a provider API key from the OS keyring",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := secrets.DeleteProviderAPIKey(args[0]); err != nil {
			return fmt.Errorf("deleting key for %s: %w", args[0], err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted api key for %s\n", args[0])
		return nil
	},
}

func init() {
	keysCmd.AddCommand(keysSetCmd, keysDeleteCmd)
	rootCmd.AddCommand(keysCmd)
}

// readKey takes the first line of r so keys can be piped in.
func readKey(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("reading key: %w", err)
	}
	return strings.TrimSpace(line), nil
}
