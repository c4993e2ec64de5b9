package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the hue-crypto-cli command tree with every command group registered.
func NewRootCmd() (*cobra.Command, error) {
	rootCmd := &cobra.Command{
		Use:   "hue-crypto-cli",
		Short: "Symmetric cryptography for streaming light control messages",
		Long: `hue-crypto-cli exposes the from-scratch symmetric primitives used to protect
streaming control messages: AES-GCM envelope encryption with optional associated data,
raw AES block encryption, HMAC-SHA256 signing and verification, SHA-256 digests and
hex conversion. Results are printed to stdout; logs go to stderr or a rotated log file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	addLoggerFlags(rootCmd)

	if err := InitAESCommands(rootCmd); err != nil {
		return nil, fmt.Errorf("failed to initialize AES commands: %w", err)
	}

	if err := InitHMACCommands(rootCmd); err != nil {
		return nil, fmt.Errorf("failed to initialize HMAC commands: %w", err)
	}

	if err := InitCodecCommands(rootCmd); err != nil {
		return nil, fmt.Errorf("failed to initialize codec commands: %w", err)
	}

	return rootCmd, nil
}
