package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vchlum/hue-lights-sub001/internal/domain/crypto"
	"github.com/vchlum/hue-lights-sub001/internal/infrastructure/cryptography"
	"github.com/vchlum/hue-lights-sub001/internal/pkg/hexutil"
	"github.com/vchlum/hue-lights-sub001/internal/pkg/logger"
)

// ErrMACMismatch is returned by verify-hmac when the MAC does not match the file.
var ErrMACMismatch = errors.New("HMAC verification failed")

// HMACCommandHandler encapsulates logic for handling HMAC-SHA256 operations via CLI.
type HMACCommandHandler struct {
	macProcessor crypto.MACProcessor
	logger       logger.Logger
}

func (commandHandler *HMACCommandHandler) setup(cmd *cobra.Command, _ []string) error {
	loggerInstance, err := setupLogger(cmd)
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}

	macProcessor, err := cryptography.NewHMACProcessor(loggerInstance)
	if err != nil {
		return fmt.Errorf("failed to create HMAC processor: %w", err)
	}

	commandHandler.macProcessor = macProcessor
	commandHandler.logger = loggerInstance
	return nil
}

// GenerateHMACKeyCmd generates an HMAC key and persists it in the selected directory
func (commandHandler *HMACCommandHandler) GenerateHMACKeyCmd(cmd *cobra.Command, _ []string) error {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		return fmt.Errorf("invalid key-size flag: %w", err)
	}

	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		return fmt.Errorf("invalid key-dir flag: %w", err)
	}

	secretKey, err := commandHandler.macProcessor.GenerateKey(keySize)
	if err != nil {
		return err
	}
	defer clear(secretKey)

	keyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-hmac-key.bin", uuid.New()))
	if err := os.WriteFile(keyFilePath, secretKey, 0600); err != nil {
		return fmt.Errorf("failed to write key file: %w", err)
	}

	commandHandler.logger.Info("HMAC key saved to ", keyFilePath)
	fmt.Fprintln(cmd.OutOrStdout(), keyFilePath)
	return nil
}

// SignHMACCmd computes the MAC of a file and saves it hex-encoded
func (commandHandler *HMACCommandHandler) SignHMACCmd(cmd *cobra.Command, _ []string) error {
	message, err := readFileFlag(cmd, "input-file")
	if err != nil {
		return err
	}

	key, err := readFileFlag(cmd, "key")
	if err != nil {
		return err
	}
	defer clear(key)

	mac, err := commandHandler.macProcessor.Sign(message, key)
	if err != nil {
		return err
	}

	macFilePath, err := writeFileFlag(cmd, "output-file", []byte(hexutil.ToHex(mac)))
	if err != nil {
		return err
	}

	commandHandler.logger.Info("MAC saved to ", macFilePath)
	return nil
}

// VerifyHMACCmd checks a hex-encoded MAC file against a file
func (commandHandler *HMACCommandHandler) VerifyHMACCmd(cmd *cobra.Command, _ []string) error {
	message, err := readFileFlag(cmd, "input-file")
	if err != nil {
		return err
	}

	mac, err := readHexFileFlag(cmd, "mac-file")
	if err != nil {
		return err
	}

	key, err := readFileFlag(cmd, "key")
	if err != nil {
		return err
	}
	defer clear(key)

	valid, err := commandHandler.macProcessor.Verify(message, mac, key)
	if err != nil {
		return err
	}
	if !valid {
		return ErrMACMismatch
	}

	fmt.Fprintln(cmd.OutOrStdout(), "verified")
	return nil
}

// InitHMACCommands registers HMAC-related commands
func InitHMACCommands(rootCmd *cobra.Command) error {
	handler := &HMACCommandHandler{}

	var generateHMACKeyCmd = &cobra.Command{
		Use:     "generate-hmac-key",
		Short:   "Generate an HMAC-SHA256 key",
		PreRunE: handler.setup,
		RunE:    handler.GenerateHMACKeyCmd,
	}
	generateHMACKeyCmd.Flags().IntP("key-size", "", crypto.HMACKeySize, "HMAC key size in bytes")
	generateHMACKeyCmd.Flags().StringP("key-dir", "", "", "Directory to store the HMAC key")
	if err := markRequired(generateHMACKeyCmd, "key-dir"); err != nil {
		return err
	}
	rootCmd.AddCommand(generateHMACKeyCmd)

	var signHMACCmd = &cobra.Command{
		Use:     "sign-hmac",
		Short:   "Compute the HMAC-SHA256 of a file",
		PreRunE: handler.setup,
		RunE:    handler.SignHMACCmd,
	}
	signHMACCmd.Flags().StringP("input-file", "", "", "Path to the file to authenticate")
	signHMACCmd.Flags().StringP("key", "", "", "Path to the HMAC key")
	signHMACCmd.Flags().StringP("output-file", "", "", "Path to the hex-encoded MAC output file")
	if err := markRequired(signHMACCmd, "input-file", "key", "output-file"); err != nil {
		return err
	}
	rootCmd.AddCommand(signHMACCmd)

	var verifyHMACCmd = &cobra.Command{
		Use:     "verify-hmac",
		Short:   "Verify the HMAC-SHA256 of a file",
		PreRunE: handler.setup,
		RunE:    handler.VerifyHMACCmd,
	}
	verifyHMACCmd.Flags().StringP("input-file", "", "", "Path to the authenticated file")
	verifyHMACCmd.Flags().StringP("key", "", "", "Path to the HMAC key")
	verifyHMACCmd.Flags().StringP("mac-file", "", "", "Path to the hex-encoded MAC file")
	if err := markRequired(verifyHMACCmd, "input-file", "key", "mac-file"); err != nil {
		return err
	}
	rootCmd.AddCommand(verifyHMACCmd)

	return nil
}
