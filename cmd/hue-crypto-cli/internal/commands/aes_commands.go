package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vchlum/hue-lights-sub001/internal/domain/crypto"
	"github.com/vchlum/hue-lights-sub001/internal/infrastructure/cryptography"
	"github.com/vchlum/hue-lights-sub001/internal/infrastructure/cryptography/aescore"
	"github.com/vchlum/hue-lights-sub001/internal/pkg/hexutil"
	"github.com/vchlum/hue-lights-sub001/internal/pkg/logger"
)

// AESCommandHandler encapsulates logic for handling AES operations via CLI.
type AESCommandHandler struct {
	aesProcessor crypto.AESProcessor
	logger       logger.Logger
}

// setup configures the logger and AES processor once flags are parsed.
func (commandHandler *AESCommandHandler) setup(cmd *cobra.Command, _ []string) error {
	loggerInstance, err := setupLogger(cmd)
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}

	aesProcessor, err := cryptography.NewAESProcessor(loggerInstance)
	if err != nil {
		return fmt.Errorf("failed to create AES processor: %w", err)
	}

	commandHandler.aesProcessor = aesProcessor
	commandHandler.logger = loggerInstance
	return nil
}

// GenerateAESKeysCmd generates an AES key and persists it in the selected directory
func (commandHandler *AESCommandHandler) GenerateAESKeysCmd(cmd *cobra.Command, _ []string) error {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		return fmt.Errorf("invalid key-size flag: %w", err)
	}

	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		return fmt.Errorf("invalid key-dir flag: %w", err)
	}

	secretKey, err := commandHandler.aesProcessor.GenerateKey(keySize)
	if err != nil {
		return err
	}
	defer clear(secretKey)

	keyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-symmetric-key.bin", uuid.New()))
	if err := os.WriteFile(keyFilePath, secretKey, 0600); err != nil {
		return fmt.Errorf("failed to write key file: %w", err)
	}

	commandHandler.logger.Info("AES key saved to ", keyFilePath)
	fmt.Fprintln(cmd.OutOrStdout(), keyFilePath)
	return nil
}

// EncryptAESCmd encrypts a file with AES-GCM, writing nonce || ciphertext || tag
func (commandHandler *AESCommandHandler) EncryptAESCmd(cmd *cobra.Command, _ []string) error {
	aad, err := cmd.Flags().GetString("aad")
	if err != nil {
		return fmt.Errorf("invalid aad flag: %w", err)
	}

	plainText, err := readFileFlag(cmd, "input-file")
	if err != nil {
		return err
	}

	key, err := readFileFlag(cmd, "symmetric-key")
	if err != nil {
		return err
	}
	defer clear(key)

	encryptedData, err := commandHandler.aesProcessor.EncryptWithAAD(plainText, []byte(aad), key)
	if err != nil {
		return err
	}

	outputFilePath, err := writeFileFlag(cmd, "output-file", encryptedData)
	if err != nil {
		return err
	}

	commandHandler.logger.Info("Encrypted data saved to ", outputFilePath)
	return nil
}

// DecryptAESCmd authenticates and decrypts a file produced by EncryptAESCmd
func (commandHandler *AESCommandHandler) DecryptAESCmd(cmd *cobra.Command, _ []string) error {
	aad, err := cmd.Flags().GetString("aad")
	if err != nil {
		return fmt.Errorf("invalid aad flag: %w", err)
	}

	key, err := readFileFlag(cmd, "symmetric-key")
	if err != nil {
		return err
	}
	defer clear(key)

	encryptedData, err := readFileFlag(cmd, "input-file")
	if err != nil {
		return err
	}

	decryptedData, err := commandHandler.aesProcessor.DecryptWithAAD(encryptedData, []byte(aad), key)
	if err != nil {
		return err
	}

	outputFilePath, err := writeFileFlag(cmd, "output-file", decryptedData)
	if err != nil {
		return err
	}

	commandHandler.logger.Info("Decrypted data saved to ", outputFilePath)
	return nil
}

// EncryptAESBlockCmd encrypts a single hex-encoded 16-byte block and prints the hex result
func (commandHandler *AESCommandHandler) EncryptAESBlockCmd(cmd *cobra.Command, _ []string) error {
	blockHex, err := cmd.Flags().GetString("block")
	if err != nil {
		return fmt.Errorf("invalid block flag: %w", err)
	}

	block, err := hexutil.FromHex(blockHex)
	if err != nil {
		return fmt.Errorf("failed to decode block: %w", err)
	}

	key, err := readFileFlag(cmd, "symmetric-key")
	if err != nil {
		return err
	}
	defer clear(key)

	out, err := aescore.EncryptBlock(block, key)
	if err != nil {
		return err
	}

	commandHandler.logger.Info("Encrypted one AES block with a ", len(key)*8, "-bit key")
	fmt.Fprintln(cmd.OutOrStdout(), hexutil.ToHex(out))
	return nil
}

// InitAESCommands registers AES-related commands
func InitAESCommands(rootCmd *cobra.Command) error {
	handler := &AESCommandHandler{}

	var generateAESKeysCmd = &cobra.Command{
		Use:     "generate-aes-keys",
		Short:   "Generate AES keys",
		PreRunE: handler.setup,
		RunE:    handler.GenerateAESKeysCmd,
	}
	generateAESKeysCmd.Flags().IntP("key-size", "", crypto.AESKeySize128, "AES key size in bytes (16, 24 or 32)")
	generateAESKeysCmd.Flags().StringP("key-dir", "", "", "Directory to store the encryption key")
	if err := markRequired(generateAESKeysCmd, "key-dir"); err != nil {
		return err
	}
	rootCmd.AddCommand(generateAESKeysCmd)

	var encryptAESFileCmd = &cobra.Command{
		Use:     "encrypt-aes",
		Short:   "Encrypt a file using AES-GCM",
		PreRunE: handler.setup,
		RunE:    handler.EncryptAESCmd,
	}
	encryptAESFileCmd.Flags().StringP("input-file", "", "", "Path to input file that needs to be encrypted")
	encryptAESFileCmd.Flags().StringP("output-file", "", "", "Path to encrypted output file")
	encryptAESFileCmd.Flags().StringP("symmetric-key", "", "", "Path to the symmetric key")
	encryptAESFileCmd.Flags().StringP("aad", "", "", "Associated data authenticated alongside the file")
	if err := markRequired(encryptAESFileCmd, "input-file", "output-file", "symmetric-key"); err != nil {
		return err
	}
	rootCmd.AddCommand(encryptAESFileCmd)

	var decryptAESFileCmd = &cobra.Command{
		Use:     "decrypt-aes",
		Short:   "Decrypt a file using AES-GCM",
		PreRunE: handler.setup,
		RunE:    handler.DecryptAESCmd,
	}
	decryptAESFileCmd.Flags().StringP("input-file", "", "", "Input encrypted file path")
	decryptAESFileCmd.Flags().StringP("output-file", "", "", "Path to decrypted output file")
	decryptAESFileCmd.Flags().StringP("symmetric-key", "", "", "Path to the symmetric key")
	decryptAESFileCmd.Flags().StringP("aad", "", "", "Associated data given at encryption time")
	if err := markRequired(decryptAESFileCmd, "input-file", "output-file", "symmetric-key"); err != nil {
		return err
	}
	rootCmd.AddCommand(decryptAESFileCmd)

	var encryptAESBlockCmd = &cobra.Command{
		Use:     "encrypt-aes-block",
		Short:   "Encrypt a single 16-byte block with the raw AES cipher",
		PreRunE: handler.setup,
		RunE:    handler.EncryptAESBlockCmd,
	}
	encryptAESBlockCmd.Flags().StringP("block", "", "", "Hex-encoded 16-byte plaintext block")
	encryptAESBlockCmd.Flags().StringP("symmetric-key", "", "", "Path to the symmetric key")
	if err := markRequired(encryptAESBlockCmd, "block", "symmetric-key"); err != nil {
		return err
	}
	rootCmd.AddCommand(encryptAESBlockCmd)

	return nil
}
