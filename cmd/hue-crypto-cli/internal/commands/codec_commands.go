package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vchlum/hue-lights-sub001/internal/infrastructure/cryptography/digest"
	"github.com/vchlum/hue-lights-sub001/internal/pkg/hexutil"
	"github.com/vchlum/hue-lights-sub001/internal/pkg/logger"
)

// CodecCommandHandler handles SHA-256 digests and hex conversion via CLI.
type CodecCommandHandler struct {
	logger logger.Logger
}

func (commandHandler *CodecCommandHandler) setup(cmd *cobra.Command, _ []string) error {
	loggerInstance, err := setupLogger(cmd)
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}

	commandHandler.logger = loggerInstance
	return nil
}

// SHA256Cmd prints the hex SHA-256 digest of a file
func (commandHandler *CodecCommandHandler) SHA256Cmd(cmd *cobra.Command, _ []string) error {
	data, err := readFileFlag(cmd, "input-file")
	if err != nil {
		return err
	}

	sum := digest.Sum256(data)

	commandHandler.logger.Info("Computed SHA-256 over ", len(data), " bytes")
	fmt.Fprintln(cmd.OutOrStdout(), hexutil.ToHex(sum[:]))
	return nil
}

// HexEncodeCmd writes the lowercase hex form of a file
func (commandHandler *CodecCommandHandler) HexEncodeCmd(cmd *cobra.Command, _ []string) error {
	data, err := readFileFlag(cmd, "input-file")
	if err != nil {
		return err
	}

	outputFilePath, err := writeFileFlag(cmd, "output-file", []byte(hexutil.ToHex(data)))
	if err != nil {
		return err
	}

	commandHandler.logger.Info("Hex encoded data saved to ", outputFilePath)
	return nil
}

// HexDecodeCmd writes the bytes of a hex text file
func (commandHandler *CodecCommandHandler) HexDecodeCmd(cmd *cobra.Command, _ []string) error {
	data, err := readHexFileFlag(cmd, "input-file")
	if err != nil {
		return err
	}

	outputFilePath, err := writeFileFlag(cmd, "output-file", data)
	if err != nil {
		return err
	}

	commandHandler.logger.Info("Hex decoded data saved to ", outputFilePath)
	return nil
}

// InitCodecCommands registers digest and hex commands
func InitCodecCommands(rootCmd *cobra.Command) error {
	handler := &CodecCommandHandler{}

	var sha256Cmd = &cobra.Command{
		Use:     "sha256",
		Short:   "Print the SHA-256 digest of a file",
		PreRunE: handler.setup,
		RunE:    handler.SHA256Cmd,
	}
	sha256Cmd.Flags().StringP("input-file", "", "", "Path to the file to hash")
	if err := markRequired(sha256Cmd, "input-file"); err != nil {
		return err
	}
	rootCmd.AddCommand(sha256Cmd)

	var hexEncodeCmd = &cobra.Command{
		Use:     "hex-encode",
		Short:   "Hex encode a file",
		PreRunE: handler.setup,
		RunE:    handler.HexEncodeCmd,
	}
	hexEncodeCmd.Flags().StringP("input-file", "", "", "Path to the binary input file")
	hexEncodeCmd.Flags().StringP("output-file", "", "", "Path to the hex output file")
	if err := markRequired(hexEncodeCmd, "input-file", "output-file"); err != nil {
		return err
	}
	rootCmd.AddCommand(hexEncodeCmd)

	var hexDecodeCmd = &cobra.Command{
		Use:     "hex-decode",
		Short:   "Decode a hex text file",
		PreRunE: handler.setup,
		RunE:    handler.HexDecodeCmd,
	}
	hexDecodeCmd.Flags().StringP("input-file", "", "", "Path to the hex input file")
	hexDecodeCmd.Flags().StringP("output-file", "", "", "Path to the binary output file")
	if err := markRequired(hexDecodeCmd, "input-file", "output-file"); err != nil {
		return err
	}
	rootCmd.AddCommand(hexDecodeCmd)

	return nil
}
