package command

import (
	"github.com/cocosip/go-byte-codec/codec"
	"github.com/cocosip/go-byte-codec/config"
	"github.com/cocosip/go-byte-codec/convert"
	"github.com/cocosip/go-byte-codec/renderer"

	// register codecs
	_ "github.com/cocosip/go-byte-codec/hextext"
	_ "github.com/cocosip/go-byte-codec/huffman"
	_ "github.com/cocosip/go-byte-codec/runlength"

	"github.com/nuclio/errors"
	"github.com/nuclio/logger"
	"github.com/nuclio/zap"
	"github.com/spf13/cobra"
)

// RootCommandeer holds the root cobra command and the state shared by its verbs
type RootCommandeer struct {
	loggerInstance logger.Logger
	cmd            *cobra.Command
	verbose        bool
	configPath     string
	codecName      string
	config         *config.Config
	converter      *convert.Converter
}

// NewRootCommandeer creates the bytecodec command tree
func NewRootCommandeer() *RootCommandeer {
	commandeer := &RootCommandeer{}

	cmd := &cobra.Command{
		Use:           "bytecodec [command]",
		Short:         "Convert files between raw, hex-text and compressed forms",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&commandeer.verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().StringVarP(&commandeer.configPath, "config", "", "", "Path to a configuration file (default ~/"+config.DefaultFileName+")")
	cmd.PersistentFlags().StringVarP(&commandeer.codecName, "codec", "c", "", "Codec name or extension - huffman, runlength, hex or raw")

	// add children
	cmd.AddCommand(
		newConvertCommandeer(commandeer, convert.DirectionEncode).cmd,
		newConvertCommandeer(commandeer, convert.DirectionDecode).cmd,
		newBatchCommandeer(commandeer).cmd,
		newVerifyCommandeer(commandeer).cmd,
		newInspectCommandeer(commandeer).cmd,
		newCodecsCommandeer(commandeer).cmd,
	)

	commandeer.cmd = cmd

	return commandeer
}

// Execute uses os.Args to execute the command
func (rc *RootCommandeer) Execute() error {
	return rc.cmd.Execute()
}

// GetCmd returns the underlying cobra command
func (rc *RootCommandeer) GetCmd() *cobra.Command {
	return rc.cmd
}

func (rc *RootCommandeer) initialize() error {
	configReader, err := config.NewReader()
	if err != nil {
		return errors.Wrap(err, "Failed to create configuration reader")
	}

	rc.config, err = configReader.ReadFileOrDefault(rc.configPath)
	if err != nil {
		return errors.Wrap(err, "Failed to read configuration")
	}

	if rc.codecName != "" {
		rc.config.Codec = rc.codecName
	}

	if err := rc.config.Validate(); err != nil {
		return errors.Wrap(err, "Invalid configuration")
	}

	// tests inject their own logger
	if rc.loggerInstance == nil {
		rc.loggerInstance, err = rc.createLogger()
		if err != nil {
			return errors.Wrap(err, "Failed to create logger")
		}
	}

	rc.converter, err = convert.NewConverter(rc.loggerInstance, codec.Default())
	if err != nil {
		return errors.Wrap(err, "Failed to create converter")
	}

	rc.loggerInstance.DebugWith("Initialized",
		"codec", rc.config.Codec,
		"concurrency", rc.config.Concurrency,
		"overwrite", rc.config.Overwrite)

	return nil
}

func (rc *RootCommandeer) createLogger() (logger.Logger, error) {
	var loggerLevel nucliozap.Level

	if rc.verbose || rc.config.Verbose {
		loggerLevel = nucliozap.DebugLevel
	} else {
		loggerLevel = nucliozap.InfoLevel
	}

	loggerInstance, err := nucliozap.NewNuclioZapCmd("bytecodec",
		loggerLevel,
		rc.cmd.ErrOrStderr())
	if err != nil {
		return nil, errors.Wrap(err, "Failed to create logger")
	}

	return loggerInstance, nil
}

func (rc *RootCommandeer) newRenderer(cmd *cobra.Command) *renderer.Renderer {
	return renderer.NewRenderer(cmd.OutOrStdout())
}
