package command

import (
	"os"
	"path/filepath"

	"github.com/nuclio/errors"
	"github.com/spf13/cobra"
)

type inspectCommandeer struct {
	cmd            *cobra.Command
	rootCommandeer *RootCommandeer
}

func newInspectCommandeer(rootCommandeer *RootCommandeer) *inspectCommandeer {
	commandeer := &inspectCommandeer{
		rootCommandeer: rootCommandeer,
	}

	cmd := &cobra.Command{
		Use:   "inspect file",
		Short: "Describe an encoded block (codec taken from --codec or the file extension)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("Inspect requires a file")
			}

			// initialize root
			if err := rootCommandeer.initialize(); err != nil {
				return errors.Wrap(err, "Failed to initialize root")
			}

			codecName := rootCommandeer.codecName
			if codecName == "" {
				codecName = filepath.Ext(args[0])
			}
			if codecName == "" {
				codecName = rootCommandeer.config.Codec
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, "Failed to read %s", args[0])
			}

			fields, err := rootCommandeer.converter.Inspect(codecName, data)
			if err != nil {
				return errors.Wrap(err, "Failed to inspect")
			}

			rootCommandeer.newRenderer(cmd).RenderFields(fields)

			return nil
		},
	}

	commandeer.cmd = cmd

	return commandeer
}
