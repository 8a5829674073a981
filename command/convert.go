package command

import (
	"fmt"

	"github.com/cocosip/go-byte-codec/convert"

	"github.com/nuclio/errors"
	"github.com/spf13/cobra"
)

type convertCommandeer struct {
	cmd            *cobra.Command
	rootCommandeer *RootCommandeer
	direction      convert.Direction
	force          bool
}

func newConvertCommandeer(rootCommandeer *RootCommandeer, direction convert.Direction) *convertCommandeer {
	commandeer := &convertCommandeer{
		rootCommandeer: rootCommandeer,
		direction:      direction,
	}

	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s source destination", direction),
		Short: fmt.Sprintf("%s a file with the selected codec", direction),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.Errorf("%s requires a source and a destination", direction)
			}

			// initialize root
			if err := rootCommandeer.initialize(); err != nil {
				return errors.Wrap(err, "Failed to initialize root")
			}

			result, err := rootCommandeer.converter.Convert(cmd.Context(), &convert.Job{
				SourcePath:      args[0],
				DestinationPath: args[1],
				CodecName:       rootCommandeer.config.Codec,
				Direction:       commandeer.direction,
				Overwrite:       commandeer.force || rootCommandeer.config.Overwrite,
			})
			if err != nil {
				return errors.Wrap(err, "Failed to convert")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (%d -> %d bytes)\n", // nolint: errcheck
				result.Job.SourcePath,
				result.Job.DestinationPath,
				result.InputSize,
				result.OutputSize)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&commandeer.force, "force", "f", false, "Overwrite an existing destination")

	commandeer.cmd = cmd

	return commandeer
}
