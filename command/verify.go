package command

import (
	"fmt"
	"os"

	"github.com/cocosip/go-byte-codec/codec"

	"github.com/nuclio/errors"
	"github.com/spf13/cobra"
)

type verifyCommandeer struct {
	cmd            *cobra.Command
	rootCommandeer *RootCommandeer
}

func newVerifyCommandeer(rootCommandeer *RootCommandeer) *verifyCommandeer {
	commandeer := &verifyCommandeer{
		rootCommandeer: rootCommandeer,
	}

	cmd := &cobra.Command{
		Use:   "verify file",
		Short: "Encode and decode a file in memory and compare digests",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("Verify requires a file")
			}

			// initialize root
			if err := rootCommandeer.initialize(); err != nil {
				return errors.Wrap(err, "Failed to initialize root")
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, "Failed to read %s", args[0])
			}

			result, err := rootCommandeer.converter.Verify(rootCommandeer.config.Codec, data)
			if err != nil {
				return errors.Wrap(err, "Verification failed")
			}

			rootCommandeer.newRenderer(cmd).RenderFields([]codec.Field{
				{Name: "codec", Value: result.CodecName},
				{Name: "input size", Value: result.InputSize},
				{Name: "encoded size", Value: result.EncodedSize},
				{Name: "digest", Value: fmt.Sprintf("%016x", result.InputDigest)},
			})

			return nil
		},
	}

	commandeer.cmd = cmd

	return commandeer
}
