package command

import (
	"github.com/cocosip/go-byte-codec/codec"

	"github.com/spf13/cobra"
)

type codecsCommandeer struct {
	cmd            *cobra.Command
	rootCommandeer *RootCommandeer
}

func newCodecsCommandeer(rootCommandeer *RootCommandeer) *codecsCommandeer {
	commandeer := &codecsCommandeer{
		rootCommandeer: rootCommandeer,
	}

	cmd := &cobra.Command{
		Use:   "codecs",
		Short: "List the available codecs",
		RunE: func(cmd *cobra.Command, args []string) error {
			rootCommandeer.newRenderer(cmd).RenderCodecs(codec.List())
			return nil
		},
	}

	commandeer.cmd = cmd

	return commandeer
}
