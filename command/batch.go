package command

import (
	"fmt"

	"github.com/cocosip/go-byte-codec/convert"

	"github.com/nuclio/errors"
	"github.com/spf13/cobra"
)

type batchCommandeer struct {
	cmd            *cobra.Command
	rootCommandeer *RootCommandeer
	direction      string
	concurrency    int
	force          bool
}

func newBatchCommandeer(rootCommandeer *RootCommandeer) *batchCommandeer {
	commandeer := &batchCommandeer{
		rootCommandeer: rootCommandeer,
	}

	cmd := &cobra.Command{
		Use:   "batch source-dir destination-dir",
		Short: "Convert every file in a directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("Batch requires a source and a destination directory")
			}

			direction, err := convert.ParseDirection(commandeer.direction)
			if err != nil {
				return err
			}

			// initialize root
			if err := rootCommandeer.initialize(); err != nil {
				return errors.Wrap(err, "Failed to initialize root")
			}

			concurrency := rootCommandeer.config.Concurrency
			if commandeer.concurrency > 0 {
				concurrency = commandeer.concurrency
			}

			jobs, err := rootCommandeer.converter.PlanDirectory(args[0],
				args[1],
				rootCommandeer.config.Codec,
				direction,
				commandeer.force || rootCommandeer.config.Overwrite)
			if err != nil {
				return errors.Wrap(err, "Failed to plan batch")
			}

			results, err := rootCommandeer.converter.ConvertBatch(cmd.Context(), jobs, concurrency)
			if err != nil {
				return errors.Wrap(err, "Failed to convert batch")
			}

			records := make([][]interface{}, 0, len(results))
			for _, result := range results {
				records = append(records, []interface{}{
					result.Job.SourcePath,
					result.Job.DestinationPath,
					result.InputSize,
					result.OutputSize,
					fmt.Sprintf("%016x", result.OutputDigest),
				})
			}

			rootCommandeer.newRenderer(cmd).RenderTable(
				[]interface{}{"Source", "Destination", "In", "Out", "Digest"},
				records)

			return nil
		},
	}

	cmd.Flags().StringVarP(&commandeer.direction, "direction", "d", string(convert.DirectionEncode), "One of encode / decode")
	cmd.Flags().IntVarP(&commandeer.concurrency, "concurrency", "j", 0, "Files converted in parallel (default from configuration)")
	cmd.Flags().BoolVarP(&commandeer.force, "force", "f", false, "Overwrite existing destinations")

	commandeer.cmd = cmd

	return commandeer
}
