package convert

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/cocosip/go-byte-codec/codec"

	"github.com/cespare/xxhash/v2"
	"github.com/nuclio/errors"
	"github.com/nuclio/logger"
	"golang.org/x/sync/errgroup"
)

// Converter reads files, runs them through a codec and writes the result
type Converter struct {
	logger   logger.Logger
	registry *codec.Registry
}

// NewConverter creates a converter. A nil registry means the default one.
func NewConverter(parentLogger logger.Logger, registry *codec.Registry) (*Converter, error) {
	if registry == nil {
		registry = codec.Default()
	}

	return &Converter{
		logger:   parentLogger.GetChild("converter"),
		registry: registry,
	}, nil
}

// Convert runs a single job. The codec is invoked exactly once; its output
// is written verbatim.
func (c *Converter) Convert(ctx context.Context, job *Job) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	selectedCodec, err := c.validateJob(job)
	if err != nil {
		return nil, err
	}

	input, err := os.ReadFile(job.SourcePath)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to read %s", job.SourcePath)
	}

	c.logger.DebugWith("Converting",
		"source", job.SourcePath,
		"destination", job.DestinationPath,
		"codec", selectedCodec.Name(),
		"direction", job.Direction,
		"size", len(input))

	var output []byte
	switch job.Direction {
	case DirectionEncode:
		output, err = selectedCodec.Encode(input)
	case DirectionDecode:
		output, err = selectedCodec.Decode(input)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to %s %s with %s", job.Direction, job.SourcePath, selectedCodec.Name())
	}

	if err := os.WriteFile(job.DestinationPath, output, 0644); err != nil {
		return nil, errors.Wrapf(err, "Failed to write %s", job.DestinationPath)
	}

	result := &Result{
		Job:          job,
		InputSize:    len(input),
		OutputSize:   len(output),
		InputDigest:  xxhash.Sum64(input),
		OutputDigest: xxhash.Sum64(output),
	}

	c.logger.InfoWith("Converted",
		"source", job.SourcePath,
		"destination", job.DestinationPath,
		"inputSize", result.InputSize,
		"outputSize", result.OutputSize)

	return result, nil
}

// ConvertBatch runs independent jobs with at most concurrency in flight.
// The first failure cancels the jobs not yet started. Results keep job order.
func (c *Converter) ConvertBatch(ctx context.Context, jobs []*Job, concurrency int) ([]*Result, error) {
	if concurrency < 1 {
		return nil, errors.Wrapf(codec.ErrInvalidParameter, "Concurrency must be at least 1, got %d", concurrency)
	}

	results := make([]*Result, len(jobs))

	errGroup, errGroupCtx := errgroup.WithContext(ctx)
	errGroup.SetLimit(concurrency)

	for jobIndex, job := range jobs {
		jobIndex, job := jobIndex, job

		errGroup.Go(func() error {
			result, err := c.Convert(errGroupCtx, job)
			if err != nil {
				return errors.Wrapf(err, "Failed to convert %s", job.SourcePath)
			}
			results[jobIndex] = result
			return nil
		})
	}

	if err := errGroup.Wait(); err != nil {
		return nil, err
	}

	c.logger.DebugWith("Batch completed", "jobs", len(jobs), "concurrency", concurrency)

	return results, nil
}

// PlanDirectory creates one job per regular file in sourceDir. Encoding
// appends the codec extension; decoding strips it and skips files without it.
func (c *Converter) PlanDirectory(sourceDir string,
	destinationDir string,
	codecName string,
	direction Direction,
	overwrite bool) ([]*Job, error) {

	selectedCodec, err := c.registry.Get(codecName)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to resolve codec")
	}

	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to list %s", sourceDir)
	}

	extension := selectedCodec.Extension()

	var jobs []*Job
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}

		name := entry.Name()
		switch direction {
		case DirectionEncode:
			name += extension
		case DirectionDecode:
			if !strings.EqualFold(filepath.Ext(name), extension) {
				c.logger.DebugWith("Skipping file without codec extension", "name", name, "extension", extension)
				continue
			}
			name = strings.TrimSuffix(name, filepath.Ext(name))
		}

		jobs = append(jobs, &Job{
			SourcePath:      filepath.Join(sourceDir, entry.Name()),
			DestinationPath: filepath.Join(destinationDir, name),
			CodecName:       selectedCodec.Name(),
			Direction:       direction,
			Overwrite:       overwrite,
		})
	}

	return jobs, nil
}

// Verify encodes and decodes data in memory and checks the round trip
func (c *Converter) Verify(codecName string, data []byte) (*VerifyResult, error) {
	selectedCodec, err := c.registry.Get(codecName)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to resolve codec")
	}

	encoded, err := selectedCodec.Encode(data)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to encode")
	}

	decoded, err := selectedCodec.Decode(encoded)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to decode")
	}

	result := &VerifyResult{
		CodecName:     selectedCodec.Name(),
		InputSize:     len(data),
		EncodedSize:   len(encoded),
		InputDigest:   xxhash.Sum64(data),
		DecodedDigest: xxhash.Sum64(decoded),
	}

	if result.InputDigest != result.DecodedDigest || !bytes.Equal(data, decoded) {
		return result, errors.Wrapf(ErrRoundTripMismatch,
			"Digest %016x became %016x", result.InputDigest, result.DecodedDigest)
	}

	return result, nil
}

// Inspect describes an encoded block, if the codec supports it
func (c *Converter) Inspect(codecName string, data []byte) ([]codec.Field, error) {
	selectedCodec, err := c.registry.Get(codecName)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to resolve codec")
	}

	inspector, ok := selectedCodec.(codec.Inspector)
	if !ok {
		return nil, errors.Wrapf(codec.ErrInvalidParameter, "Codec %s cannot inspect blocks", selectedCodec.Name())
	}

	return inspector.Inspect(data)
}

// validateJob applies the checks in the order the conversion shell reports them
func (c *Converter) validateJob(job *Job) (codec.Codec, error) {
	if job.CodecName == "" || job.Direction == "" {
		return nil, ErrModeNotSelected
	}

	if _, err := ParseDirection(string(job.Direction)); err != nil {
		return nil, errors.Wrap(ErrModeNotSelected, err.Error())
	}

	selectedCodec, err := c.registry.Get(job.CodecName)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to resolve codec")
	}

	sourceInfo, err := os.Stat(job.SourcePath)
	if err != nil || !sourceInfo.Mode().IsRegular() {
		return nil, errors.Wrapf(ErrSourceNotFound, "Source %q", job.SourcePath)
	}

	if job.DestinationPath == "" {
		return nil, ErrDestinationEmpty
	}

	if _, err := os.Stat(job.DestinationPath); err == nil && !job.Overwrite {
		return nil, errors.Wrapf(ErrDestinationExists, "Destination %q", job.DestinationPath)
	}

	return selectedCodec, nil
}
