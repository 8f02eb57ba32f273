// Package pipeline orchestrates the conversion workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/svmemgen/internal/encoder"
	"github.com/retroenv/svmemgen/internal/loader"
	"github.com/retroenv/svmemgen/internal/opcodes"
	"github.com/retroenv/svmemgen/internal/options"
	"github.com/retroenv/svmemgen/internal/verification"
)

// Pipeline orchestrates the complete conversion workflow.
type Pipeline struct {
	logger *log.Logger
	loader *loader.Loader
}

// New creates a new conversion pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
		loader: loader.New(),
	}
}

// Execute runs the complete conversion pipeline. All inputs are read before
// the output file is created, a missing input never leaves a partial output
// file behind.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program) error {
	encOpts, err := options.NewEncoder(opts)
	if err != nil {
		return err
	}

	var annotations opcodes.Map
	if opts.Opcodes != "" {
		annotations, err = opcodes.ParseFile(opts.Opcodes)
		if err != nil {
			return fmt.Errorf("parsing opcode listing: %w", err)
		}
		p.logger.Debug("Opcode listing parsed",
			log.String("file", opts.Opcodes),
			log.Int("instructions", len(annotations)))
	}

	image, err := p.loader.Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading image: %w", err)
	}
	p.logger.Info("Processing memory image",
		log.String("file", opts.Input),
		log.Int("bytes", len(image.Data)),
		log.Hex("base", image.Base),
		log.String("memory", opts.MemoryName))

	if err := ctx.Err(); err != nil {
		return err
	}

	outputFile, err := os.Create(opts.Output)
	if err != nil {
		return fmt.Errorf("creating file %s: %w", opts.Output, err)
	}

	enc := encoder.New(p.logger, encOpts, annotations)
	if err := enc.Process(image.Data, image.Base, outputFile); err != nil {
		_ = outputFile.Close()
		return fmt.Errorf("encoding image: %w", err)
	}
	if err := outputFile.Close(); err != nil {
		return fmt.Errorf("closing file %s: %w", opts.Output, err)
	}

	if opts.Verify {
		if err := p.verify(encOpts, image.Data, opts.Output); err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
		p.logger.Info("Verification successful")
	}
	return nil
}

func (p *Pipeline) verify(encOpts options.Encoder, image []byte, output string) error {
	file, err := os.Open(output)
	if err != nil {
		return fmt.Errorf("opening file %s: %w", output, err)
	}
	defer func() { _ = file.Close() }()

	return verification.VerifyOutput(p.logger, encOpts, image, file)
}
