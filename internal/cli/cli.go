// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/svmemgen/internal/options"
)

// ParseFlags parses command line flags and positional arguments into program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) < 2 {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	opts.Input = args[0]
	opts.Output = args[1]
	if len(args) > 2 {
		opts.Opcodes = args[2]
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the command usage and the flag defaults.
func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: svmemgen [options] <input image> <output file> [opcode listing]\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	if len(args) > 3 {
		return &UsageError{
			msg: fmt.Sprintf("Unexpected extra argument %s after the opcode listing", args[3]),
		}
	}
	for i, arg := range args {
		if arg == "" {
			return &UsageError{
				msg: "Empty file argument found, please pass non-empty file names",
			}
		}
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after the file arguments, please pass all flags before the files", arg),
			}
		}
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.MemoryName, "name", options.DefaultMemoryName, "name of the memory instance in the generated assignments")
	flags.StringVar(&opts.Member, "member", options.DefaultMember, "instance path between the memory name and .memory, pass an empty string for the legacy simplified addressing")
	flags.IntVar(&opts.WordWidth, "width", options.DefaultWordWidth, "width of each memory word in bits, must be a multiple of 8")
	flags.BoolVar(&opts.Verify, "verify", false, "verify the generated output by decoding it and comparing it against the input image")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
