// Command precise prints the exact decimal value stored by binary
// floating-point numbers.
//
// Usage:
//
//	precise [flags] [value...]
//
// Each value is parsed as a float literal of the selected width (or as a
// raw bit pattern with --bits) and printed as
//
//	<value>\t<exact decimal>
//
// When no values are given, they are read from stdin, one per line.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// widthEnv names the environment variable holding the default --width.
const widthEnv = "PRECISE_WIDTH"

type options struct {
	width   int
	bits    bool
	fields  bool
	jobs    int
	verbose bool
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "precise [flags] [value...]",
		Short: "Print the exact decimal value of floating-point numbers",
		Long: `precise prints the unique decimal number equal to the value stored by
a float32 or float64, without rounding. For example 0.1 is printed as
0.1000000000000000055511151231257827021181583404541015625.

Values are read from the arguments, or from stdin (one per line) when
no arguments are given. Use -- before negative values:

  precise -- -0.1`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose {
				log.SetLevel(log.DebugLevel)
			} else {
				log.SetLevel(log.WarnLevel)
			}
			return opts.validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := args
			if len(inputs) == 0 {
				var err error
				inputs, err = readInputs(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("reading inputs: %w", err)
				}
			}
			log.Debugf("Converting %d value(s) as float%d with %d job(s).", len(inputs), opts.width, opts.jobs)
			results, err := convertAll(cmd.Context(), inputs, opts)
			if err != nil {
				return err
			}
			return writeResults(cmd.OutOrStdout(), results, opts)
		},
	}
	bindFlags(cmd.Flags(), &opts)
	return cmd
}

func bindFlags(fs *pflag.FlagSet, opts *options) {
	fs.IntVarP(&opts.width, "width", "w", defaultWidth(), "floating-point width in bits, 32 or 64 (default from $"+widthEnv+")")
	fs.BoolVarP(&opts.bits, "bits", "b", false, "treat values as raw IEEE-754 bit patterns (0x, 0b, 0o prefixes allowed)")
	fs.BoolVarP(&opts.fields, "fields", "f", false, "also print the sign, biased exponent and fraction fields")
	fs.IntVarP(&opts.jobs, "jobs", "j", runtime.GOMAXPROCS(0), "maximum number of concurrent conversions")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	fs.SortFlags = false
}

func defaultWidth() int {
	v, ok := os.LookupEnv(widthEnv)
	if !ok || v == "" {
		return 64
	}
	w, err := strconv.Atoi(v)
	if err != nil || (w != 32 && w != 64) {
		log.Warningf("Ignoring $%s=%q: want 32 or 64.", widthEnv, v)
		return 64
	}
	return w
}

func (o options) validate() error {
	if o.width != 32 && o.width != 64 {
		return fmt.Errorf("invalid width %d: want 32 or 64", o.width)
	}
	if o.jobs < 1 {
		return fmt.Errorf("invalid number of jobs %d: want at least 1", o.jobs)
	}
	return nil
}

// readInputs returns the non-blank lines of r with surrounding space removed.
func readInputs(r io.Reader) ([]string, error) {
	var inputs []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		inputs = append(inputs, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return inputs, nil
}

func writeResults(w io.Writer, results []result, opts options) error {
	bw := bufio.NewWriter(w)
	for _, r := range results {
		fmt.Fprintf(bw, "%s\t%s", r.input, r.exact)
		if opts.fields {
			fmt.Fprintf(bw, "\t%v", r.fields)
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	return nil
}
