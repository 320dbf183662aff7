package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/zostay/nomnom"
	"github.com/zostay/nomnom/input"
	"github.com/zostay/nomnom/match"
	"github.com/zostay/nomnom/parser"
)

func newSplitCmd(opts *globalOptions) *cobra.Command {
	var (
		delim string
		chunk int
	)

	cmd := &cobra.Command{
		Use:   "split [file]",
		Short: "Split input into records separated by a delimiter",
		Long: `Split the input into records and print one record per line.

The input is read in chunks of --chunk bytes and parsed as it arrives, so
records may span chunk boundaries. If no file is provided, reads stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if delim == "" {
				return fmt.Errorf("--delim must not be empty")
			}

			var r io.Reader = os.Stdin
			if len(args) == 1 {
				fh, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open input: %w", err)
				}
				defer fh.Close()
				r = fh
			}

			out := cmd.OutOrStdout()
			records := 0
			p := parser.Trace[input.Bytes](opts.tracer(), "record", recordParser(input.ByteString(delim)), delim)
			err := nomnom.Each(input.NewFeedSize(r, chunk), p, func(taken input.Bytes) error {
				records++
				_, err := fmt.Fprintf(out, "%s\n", bytes.TrimSuffix(taken.Bytes(), []byte(delim)))
				return err
			})
			if err != nil {
				return fmt.Errorf("split: %w", err)
			}

			log.Infof("split %d records", records)
			return nil
		},
	}

	cmd.Flags().StringVarP(&delim, "delim", "d", "\n", "record delimiter")
	cmd.Flags().IntVar(&chunk, "chunk", input.DefaultChunkSize, "bytes to read at a time")

	return cmd
}

// recordParser takes one record together with its trailing delimiter. On the
// final chunk, a record without a delimiter takes the rest of the input.
func recordParser(delim input.Bytes) parser.Func[input.Bytes] {
	until := match.TakeUntil(delim)
	sep := match.Tag(delim)
	tail := match.TakeWhile[input.Bytes](func(byte) bool { return true })

	return func(in input.Bytes) parser.Result[input.Bytes] {
		res := until(in)
		if !res.Ok() {
			if in.AtEOF() {
				return tail(in)
			}
			return res
		}

		if after := sep(res.Rest); !after.Ok() {
			return after
		}

		rest, taken := in.TakeSplit(res.Taken.Len() + delim.Len())
		return parser.Done(rest, taken)
	}
}
