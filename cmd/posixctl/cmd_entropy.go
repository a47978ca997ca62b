package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/desertwitch/posixfs/internal/errno"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"
)

// maxRandomCount bounds the bytes a single random command reads.
const maxRandomCount = 1 << 20

type entropyResult struct {
	AvailableBits int `json:"availableBits" yaml:"availableBits"`
	PoolSizeBits  int `json:"poolSizeBits"  yaml:"poolSizeBits"`
}

func getCmdAddEntropy(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add-entropy [FILE]",
		Short: "Deposit bytes into the kernel entropy pool (requires CAP_SYS_ADMIN)",
		Long: `Deposit bytes into the kernel entropy pool.

  The bytes are read from FILE, or from standard input when FILE is omitted
  or "-". Every byte is credited as eight bits of entropy.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)

			if len(args) == 0 || args[0] == "-" {
				data, err = io.ReadAll(app.stdin)
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("(posixctl-entropy) failed to read input: %w", err)
			}

			if err := app.randomHandler.AddEntropy(data); err != nil {
				return err
			}

			return app.printLine("creditedBits", len(data)*8)
		},
	}
}

func getCmdEntropy(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "entropy",
		Short: "Show the entropy available in the kernel pool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			avail, err := app.randomHandler.EntropyAvail()
			if err != nil {
				return err
			}

			size, err := app.randomHandler.PoolSize()
			if err != nil {
				return err
			}

			result := entropyResult{AvailableBits: avail, PoolSizeBits: size}

			return app.print(result, func(w io.Writer) error {
				var fill string
				if size > 0 {
					fill = fmt.Sprintf("%.0f%% full", float64(avail)/float64(size)*100) //nolint:mnd
				}

				return renderFields(w, []field{
					{label: "available", value: humanize.Comma(int64(avail)) + " bits", note: fill},
					{label: "pool size", value: humanize.Comma(int64(size)) + " bits"},
				})
			})
		},
	}
}

func getCmdRandom(app *App) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Read bytes from the random device and print them as hex (at most 1 MiB)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 0 || count > maxRandomCount {
				return errno.Wrap("parse count", fmt.Sprint(count), unix.EINVAL)
			}

			r := app.randomHandler.Reader()
			defer r.Close()

			buf := make([]byte, count)
			if _, err := r.Read(buf); err != nil {
				return err
			}

			return app.printLine("hex", hex.EncodeToString(buf))
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 32, "number of bytes") //nolint:mnd

	return cmd
}
