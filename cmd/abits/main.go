// Command abits is a small CLI demo over the abits library: parse,
// format, and run the four basic arithmetic operations on arbitrary-
// width bit values from the shell. The abits package itself never logs
// or depends on cobra/zerolog; only this command does.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dbits/abits"
)

var (
	width   uint
	radix   int
	verbose bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("abits command failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "abits",
		Short: "Inspect and compute with arbitrary-width bit values",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			log.Logger = log.Logger.Level(level)
		},
	}
	root.PersistentFlags().UintVar(&width, "width", 64, "bit width")
	root.PersistentFlags().IntVar(&radix, "radix", 10, "numeral base (2-36)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newParseCmd(),
		newFormatCmd(),
		newBinaryOpCmd("add", "add two values", func(x, y abits.Bits) error { return x.Add(y) }),
		newBinaryOpCmd("sub", "subtract two values", func(x, y abits.Bits) error { return x.Sub(y) }),
		newBinaryOpCmd("mul", "multiply two values, truncating mod 2**width", func(x, y abits.Bits) error {
			// Mul zeroes its receiver before accumulating, so multiply
			// from a copy of x rather than from x itself.
			s, err := abits.NewExternal(x.Width())
			if err != nil {
				return err
			}
			lhs := s.View()
			if err := lhs.Copy(x); err != nil {
				return err
			}
			return x.Mul(lhs, y)
		}),
		newDivCmd(),
	)
	return root
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <value>",
		Short: "parse a value and print its binary, decimal and hex forms",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := allocAndParse(args[0])
			if err != nil {
				return err
			}
			return printAllRadixes(x)
		},
	}
}

func newFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format <value>",
		Short: "parse a value in --radix and re-print it in --radix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := allocAndParse(args[0])
			if err != nil {
				return err
			}
			s, err := abits.Format(x, radix)
			if err != nil {
				return err
			}
			fmt.Println(s)
			return nil
		},
	}
}

func newBinaryOpCmd(use, short string, op func(x, y abits.Bits) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <lhs> <rhs>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := allocAndParse(args[0])
			if err != nil {
				return err
			}
			y, err := allocAndParse(args[1])
			if err != nil {
				return err
			}
			log.Debug().Str("op", use).Uint("width", width).Msg("evaluating")
			if err := op(x, y); err != nil {
				return err
			}
			return printAllRadixes(x)
		},
	}
}

func newDivCmd() *cobra.Command {
	var signed bool
	cmd := &cobra.Command{
		Use:   "div <n> <d>",
		Short: "divide n by d, printing quotient and remainder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := allocAndParse(args[0])
			if err != nil {
				return err
			}
			d, err := allocAndParse(args[1])
			if err != nil {
				return err
			}
			q, err := allocAndParse("0")
			if err != nil {
				return err
			}
			r, err := allocAndParse("0")
			if err != nil {
				return err
			}
			if signed {
				overflow, err := abits.IDivide(q, r, n, d)
				if err != nil {
					return err
				}
				if overflow {
					log.Warn().Msg("signed division overflowed (INT_MIN / -1)")
				}
			} else if err := abits.UDivide(q, r, n, d); err != nil {
				return err
			}
			qs, _ := abits.Format(q, radix)
			rs, _ := abits.Format(r, radix)
			fmt.Printf("q=%s r=%s\n", qs, rs)
			return nil
		},
	}
	cmd.Flags().BoolVar(&signed, "signed", false, "use signed (truncating) division")
	return cmd
}

func allocAndParse(s string) (abits.Bits, error) {
	storage, err := abits.NewExternal(width)
	if err != nil {
		return abits.Bits{}, err
	}
	x := storage.View()
	if err := abits.ParseSignedBits(x, s, radix); err != nil {
		return abits.Bits{}, err
	}
	return x, nil
}

func printAllRadixes(x abits.Bits) error {
	dec, err := abits.FormatSigned(x, 10)
	if err != nil {
		return err
	}
	hex, err := abits.Format(x, 16)
	if err != nil {
		return err
	}
	bin, err := abits.Format(x, 2)
	if err != nil {
		return err
	}
	fmt.Printf("dec=%s hex=0x%s bin=0b%s\n", dec, hex, bin)
	return nil
}
