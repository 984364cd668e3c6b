// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gaussjordan/crosscheck"
	"github.com/katalvlaran/gaussjordan/gaussjordan"
	"github.com/katalvlaran/gaussjordan/matrix"
	"github.com/katalvlaran/gaussjordan/scalar"
	"github.com/katalvlaran/gaussjordan/textio"
)

// config holds the parsed command-line flags.
type config struct {
	complex    bool
	input      string
	trace      bool
	verify     bool
	crosscheck string
	tol        float64
}

func newRootCmd() *cobra.Command {
	cfg := &config{}
	cmd := &cobra.Command{
		Use:           "linsolve",
		Short:         "Solve A·x = b by Gauss–Jordan elimination with partial pivoting",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := cmd.InOrStdin()
			if cfg.input != "" && cfg.input != "-" {
				f, err := os.Open(cfg.input)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			if cfg.tol <= 0 {
				return fmt.Errorf("--tol must be positive, got %g", cfg.tol)
			}
			var backend crosscheck.Backend
			if cfg.crosscheck != "" {
				b, err := crosscheck.ParseBackend(cfg.crosscheck)
				if err != nil {
					return err
				}
				backend = b
			}

			logger := log.New(cmd.ErrOrStderr(), "linsolve: ", 0)
			if cfg.complex {
				return run[complex128](in, cmd.OutOrStdout(), logger, cfg, backend)
			}
			return run[float64](in, cmd.OutOrStdout(), logger, cfg, backend)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&cfg.complex, "complex", "c", false, "read and solve over complex numbers (each value is \"re im\")")
	f.StringVarP(&cfg.input, "input", "i", "", "read the system from this file instead of stdin")
	f.BoolVar(&cfg.trace, "trace", false, "log every pivot choice and row operation to stderr")
	f.BoolVar(&cfg.verify, "verify", false, "check the residual ‖A·x − b‖∞ against --tol")
	f.StringVar(&cfg.crosscheck, "crosscheck", "", "compare against a reference solver: gonum or sparse (real systems only)")
	f.Float64Var(&cfg.tol, "tol", 1e-9, "relative tolerance for --verify and --crosscheck")

	return cmd
}

// run reads, prints, solves and optionally verifies one system over T.
func run[T scalar.Scalar](in io.Reader, out io.Writer, logger *log.Logger, cfg *config, backend crosscheck.Backend) error {
	a, b, err := textio.ReadSystem[T](in)
	if err != nil {
		return err
	}
	if backend != "" && scalar.DomainOf[T]() != scalar.Real {
		return crosscheck.ErrUnsupportedDomain
	}

	var a0, b0 *matrix.Dense[T]
	if cfg.verify || backend != "" {
		a0, b0 = a.Clone(), b.Clone()
	}

	fmt.Fprintln(out, "=== BEFORE ===")
	fmt.Fprint(out, textio.FormatMatrix[T]("A", a))
	fmt.Fprint(out, textio.FormatMatrix[T]("b", b))

	var opts []gaussjordan.Option[T]
	if cfg.trace {
		opts = append(opts,
			gaussjordan.WithOnPivot(func(col, row int, pivot T) {
				logger.Printf("pivot col=%d row=%d value=%s", col, row, scalar.Format(pivot))
			}),
			gaussjordan.WithOnRowOp(func(op gaussjordan.RowOp[T]) {
				logger.Printf("%s target=%d source=%d factor=%s", op.Kind, op.Target, op.Source, scalar.Format(op.Factor))
			}),
		)
	}
	if err = gaussjordan.Solve(a, b, opts...); err != nil {
		return err
	}

	fmt.Fprintln(out, "=== AFTER ===")
	fmt.Fprint(out, textio.FormatMatrix[T]("A", a))
	fmt.Fprint(out, textio.FormatMatrix[T]("b", b))
	fmt.Fprintln(out, "x =")
	fmt.Fprint(out, textio.FormatVector[T](b))

	if cfg.verify {
		if err = verify(a0, b, b0, cfg.tol, logger); err != nil {
			return err
		}
	}
	if backend != "" {
		want, err := crosscheck.Reference(backend, a0, b0)
		if err != nil {
			return err
		}
		got, _ := any(b.Values()).([]float64)
		if err = crosscheck.Compare(got, want, cfg.tol); err != nil {
			return fmt.Errorf("%s: %w", backend, err)
		}
		logger.Printf("%s reference agrees within %g", backend, cfg.tol)
	}

	return nil
}

// verify fails when ‖a·x − b‖∞ exceeds tol·max(1, ‖b‖∞).
func verify[T scalar.Scalar](a, x, b *matrix.Dense[T], tol float64, logger *log.Logger) error {
	r, err := crosscheck.Residual(a, x, b)
	if err != nil {
		return err
	}
	scale := 1.0
	for _, v := range b.Values() {
		scale = max(scale, scalar.Abs(v))
	}
	if r > tol*scale {
		return fmt.Errorf("residual %g exceeds %g", r, tol*scale)
	}
	logger.Printf("residual %g", r)

	return nil
}
