package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/pipeloop"
	"github.com/katalvlaran/pipeloop/batch"
)

// errFailedInputs is returned when at least one input could not be solved.
var errFailedInputs = errors.New("some inputs failed")

// readInputs loads each named file; "-" reads standard input.
func readInputs(cmd *cobra.Command, names []string) ([]batch.Input, error) {
	if len(names) == 0 {
		names = cfg.Inputs
	}
	inputs := make([]batch.Input, 0, len(names))
	for _, name := range names {
		var (
			data []byte
			err  error
		)
		if name == "-" {
			data, err = io.ReadAll(cmd.InOrStdin())
		} else {
			data, err = os.ReadFile(name)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		inputs = append(inputs, batch.Input{Name: name, Text: string(data)})
	}
	return inputs, nil
}

// solveInputs reads and solves the named inputs with the configured options.
func solveInputs(cmd *cobra.Command, names []string, extra ...pipeloop.Option) ([]batch.Outcome, error) {
	inputs, err := readInputs(cmd, names)
	if err != nil {
		return nil, err
	}
	opts := []pipeloop.Option{pipeloop.WithMethod(cfg.AreaMethod())}
	if cfg.Verify {
		opts = append(opts, pipeloop.WithVerify())
	}
	opts = append(opts, extra...)

	s, err := batch.NewSolver(
		batch.WithWorkers(cfg.Workers),
		batch.WithLogger(logger),
		batch.WithSolveOptions(opts...),
	)
	if err != nil {
		return nil, err
	}
	logger.Debug("Solving inputs", zap.Int("count", len(inputs)), zap.String("method", cfg.Method))
	return s.SolveAll(cmd.Context(), inputs)
}

// report prints one line per outcome using line and returns errFailedInputs
// if any outcome failed.
func report(cmd *cobra.Command, outcomes []batch.Outcome, line func(io.Writer, batch.Outcome)) error {
	out := cmd.OutOrStdout()
	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", o.Name, o.Err)
			continue
		}
		line(out, o)
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errFailedInputs, failed, len(outcomes))
	}
	return nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	outcomes, err := solveInputs(cmd, args)
	if err != nil {
		return err
	}
	return report(cmd, outcomes, func(w io.Writer, o batch.Outcome) {
		fmt.Fprintf(w, "%s: part1=%d part2=%d\n", o.Name, o.Result.Farthest, o.Result.Enclosed)
	})
}

func runVerify(cmd *cobra.Command, args []string) error {
	outcomes, err := solveInputs(cmd, args, pipeloop.WithVerify())
	if err != nil {
		return err
	}
	return report(cmd, outcomes, func(w io.Writer, o batch.Outcome) {
		fmt.Fprintf(w, "%s: ok enclosed=%d\n", o.Name, o.Result.Enclosed)
	})
}

func runTrace(cmd *cobra.Command, args []string) error {
	outcomes, err := solveInputs(cmd, args)
	if err != nil {
		return err
	}
	return report(cmd, outcomes, func(w io.Writer, o batch.Outcome) {
		if o.Result.Path == nil {
			fmt.Fprintf(w, "%s: no loop through start\n", o.Name)
			return
		}
		fmt.Fprintf(w, "%s: start=%s length=%d farthest=%d enclosed=%d\n",
			o.Name, o.Result.StartTile, o.Result.Path.Len(), o.Result.Farthest, o.Result.Enclosed)
	})
}
