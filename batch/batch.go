package batch

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pipeloop"
)

// ErrInvalidWorkers indicates a worker limit below one.
var ErrInvalidWorkers = errors.New("batch: workers must be at least 1")

// Input is one named maze text.
type Input struct {
	Name string
	Text string
}

// Outcome is the result of solving one Input.
type Outcome struct {
	Name   string
	Result pipeloop.Result
	Err    error
}

// Solver runs pipeloop.Solve over many inputs.
type Solver struct {
	workers int
	logger  *zap.Logger
	opts    []pipeloop.Option
}

// Option configures a Solver.
type Option func(*Solver)

// WithWorkers sets the maximum number of concurrent solves (default 4).
func WithWorkers(n int) Option {
	return func(s *Solver) { s.workers = n }
}

// WithLogger sets the logger (default zap.NewNop()).
func WithLogger(l *zap.Logger) Option {
	return func(s *Solver) { s.logger = l }
}

// WithSolveOptions forwards options to every pipeloop.Solve call.
func WithSolveOptions(opts ...pipeloop.Option) Option {
	return func(s *Solver) { s.opts = append(s.opts, opts...) }
}

// NewSolver builds a Solver. Returns ErrInvalidWorkers for a limit below one.
func NewSolver(opts ...Option) (*Solver, error) {
	s := &Solver{workers: 4, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	if s.workers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWorkers, s.workers)
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s, nil
}

// SolveAll solves every input and returns one Outcome per input, in order.
// Per-input failures are stored on the Outcome. The returned error is
// non-nil only when ctx is cancelled before all inputs are solved.
func (s *Solver) SolveAll(ctx context.Context, inputs []Input) ([]Outcome, error) {
	out := make([]Outcome, len(inputs))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(s.workers)

	for i, in := range inputs {
		if err := egCtx.Err(); err != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			res, err := pipeloop.Solve(in.Text, s.opts...)
			out[i] = Outcome{Name: in.Name, Result: res, Err: err}
			if err != nil {
				s.logger.Warn("Solve failed", zap.String("input", in.Name), zap.Error(err))
				return nil
			}
			s.logger.Debug("Solved",
				zap.String("input", in.Name),
				zap.Int("part1", res.Farthest),
				zap.Int("part2", res.Enclosed),
				zap.Int("length", res.Path.Len()))
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
