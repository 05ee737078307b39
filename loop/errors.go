package loop

import "errors"

var (
	// ErrNoLoop indicates no closed loop passes through Start.
	ErrNoLoop = errors.New("loop: no loop through start")
	// ErrBrokenPipe indicates a tile was entered through a side it does not open.
	ErrBrokenPipe = errors.New("loop: tile does not accept arrival side")
)
