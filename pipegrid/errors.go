package pipegrid

import "errors"

var (
	// ErrEmptyGrid indicates the input text holds no tiles.
	ErrEmptyGrid = errors.New("pipegrid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("pipegrid: all rows must have the same length")
	// ErrUnknownTile indicates a character that is not a known tile symbol.
	ErrUnknownTile = errors.New("pipegrid: unknown tile symbol")
	// ErrNoStart indicates the grid has no Start tile.
	ErrNoStart = errors.New("pipegrid: no start tile")
	// ErrMultipleStart indicates the grid has more than one Start tile.
	ErrMultipleStart = errors.New("pipegrid: more than one start tile")
)
