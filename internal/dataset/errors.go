package dataset

import "github.com/rotisserie/eris"

var (
	// ErrNotFound is returned when the source file does not exist.
	ErrNotFound = eris.New("dataset: source not found")
	// ErrInvalidRow is returned in strict mode for rows outside the expected shape.
	ErrInvalidRow = eris.New("dataset: invalid row")
)

// IsNotFound reports whether err means the source file is absent.
func IsNotFound(err error) bool {
	return eris.Is(err, ErrNotFound)
}
