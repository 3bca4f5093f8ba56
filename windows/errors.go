package windows

import "errors"

var (
	// ErrIO is returned when a file or directory cannot be opened, read, written or created.
	ErrIO = errors.New("I/O error")

	// ErrSectionNotFound is returned when a required INF section is absent.
	ErrSectionNotFound = errors.New("Section not found")

	// ErrNoMatch is returned when a hardware identifier has no recognised shape.
	ErrNoMatch = errors.New("Unrecognised hardware identifier")

	// ErrEmptyDocument is returned when an INF file has no content lines.
	ErrEmptyDocument = errors.New("Not a usable INF file")

	// ErrInvalidInfPath is returned when the INF path doesn't end in ".inf".
	ErrInvalidInfPath = errors.New("Invalid INF filename")

	ErrAlreadyInstalled = errors.New("Driver is already installed")
	ErrNotInstalled     = errors.New("Driver is not installed")
)
