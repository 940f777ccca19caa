package core

import (
	"errors"
)

var (
	// ErrWindowCreation is fatal at startup; the windowing subsystem is
	// released before the process exits.
	ErrWindowCreation = errors.New("window creation failed")
	// ErrUnsupportedImage marks a decoded image whose channel count the
	// texture registry does not accept.
	ErrUnsupportedImage = errors.New("unsupported image channel count")
	ErrUnknown          = errors.New("unknown")
)
