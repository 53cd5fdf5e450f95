package asset

import (
	"errors"
	"fmt"
)

// Kind identifies what an asset decodes into
type Kind int

const (
	KindTexture Kind = iota
	KindModel
	KindSound
)

func (k Kind) String() string {
	switch k {
	case KindTexture:
		return "texture"
	case KindModel:
		return "model"
	case KindSound:
		return "sound"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Sentinel errors
var (
	ErrLoadFailure   = errors.New("asset load failed")
	ErrUnknownFormat = errors.New("unrecognized asset format")
	ErrEmptyModel    = errors.New("model has no clips")
)

// LoadError reports a failed load; it matches both ErrLoadFailure and the underlying cause
type LoadError struct {
	Kind Kind
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s %q: %v", e.Kind, e.Path, e.Err)
}

func (e *LoadError) Unwrap() []error {
	return []error{ErrLoadFailure, e.Err}
}
