package asset

import (
	"errors"
	"fmt"
)

var ErrNoScene = errors.New("model has no scene")

type LoadError struct {
	Name string
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load model %q from %q: %v", e.Name, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
