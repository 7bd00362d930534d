package nonempty

import "errors"

var (
	ErrEmptySource = errors.New("nonempty: empty source")
)
