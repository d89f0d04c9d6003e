package util

import "github.com/pkg/errors"

// ErrInvalidArgument is the cause of errors returned for arguments a helper cannot work with,
// such as an empty delimiter
var ErrInvalidArgument = errors.New("invalid argument")

// IsInvalidArgument returns true if the cause of the error is ErrInvalidArgument
func IsInvalidArgument(err error) bool {
	return err != nil && errors.Cause(err) == ErrInvalidArgument
}
