package files

import (
	"errors"
	"fmt"
	"os"
)

// Operation failures are structured so the host can show exactly what did not
// happen, never a bare boolean.
var (
	ErrNotFound           = errors.New("not found")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrNameCollision      = errors.New("name collision")
	ErrInvalidDestination = errors.New("invalid destination")
	ErrDirectoryNotEmpty  = errors.New("directory not empty")
)

// classifyOSError maps an os error onto the taxonomy, keeping the original
// in the chain.
func classifyOSError(err error, path string) error {
	switch {
	case err == nil:
		return nil
	case os.IsNotExist(err):
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	case os.IsPermission(err):
		return fmt.Errorf("%w: %s", ErrPermissionDenied, path)
	case os.IsExist(err):
		return fmt.Errorf("%w: %s", ErrNameCollision, path)
	default:
		return err
	}
}
