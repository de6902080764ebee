package mediameta

import (
	"context"
	"errors"
	"os/exec"
	"strings"
)

// identifyProbe runs the external image tool against path. A nonzero exit
// status means the image failed decoding and is treated as corrupted. Failing
// to launch the tool at all (missing binary, cancelled context) is returned
// as an error so the caller can degrade instead of rejecting the file.
func identifyProbe(ctx context.Context, binary string, path string) (bool, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "identify"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return false, errors.New("identify probe: empty path")
	}

	cmd := exec.CommandContext(ctx, binary, "-regard-warnings", "--", path)
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}
