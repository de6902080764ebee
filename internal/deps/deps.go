package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"shoebox/internal/config"
)

// Requirement defines an external dependency shoebox relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// Requirements returns the external binaries the import pipeline invokes.
// exiftool and ffprobe are optional in the strict sense: the resolver
// degrades to extension-only metadata without them. The corruption tool is
// only listed when probing is enabled.
func Requirements(cfg *config.Config) []Requirement {
	reqs := []Requirement{
		{
			Name:        "exiftool",
			Command:     cfg.ExiftoolBinary(),
			Description: "photo capture metadata extraction",
			Optional:    true,
		},
		{
			Name:        "ffprobe",
			Command:     cfg.FFprobeBinary(),
			Description: "video container metadata extraction",
			Optional:    true,
		},
	}
	if cfg.Import.CheckCorruption {
		reqs = append(reqs, Requirement{
			Name:        "identify",
			Command:     cfg.IdentifyBinary(),
			Description: "image corruption probing",
		})
	}
	return reqs
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Available = false
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Available = false
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}
