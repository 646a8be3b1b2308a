package level

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed defaults
var defaultLevelFS embed.FS

// Default returns the repository of levels shipped with the binary.
// Used when no levels directory is configured.
func Default() (*Repository, error) {
	sub, err := fs.Sub(defaultLevelFS, "defaults")
	if err != nil {
		return nil, fmt.Errorf("level: embedded levels unavailable: %w", err)
	}
	levels, err := loadFS(sub)
	if err != nil {
		return nil, fmt.Errorf("level: loading embedded levels: %w", err)
	}
	return NewRepository(levels)
}
