package filemanager

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/aleister1102/htmlredline/internal/common/errorwrapper"
)

// DefaultMaxInputFileSize bounds how much HTML the shell will read into
// memory at once.
const DefaultMaxInputFileSize = 32 << 20 // 32MB

// FileManager handles bounded reading of input files for the CLI shell and
// the config loader.
type FileManager struct {
	logger      zerolog.Logger
	maxFileSize int64
}

// NewFileManager creates a new FileManager instance
func NewFileManager(logger zerolog.Logger) *FileManager {
	return &FileManager{
		logger:      logger.With().Str("component", "FileManager").Logger(),
		maxFileSize: DefaultMaxInputFileSize,
	}
}

// FileExists checks whether path exists and is a regular file.
func (fm *FileManager) FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ReadFileContent reads the whole file, rejecting files over the size bound.
func (fm *FileManager) ReadFileContent(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to stat file")
	}
	if info.IsDir() {
		return nil, errorwrapper.NewValidationError("path", path, "path is a directory, not a file")
	}
	if info.Size() > fm.maxFileSize {
		return nil, errorwrapper.NewValidationError("path", path, "file exceeds maximum input size")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to read file")
	}

	fm.logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("Read input file")
	return data, nil
}
