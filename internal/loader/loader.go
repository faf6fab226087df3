// Package loader reads text files for analysis.
package loader

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"syscall"
	"unicode/utf8"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/sirupsen/logrus"
)

var (
	// ErrFileNotFound is returned when the path does not name an existing file.
	ErrFileNotFound = errors.New("file not found")
	// ErrInvalidEncoding is returned when the content is not valid UTF-8.
	ErrInvalidEncoding = errors.New("invalid UTF-8 content")
)

var newlineReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Loader reads whole files from a billy filesystem.
type Loader struct {
	fs      billy.Filesystem
	resolve func(string) (string, error)
	log     logrus.FieldLogger
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger used for debug output.
func WithLogger(log logrus.FieldLogger) Option {
	return func(l *Loader) {
		l.log = log
	}
}

// New creates a Loader over the given filesystem. Paths are used as given.
func New(bfs billy.Filesystem, opts ...Option) *Loader {
	l := &Loader{
		fs:      bfs,
		resolve: func(path string) (string, error) { return path, nil },
		log:     discardLogger(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NewLocal creates a Loader over the local filesystem.
// Relative paths resolve against the working directory.
func NewLocal(opts ...Option) *Loader {
	l := New(osfs.New("/"), opts...)
	l.resolve = filepath.Abs
	return l
}

// Load returns the full decoded content of path with line endings normalized to "\n".
func (l *Loader) Load(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", ErrFileNotFound)
	}
	resolved, err := l.resolve(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	info, err := l.fs.Stat(resolved)
	if err != nil {
		if isNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", path)
	}

	file, err := l.fs.Open(resolved)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only input.
			_ = cerr
		}
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s", ErrInvalidEncoding, path)
	}
	l.log.WithFields(logrus.Fields{"path": resolved, "bytes": len(data)}).Debug("loaded file")
	return normalizeNewlines(string(data)), nil
}

// isNotExist reports whether err means the path names no file,
// including a parent component that is a regular file.
func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}

// normalizeNewlines turns "\r\n" and lone "\r" into "\n".
func normalizeNewlines(text string) string {
	if !strings.Contains(text, "\r") {
		return text
	}
	return newlineReplacer.Replace(text)
}

func discardLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
