package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/tidwall/match"
)

// DefaultDebounce is how long the watcher waits for a burst of events to settle
const DefaultDebounce = 100 * time.Millisecond

// Change is one file that changed during a burst
type Change struct {
	Path string
	Op   fsnotify.Op
}

// FileWatcher watches files under a root directory for changes based on patterns.
//
// Patterns are glob patterns matched against the slash-separated path relative to
// the root; a pattern starting with "**/" also matches at the root itself.
// Exclude patterns ending in "/" name directories that are skipped entirely.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	root     string
	patterns []string
	exclude  []string
	debounce time.Duration
	logger   zerolog.Logger
	onChange func(changes []Change)
}

// Option configures a FileWatcher
type Option func(*FileWatcher)

// WithDebounce sets the settle time; zero reports every event immediately
func WithDebounce(d time.Duration) Option {
	return func(fw *FileWatcher) {
		fw.debounce = d
	}
}

// WithLogger sets the logger used for watcher errors
func WithLogger(logger zerolog.Logger) Option {
	return func(fw *FileWatcher) {
		fw.logger = logger.With().Str("component", "watcher").Logger()
	}
}

// NewFileWatcher creates a new file watcher rooted at root
func NewFileWatcher(root string, patterns, exclude []string, onChange func(changes []Change), opts ...Option) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	fw := &FileWatcher{
		watcher:  watcher,
		root:     root,
		patterns: patterns,
		exclude:  exclude,
		debounce: DefaultDebounce,
		logger:   zerolog.Nop(),
		onChange: onChange,
	}

	for _, opt := range opts {
		opt(fw)
	}

	return fw, nil
}

// AddDirectory recursively adds a directory to the watcher
func (fw *FileWatcher) AddDirectory(dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Only watch directories
		if !info.IsDir() {
			return nil
		}

		if path != fw.root && fw.excludedDir(fw.rel(path)) {
			return filepath.SkipDir
		}

		if err := fw.watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch directory %s: %w", path, err)
		}

		return nil
	})
}

// Start watches for file changes until ctx is done. Matching events are
// collected until no new event arrives for the debounce period and then
// reported together, sorted by path.
func (fw *FileWatcher) Start(ctx context.Context) error {
	pending := make(map[string]fsnotify.Op)

	var timer *time.Timer
	var settle <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	flush := func() {
		if len(pending) == 0 {
			return
		}
		changes := make([]Change, 0, len(pending))
		for path, op := range pending {
			changes = append(changes, Change{Path: path, Op: op})
		}
		sort.Slice(changes, func(i, j int) bool { return changes[i].Path < changes[j].Path })
		clear(pending)
		fw.onChange(changes)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher channel closed")
			}

			// If a new directory is created, add it to the watcher
			if event.Op&fsnotify.Create == fsnotify.Create {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := fw.AddDirectory(event.Name); err != nil {
						fw.logger.Warn().Err(err).Str("path", event.Name).Msg("failed to watch new directory")
					}
					continue
				}
			}

			if !fw.shouldWatch(event.Name) {
				continue
			}

			pending[event.Name] |= event.Op
			if fw.debounce <= 0 {
				flush()
				continue
			}
			if timer == nil {
				timer = time.NewTimer(fw.debounce)
			} else {
				timer.Reset(fw.debounce)
			}
			settle = timer.C

		case <-settle:
			settle = nil
			flush()

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher error channel closed")
			}
			if err != nil {
				// Log error but continue watching
				fw.logger.Warn().Err(err).Msg("watcher error")
			}
		}
	}
}

// rel returns path relative to the root with forward slashes
func (fw *FileWatcher) rel(path string) string {
	rel, err := filepath.Rel(fw.root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

// excludedDir reports whether any directory of rel is excluded
func (fw *FileWatcher) excludedDir(rel string) bool {
	parts := strings.Split(rel, "/")
	for _, pattern := range fw.exclude {
		dirPattern, isDir := strings.CutSuffix(pattern, "/")
		if !isDir {
			continue
		}
		for _, part := range parts {
			if match.Match(part, dirPattern) {
				return true
			}
		}
	}
	return false
}

// shouldWatch checks if a file should trigger a change event based on patterns
func (fw *FileWatcher) shouldWatch(path string) bool {
	rel := fw.rel(path)
	base := filepath.Base(path)

	dir, _ := filepath.Split(rel)
	if dir != "" && fw.excludedDir(strings.TrimSuffix(dir, "/")) {
		return false
	}

	// Check excludes first
	for _, pattern := range fw.exclude {
		if !strings.HasSuffix(pattern, "/") && match.Match(base, pattern) {
			return false
		}
	}

	// Check if file matches any watch pattern
	for _, pattern := range fw.patterns {
		if rest, ok := strings.CutPrefix(pattern, "**/"); ok {
			if match.Match(rel, pattern) || match.Match(base, rest) {
				return true
			}
			continue
		}
		// '*' crosses separators in match, so the depth has to agree
		if strings.Count(rel, "/") == strings.Count(pattern, "/") && match.Match(rel, pattern) {
			return true
		}
	}

	return false
}

// Close stops the watcher
func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}
