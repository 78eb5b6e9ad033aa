package vault

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// ChangeCallback is called with the vault-relative path of a note file
// that was created, written, removed, or renamed.
type ChangeCallback func(path string)

// Watch starts an fsnotify watcher on the vault root and reports note
// file changes until ctx is cancelled. The watcher holds no index state:
// backlink queries always re-scan the corpus, so a change event is purely
// an invalidation signal telling consumers to query again.
//
// New directories created at runtime are automatically added to the watch
// list.
func Watch(ctx context.Context, root string, exts []string, logger *slog.Logger, cb ChangeCallback) error {
	if len(exts) == 0 {
		exts = []string{".md"}
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := addDirsRecursive(w, root); err != nil {
		return err
	}

	logger.Info("watcher: started", slog.String("root", root))

	isNote := func(name string) bool {
		for _, ext := range exts {
			if strings.HasSuffix(name, ext) {
				return true
			}
		}
		return false
	}

	for {
		select {
		case <-ctx.Done():
			logger.Info("watcher: stopped")
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}

			absPath := ev.Name

			// New directories are added to the watch list and any note
			// files already inside them are announced.
			if ev.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(absPath); statErr == nil && info.IsDir() {
					if addErr := addDirsRecursive(w, absPath); addErr != nil {
						logger.Warn("watcher: add new dir failed",
							slog.String("path", absPath),
							slog.String("error", addErr.Error()))
					} else {
						logger.Debug("watcher: watching new dir", slog.String("path", absPath))
					}
					announceDir(root, absPath, isNote, cb)
					continue
				}
			}

			if !isNote(absPath) {
				continue
			}

			rel, relErr := filepath.Rel(root, absPath)
			if relErr != nil {
				continue
			}
			rel = filepath.ToSlash(rel)

			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0 {
				logger.Debug("watcher: note changed",
					slog.String("path", rel),
					slog.String("op", ev.Op.String()))
				if cb != nil {
					cb(rel)
				}
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}

// announceDir reports any note files found in a newly created directory.
func announceDir(root, dirPath string, isNote func(string) bool, cb ChangeCallback) {
	if cb == nil {
		return
	}
	_ = filepath.WalkDir(dirPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !isNote(path) {
			return nil
		}
		if rel, relErr := filepath.Rel(root, path); relErr == nil {
			cb(filepath.ToSlash(rel))
		}
		return nil
	})
}

// addDirsRecursive adds root and all its subdirectories to the watcher.
func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}
