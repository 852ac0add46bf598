package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/yvynation/zonepack/internal/logger"
)

// debounce absorbs editor save bursts before rebuilding.
const debounce = 500 * time.Millisecond

// watchManifest rebuilds the session whenever files in the manifest's
// directory change. A failed rebuild keeps watching; the previous
// archive on disk stays as-is.
func watchManifest(cmd *cobra.Command, manifestPath, outDir string) error {
	if err := runSession(cmd, manifestPath, outDir); err != nil {
		cmd.PrintErrf("Initial run failed: %v\n", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors replace files by
	// rename, which drops a plain file watch.
	dir := filepath.Dir(manifestPath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	cmd.Printf("Watching %s (Ctrl-C to stop)\n", dir)

	var timer *time.Timer
	var pending <-chan time.Time
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Write | fsnotify.Create | fsnotify.Rename) {
				continue
			}
			// Ignore our own archive output when it lands in the
			// watched directory.
			if filepath.Ext(event.Name) == ".zip" {
				continue
			}
			logger.Debug("Change detected: %s", event.Name)
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			pending = timer.C

		case <-pending:
			pending = nil
			if err := runSession(cmd, manifestPath, outDir); err != nil {
				cmd.PrintErrf("Rebuild failed: %v\n", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)

		case <-signals:
			cmd.Println("Stopping.")
			return nil
		}
	}
}
