package ui

import (
	"path/filepath"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"emojipick/internal/theme"
)

var (
	watchOnce sync.Once
	watch     *fsnotify.Watcher
	watchCh   = make(chan struct{}, 8)
)

type themeTickMsg struct{ Theme theme.Theme }

func watchPaths() []string {
	f := theme.OmarchyThemeFile()
	if f == "" {
		return nil
	}
	// Watch the symlinked dirs too: theme switches replace the link, not
	// the file.
	dir := filepath.Dir(f)
	return []string{filepath.Dir(dir), dir, f}
}

func startThemeWatcher() error {
	var err error
	watch, err = fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	for _, p := range watchPaths() {
		_ = watch.Add(p)
	}
	go func() {
		for {
			select {
			case <-watch.Events:
				select {
				case watchCh <- struct{}{}:
				default:
				}
			case <-watch.Errors:
				// ignore; the next event retriggers
			}
		}
	}()
	return nil
}

func themeWatchStartCmd(mode string) tea.Cmd {
	return func() tea.Msg {
		// Without a watcher the theme simply stops live-reloading.
		watchOnce.Do(func() { _ = startThemeWatcher() })
		return themeTickMsg{Theme: theme.Detect(mode)}
	}
}

func themeWatchWaitCmd(mode string) tea.Cmd {
	return func() tea.Msg {
		<-watchCh
		return themeTickMsg{Theme: theme.Detect(mode)}
	}
}
