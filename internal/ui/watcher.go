package ui

import (
	"log"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// ConfigChangedMsg signals that the config file has changed
type ConfigChangedMsg struct {
	Path string
}

// WatchConfigCmd returns a command that waits for the next write to the
// config file. The directory is watched so editors that replace the file
// on save are still seen.
func WatchConfigCmd(configPath string) tea.Cmd {
	return func() tea.Msg {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			log.Printf("watcher: failed to create file watcher: %v", err)
			return nil
		}
		defer watcher.Close()

		configDir := filepath.Dir(configPath)
		if err := watcher.Add(configDir); err != nil {
			log.Printf("watcher: failed to watch config directory: %v", err)
			return nil
		}

		log.Printf("watcher: watching %s", configPath)

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}

				// Only care about Write and Create events
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if filepath.Clean(event.Name) != filepath.Clean(configPath) {
					continue
				}

				log.Printf("watcher: detected change in %s", filepath.Base(event.Name))
				return ConfigChangedMsg{Path: configPath}

			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				log.Printf("watcher: file watcher error: %v", err)
			}
		}
	}
}
