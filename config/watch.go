package config

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/lixenwraith/moonwalk/core"
	"github.com/lixenwraith/moonwalk/panel"
)

// Watch reloads the file at path whenever it is written or replaced and sends
// the resulting mixer settings, environment overrides included
// The directory is watched so editors that replace the file are seen
// The channel closes when ctx is done
func Watch(ctx context.Context, path string) (<-chan panel.Settings, error) {
	p, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}
	p = filepath.Clean(p)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch config: %w", err)
	}
	if err := w.Add(filepath.Dir(p)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch config: %w", err)
	}

	out := make(chan panel.Settings, 1)
	core.Go(func() {
		defer close(out)
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != p || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				cfg, err := Load(p)
				if err != nil {
					log.Printf("config reload: %v", err)
					continue
				}
				select {
				case out <- cfg.Mixer:
				case <-ctx.Done():
					return
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("config watch: %v", err)
			}
		}
	})
	return out, nil
}
