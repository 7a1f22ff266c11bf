package configwatcher

import (
	"path/filepath"
	"time"

	"advent_quiz_backend/internal/config"
	"advent_quiz_backend/pkg/logger"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Reloader receives the freshly parsed config after the file changed on disk.
type Reloader func(cfg *config.Config)

// Watch blocks on the config file and invokes reloader after each write.
// Writes are debounced because editors and orchestrators tend to fire several
// events per save. Intended to run in its own goroutine.
func Watch(configFile string, reloader Reloader) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Log.Error("config watcher init failed", zap.Error(err))
		return
	}
	defer watcher.Close()

	absPath, err := filepath.Abs(configFile)
	if err != nil {
		logger.Log.Error("config watcher path resolve failed", zap.String("file", configFile), zap.Error(err))
		return
	}
	if err := watcher.Add(absPath); err != nil {
		logger.Log.Error("config watcher add failed", zap.String("file", absPath), zap.Error(err))
		return
	}

	timer := time.NewTimer(0)
	<-timer.C

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Write == fsnotify.Write {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(time.Second)
			}
		case <-timer.C:
			cfg, err := config.LoadConfig(filepath.Dir(absPath))
			if err != nil {
				logger.Log.Error("config reload failed", zap.Error(err))
				continue
			}
			logger.Log.Info("config reloaded", zap.String("file", absPath))
			reloader(cfg)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Log.Warn("config watcher error", zap.Error(err))
		}
	}
}
