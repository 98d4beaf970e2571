package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

const (
	debugPrefix = "debug-"
	debugSuffix = ".log"
)

var (
	debugFile *os.File
	debugOnce sync.Once
	logsDir   string
	mu        sync.RWMutex
)

// ConfigureDebug sets the directory for debug logs
func ConfigureDebug(dir string) {
	mu.Lock()
	defer mu.Unlock()
	logsDir = dir
}

// Debug writes a message to the debug log file in the configured directory
func Debug(format string, args ...any) {
	// add timestamp to each debug message
	timestamp := time.Now().Format("2006-01-02 15:04:05")

	mu.RLock()
	dir := logsDir
	mu.RUnlock()

	// If no logs directory is configured, do nothing
	if dir == "" {
		return
	}

	debugOnce.Do(func() {
		_ = os.MkdirAll(dir, 0o755)
		name := fmt.Sprintf("%s%s%s", debugPrefix, time.Now().Format("20060102-150405"), debugSuffix)
		debugFile, _ = os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	})

	mu.Lock()
	defer mu.Unlock()
	if debugFile != nil {
		fmt.Fprintf(debugFile, "[%s] %s\n", timestamp, fmt.Sprintf(format, args...))
	}
}

// CleanupLogs removes all but the newest keep debug logs from the configured
// directory. keep <= 0 disables cleanup.
func CleanupLogs(keep int) {
	mu.RLock()
	dir := logsDir
	mu.RUnlock()

	if dir == "" || keep <= 0 {
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	var logs []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, debugPrefix) || !strings.HasSuffix(name, debugSuffix) {
			continue
		}
		logs = append(logs, name)
	}
	if len(logs) <= keep {
		return
	}

	// Names embed the start time, so lexical order is chronological.
	sort.Strings(logs)
	for _, name := range logs[:len(logs)-keep] {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			Debug("Failed to remove old log %s: %v", name, err)
		}
	}
}
