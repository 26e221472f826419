package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

// Setup points the default logger at stdout plus a dated file under
// dir. Services derive their tagged loggers from log.Writer(), so this
// must run before any of them is constructed. The file sink is best
// effort: if it cannot be opened the process keeps logging to stdout.
func Setup(dir string) {
	log.SetOutput(os.Stdout)

	if err := os.MkdirAll(dir, 0750); err != nil {
		log.Printf("failed to create log directory %s: %v", dir, err)
		return
	}

	path := filepath.Join(dir, fmt.Sprintf("app-%s.log", time.Now().Format("2006-01-02")))
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0640)
	if err != nil {
		log.Printf("failed to open log file %s: %v", path, err)
		return
	}

	log.SetOutput(io.MultiWriter(os.Stdout, file))
	log.Printf("logging to %s", path)
}
