package websocket

import (
	"log"
	"os"
	"strconv"
	"time"
)

const (
	timeoutName = "TEMPLATE_EDITOR_WATCH_TIMEOUT"
)

var (
	watchTimeout = time.Duration(getEnvTimeout()) * time.Minute
)

func getEnvTimeout() int {
	if timeout := os.Getenv(timeoutName); timeout == "" {
		log.Printf("$%s not set, default to 10 minutes", timeoutName)
	} else {
		timeout, err := strconv.Atoi(timeout)
		if err == nil {
			return timeout
		}
		log.Printf("$%s (%v) is not a valid integer, default to 10 minutes", timeoutName, timeout)
	}

	return 10
}
