package main

import (
	"flag"

	"templedit/logging"
	"templedit/server"
)

func main() {
	var port uint

	flag.UintVar(&port, "port", 8080, "The port to listen on")
	flag.Parse()

	logging.Setup("logs")

	<-server.Start(port)
}
