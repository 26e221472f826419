package server

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"templedit/controller"
	"templedit/middleware"
)

// Start assembles the HTTP engine and listens on the given port. The
// returned channel closes the program when the listener dies.
func Start(port uint) chan int {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.RequestLogger(), middleware.Recovery())

	controller.SetupRoutes(r)

	finishChan := make(chan int)

	go func() {
		log.Fatal(r.Run(fmt.Sprintf(":%d", port)))
		finishChan <- 1
	}()
	log.Printf("started on port %d", port)

	return finishChan
}
