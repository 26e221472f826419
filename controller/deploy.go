package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"templedit/service/deploy"
)

func (ec *EditorController) Deploy(c *gin.Context) {
	var req deployRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	target := deploy.Target{
		Host:     req.Host,
		Port:     req.Port,
		Username: req.Username,
		Password: req.Password,
	}

	path, err := ec.deployer.Push(target, req.Directory, req.Filename, req.Content)
	switch {
	case errors.Is(err, deploy.ErrUnsafeFilename):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filename"})
	case err != nil:
		ec.Printf("deploy failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"status": "ok", "path": path})
	}
}
