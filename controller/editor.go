package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"templedit/service/catalog"
	"templedit/service/deploy"
	"templedit/service/fs"
	"templedit/service/render"
	"templedit/service/roots"
	"templedit/service/settings"
	"templedit/websocket"
)

// EditorController bundles the services behind the JSON API.
type EditorController struct {
	store    *settings.Store
	resolver *roots.Resolver
	catalog  *catalog.Catalog
	renderer *render.Renderer
	files    *fs.FSService
	deployer *deploy.Service
	watcher  *websocket.Watcher

	*log.Logger
}

func NewEditorController(store *settings.Store, resolver *roots.Resolver) *EditorController {
	cat := catalog.New(catalog.TemplatesDir())
	return &EditorController{
		store:    store,
		resolver: resolver,
		catalog:  cat,
		renderer: render.New(),
		files:    fs.NewFSService(resolver),
		deployer: deploy.NewService(),
		watcher:  websocket.NewWatcher(cat),
		Logger:   log.New(log.Writer(), "[api] ", log.LstdFlags),
	}
}

func (ec *EditorController) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"templates": ec.catalog.List()})
}

func (ec *EditorController) GetTemplate(c *gin.Context) {
	name := c.Param("name")

	tmpl, err := ec.catalog.Get(name)
	switch {
	case errors.Is(err, catalog.ErrInvalidName):
		ec.Printf("rejected template name %q", name)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid template name"})
	case errors.Is(err, catalog.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
	case err != nil:
		ec.Printf("failed to read template %s: %v", name, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read template"})
	default:
		c.JSON(http.StatusOK, tmpl)
	}
}

func (ec *EditorController) Render(c *gin.Context) {
	var req renderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vars := map[string]any{}
	if len(req.Variables) > 0 {
		if err := json.Unmarshal(req.Variables, &vars); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "variables must be an object"})
			return
		}
	}

	rendered, err := ec.renderer.Render(req.Template, vars)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Template rendering error: %s", err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"rendered": rendered})
}

func (ec *EditorController) Save(c *gin.Context) {
	var req saveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Directory == "" || req.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "directory and filename are required"})
		return
	}

	path, err := ec.files.Save(req.Directory, req.Filename, req.Content)
	switch {
	case errors.Is(err, fs.ErrNotAllowed):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Directory is not under an allowed root"})
	case errors.Is(err, fs.ErrUnsafeFilename):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filename"})
	case errors.Is(err, fs.ErrCreateDir):
		ec.Printf("save failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create directory"})
	case err != nil:
		ec.Printf("save failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
	default:
		c.JSON(http.StatusOK, gin.H{"status": "ok", "path": path})
	}
}

func (ec *EditorController) ListDir(c *gin.Context) {
	listing, err := ec.files.ListDir(c.Query("path"))
	switch {
	case errors.Is(err, fs.ErrNoRoots):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No roots configured"})
	case errors.Is(err, fs.ErrNotAllowed):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Path is not under an allowed root"})
	case errors.Is(err, fs.ErrNotDir):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Path is not a directory"})
	case errors.Is(err, fs.ErrNoOwner):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Path is not under a known root"})
	case err != nil:
		ec.Printf("failed to list directory: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list directory"})
	default:
		c.JSON(http.StatusOK, listing)
	}
}

// GetRoots refreshes the resolver first; an external change to the
// environment or settings file shows up without a restart.
func (ec *EditorController) GetRoots(c *gin.Context) {
	ec.resolver.Refresh()
	c.JSON(http.StatusOK, gin.H{"roots": ec.resolver.Roots()})
}

func (ec *EditorController) Watch(c *gin.Context) {
	ec.watcher.Serve(c.Writer, c.Request)
}
