package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"templedit/service/roots"
	"templedit/service/settings"
)

func SetupRoutes(r *gin.Engine) {
	store := settings.NewStore(settings.InstanceDir())
	resolver := roots.NewResolver(store)

	editor := NewEditorController(store, resolver)
	api := r.Group("/api")
	{
		api.GET("/templates", editor.ListTemplates)
		api.GET("/template/:name", editor.GetTemplate)
		api.POST("/render", editor.Render)
		api.POST("/save", editor.Save)
		api.GET("/list_dir", editor.ListDir)
		api.GET("/roots", editor.GetRoots)
		api.GET("/settings", editor.GetSettings)
		api.POST("/settings", editor.SaveSettings)
		api.GET("/nav_colors", editor.GetNavColors)
		api.POST("/deploy", editor.Deploy)
		api.GET("/watch", editor.Watch)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
}
