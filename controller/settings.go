package controller

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"templedit/pathguard"
	"templedit/service/settings"
)

func (ec *EditorController) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, ec.store.Load())
}

// GetNavColors serves the whitelist so the picker never offers a color
// the save path would reject.
func (ec *EditorController) GetNavColors(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"colors": settings.AllowedNavColors})
}

func (ec *EditorController) SaveSettings(c *gin.Context) {
	var req settingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	additionalRoot := strings.TrimSpace(req.AdditionalRoot)
	if additionalRoot != "" {
		info, err := os.Stat(additionalRoot)
		if err != nil || !info.IsDir() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Path is not a valid directory"})
			return
		}
		additionalRoot = pathguard.Canonicalize(additionalRoot)
	}

	navbarColor := settings.DefaultNavbarColor
	if req.NavbarColor != nil {
		navbarColor = strings.TrimSpace(*req.NavbarColor)
	}
	if normalized := settings.NormalizeNavbarColor(navbarColor); normalized != navbarColor {
		ec.Printf("navbar color %q not in the allowed list, using %q", navbarColor, normalized)
		navbarColor = normalized
	}

	saved := settings.Settings{
		AdditionalRoot: additionalRoot,
		NavbarColor:    navbarColor,
	}
	if err := ec.store.Save(saved); err != nil {
		ec.Printf("failed to save settings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
		return
	}

	// New root must be usable before the response lands.
	ec.resolver.Refresh()

	c.JSON(http.StatusOK, gin.H{"status": "ok", "settings": saved})
}
