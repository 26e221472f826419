package catalog

import (
	"log"
	"os"
)

const envTemplatesDir = "TEMPLATE_EDITOR_TEMPLATES"

const defaultTemplatesDir = "script_templates"

// TemplatesDir resolves the template directory, preferring the
// environment override when it names an existing directory.
func TemplatesDir() string {
	if dir := os.Getenv(envTemplatesDir); dir == "" {
		log.Printf("$%s not set, using %s", envTemplatesDir, defaultTemplatesDir)
	} else {
		info, err := os.Stat(dir)
		if err == nil && info.IsDir() {
			return dir
		}
		log.Printf("$%s (%s) is not a valid path, using %s", envTemplatesDir, dir, defaultTemplatesDir)
	}

	return defaultTemplatesDir
}
