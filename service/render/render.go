package render

import (
	"fmt"
	"log"

	"github.com/mitsuhiko/minijinja/minijinja-go/v2"
)

// previewName is the synthetic template name served by the loader.
const previewName = "preview"

// Renderer turns template source plus variables into final script text.
type Renderer struct {
	*log.Logger
}

func New() *Renderer {
	return &Renderer{
		Logger: log.New(log.Writer(), "[render] ", log.LstdFlags),
	}
}

// Render substitutes vars into source under a strict-undefined policy:
// referencing a variable that was not supplied is an error, never
// silent empty output. Engine errors describe problems in the caller's
// template or variables, so they surface as-is.
func (r *Renderer) Render(source string, vars map[string]any) (string, error) {
	// A fresh environment per call; the engine caches templates by
	// name, and the source behind "preview" changes every request.
	env := minijinja.NewEnvironment()
	defer env.Close()

	env.SetUndefinedBehavior(minijinja.UndefinedBehaviorStrict)
	env.SetLoader(func(name string) (string, error) {
		if name != previewName {
			return "", fmt.Errorf("template %q not found", name)
		}
		return source, nil
	})

	tmpl, err := env.GetTemplate(previewName)
	if err != nil {
		return "", err
	}

	return tmpl.Render(vars)
}
