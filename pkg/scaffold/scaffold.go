package scaffold

import "errors"

const collectionTemplate = "collection.yml"

// ErrSlugMissing is returned when an outline has no slug to render.
var ErrSlugMissing = errors.New("scaffold: outline slug is required")

// Generate renders the outline into a starter collection definition the
// config loader accepts.
func Generate(engine *Engine, outline Outline) (string, error) {
	if outline.Slug == "" {
		return "", ErrSlugMissing
	}
	if engine == nil {
		var err error
		engine, err = NewEngine()
		if err != nil {
			return "", err
		}
	}
	return engine.Render(collectionTemplate, map[string]any{
		"slug":   outline.Slug,
		"fields": outline.Fields,
	})
}
