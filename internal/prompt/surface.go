package prompt

import "strings"

// Surface names a caller entry point. Each surface honours a fixed subset of
// the optional fields; everything else is cleared before assembly.
type Surface string

const (
	// SurfaceFull honours every field.
	SurfaceFull Surface = "full"
	// SurfaceQuick is the short form: tonality, text length and author are the
	// only optional fields it keeps.
	SurfaceQuick Surface = "quick"
)

var surfaces = []Surface{SurfaceFull, SurfaceQuick}

// ParseSurface maps a request value to a Surface. Empty means SurfaceFull.
func ParseSurface(raw string) (Surface, error) {
	switch s := Surface(strings.ToLower(strings.TrimSpace(raw))); s {
	case "":
		return SurfaceFull, nil
	case SurfaceFull, SurfaceQuick:
		return s, nil
	default:
		return "", configError("surface", "unknown surface %q", raw)
	}
}

// ApplySurface returns a copy of cfg with the fields s does not honour cleared.
func ApplySurface(cfg Config, s Surface) Config {
	if s != SurfaceQuick {
		return cfg
	}
	return Config{
		TopicGuideline: cfg.TopicGuideline,
		Role:           cfg.Role,
		Task:           cfg.Task,
		Tonality:       cfg.Tonality,
		TextLength:     cfg.TextLength,
		Language:       cfg.Language,
		Author:         cfg.Author,
	}
}
