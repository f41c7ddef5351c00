package skillz

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalizer converts raw model-suggested skill names into clean,
// deduplicated canonical names. Known aliases map to their canonical
// spelling; everything else gets Unicode-safe title casing.
type Normalizer struct {
	aliases map[string]string
	caser   cases.Caser
}

// NewNormalizer creates a Normalizer using the provided alias map
// (lowercase alias -> canonical name). A nil map is valid.
func NewNormalizer(aliases map[string]string) *Normalizer {
	return &Normalizer{
		aliases: aliases,
		caser:   cases.Title(language.English),
	}
}

// Normalize canonicalizes the raw skill names and removes duplicates,
// preserving first-seen order.
func (n *Normalizer) Normalize(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))

	for _, r := range raw {
		lookup := strings.ToLower(strings.TrimSpace(r))
		if lookup == "" {
			continue
		}

		canonical, ok := n.aliases[lookup]
		if !ok {
			canonical = n.caser.String(lookup)
		}

		if _, dup := seen[canonical]; dup {
			continue
		}
		seen[canonical] = struct{}{}
		out = append(out, canonical)
	}

	return out
}

// DefaultAliases returns the built-in alias map covering the spellings we
// see most often in model output.
func DefaultAliases() map[string]string {
	return map[string]string{
		"go":         "Go",
		"golang":     "Go",
		"js":         "JavaScript",
		"javascript": "JavaScript",
		"ts":         "TypeScript",
		"typescript": "TypeScript",
		"k8s":        "Kubernetes",
		"postgres":   "PostgreSQL",
		"postgresql": "PostgreSQL",
		"nodejs":     "Node.js",
		"node.js":    "Node.js",
		"node":       "Node.js",
		"reactjs":    "React",
		"react.js":   "React",
	}
}
