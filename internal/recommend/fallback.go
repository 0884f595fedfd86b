package recommend

import "regexp"

// Fallback returns the deterministic default slice used when the gateway is
// disabled or fails: the first MaxRecommendations candidates, excluding the
// product being viewed.
func Fallback(candidates []Candidate, excludeID string) []string {
	var out []string
	for _, c := range candidates {
		if c.ID == excludeID {
			continue
		}
		out = append(out, c.ID)
		if len(out) == MaxRecommendations {
			break
		}
	}
	return out
}

// Models wrap arrays in markdown fences often enough that stripping them is
// table stakes for any JSON-speaking gateway.
var (
	fencedArrayPattern = regexp.MustCompile("(?s)```(?:json)?\\s*\\n?(\\[.*?\\])\\s*```")
	bareArrayPattern   = regexp.MustCompile(`(?s)\[[\s\S]*\]`)
)

// extractJSONArray pulls a JSON array out of model output, tolerating
// markdown code fences and surrounding prose.
func extractJSONArray(content string) string {
	if m := fencedArrayPattern.FindStringSubmatch(content); len(m) > 1 {
		return m[1]
	}
	return bareArrayPattern.FindString(content)
}
