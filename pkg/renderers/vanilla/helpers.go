package vanilla

import (
	"sort"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	helpPolicyOnce sync.Once
	helpPolicy     *bluemonday.Policy
)

// sanitizeHelp keeps the inline markup help text may carry and strips the
// rest.
func sanitizeHelp(help string) string {
	helpPolicyOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowElements("b", "strong", "i", "em", "code", "small", "br", "span")
		policy.AllowAttrs("href").OnElements("a")
		policy.AllowElements("a")
		policy.RequireNoFollowOnLinks(true)
		policy.AllowStandardURLs()
		helpPolicy = policy
	})
	return strings.TrimSpace(helpPolicy.Sanitize(help))
}

// sanitizeClassList drops empty tokens and collapses whitespace.
func sanitizeClassList(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		if strings.HasPrefix(key, "--") {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		value := strings.TrimSpace(vars[key])
		if value == "" || strings.ContainsAny(value, ";\"<>") {
			continue
		}
		parts = append(parts, key+": "+value)
	}
	return strings.Join(parts, "; ")
}
