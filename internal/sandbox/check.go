package sandbox

import (
	"fmt"
	"regexp"
	"strings"
)

// AllowedImports are the only modules learner code may import.
var AllowedImports = map[string]bool{
	"math":        true,
	"random":      true,
	"datetime":    true,
	"itertools":   true,
	"functools":   true,
	"collections": true,
	"operator":    true,
	"string":      true,
	"re":          true,
	"json":        true,
	"csv":         true,
}

var forbiddenCalls = []string{
	"exec", "eval", "compile", "__import__", "open", "file",
	"input", "raw_input", "exit", "quit", "help", "credits",
}

type forbiddenCall struct {
	name string
	re   *regexp.Regexp
}

var (
	forbiddenCallPatterns = compileForbidden(forbiddenCalls)

	dangerousPatterns = []*regexp.Regexp{
		regexp.MustCompile(`__\w+__`),
		regexp.MustCompile(`\bglobals\s*\(\s*\)`),
		regexp.MustCompile(`\blocals\s*\(\s*\)`),
		regexp.MustCompile(`\bvars\s*\(\s*\)`),
		regexp.MustCompile(`\bdir\s*\(\s*\)`),
		regexp.MustCompile(`\bhasattr\s*\(`),
		regexp.MustCompile(`\bgetattr\s*\(`),
		regexp.MustCompile(`\bsetattr\s*\(`),
		regexp.MustCompile(`\bdelattr\s*\(`),
	}

	importPattern = regexp.MustCompile(`(?:from\s+(\S+)\s+)?import\s+(.+)`)
)

func compileForbidden(names []string) []forbiddenCall {
	out := make([]forbiddenCall, 0, len(names))
	for _, n := range names {
		out = append(out, forbiddenCall{name: n, re: regexp.MustCompile(`\b` + regexp.QuoteMeta(n) + `\s*\(`)})
	}
	return out
}

// CheckCode rejects code that calls a forbidden builtin, reaches for
// introspection, or imports a module outside AllowedImports.
func CheckCode(code string) error {
	for _, fc := range forbiddenCallPatterns {
		if fc.re.MatchString(code) {
			return fmt.Errorf("Forbidden operation: %s() is not allowed", fc.name)
		}
	}

	for _, re := range dangerousPatterns {
		if re.MatchString(code) {
			return fmt.Errorf("Code contains potentially dangerous operations")
		}
	}

	for _, m := range importPattern.FindAllStringSubmatch(code, -1) {
		for _, module := range importedModules(m[1], m[2]) {
			if !AllowedImports[module] {
				return fmt.Errorf("Import not allowed: %s", module)
			}
		}
	}
	return nil
}

func importedModules(from, names string) []string {
	if from != "" {
		return []string{rootModule(from)}
	}
	var modules []string
	for _, part := range strings.Split(names, ",") {
		fields := strings.Fields(part)
		if len(fields) == 0 {
			continue
		}
		modules = append(modules, rootModule(fields[0]))
	}
	return modules
}

func rootModule(name string) string {
	if i := strings.IndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return name
}
