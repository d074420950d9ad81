package classify

import (
	"fmt"
	"strings"

	"github.com/argos-cli/argos/internal/errs"
	"github.com/argos-cli/argos/internal/registry"
	"github.com/argos-cli/argos/platform"
)

// ExpandArgFiles pre-expands every "@file" token in argv into its file's
// whitespace-delimited, comment-stripped tokens, per spec.md §4.2.
// Expansion is not recursive: tokens produced by one expansion are never
// themselves re-scanned for the prefix.
func ExpandArgFiles(argv []string, reg *registry.Registry, plat platform.Platform) ([]string, error) {
	if !reg.Settings.ArgumentFileEnabled {
		return argv, nil
	}

	prefix := reg.Settings.ArgumentFilePrefix

	out := make([]string, 0, len(argv))

	for _, tok := range argv {
		if len(tok) < 2 || tok[0] != prefix {
			out = append(out, tok)

			continue
		}

		path := tok[1:]

		content, ok, err := plat.ReadFile(path)
		if err != nil || !ok {
			return nil, fmt.Errorf("%w: %s", errs.ErrArgFileUnreadable, path)
		}

		out = append(out, tokenizeFile(content)...)
	}

	return out, nil
}

// tokenizeFile discards blank lines and comment lines (first non-whitespace
// char '#'), then splits the remainder on any whitespace.
func tokenizeFile(content string) []string {
	var tokens []string

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		tokens = append(tokens, strings.Fields(line)...)
	}

	return tokens
}
