package topsites

import (
	"bufio"
	"io"
	"strings"

	logpkg "github.com/haukened/sitewatch/internal/site/common/log"
)

// parsePlainList reads a newline-delimited list of registrable domains.
//
// Behavior:
//   - '#' starts a comment (whole-line or inline)
//   - names are trimmed, lowercased and stripped of trailing dots
//   - lines that do not look like a domain are skipped
//   - duplicates are dropped, first-seen order is kept
func parsePlainList(r io.Reader, source string, logger logpkg.Logger) ([]string, error) {
	scanner := bufio.NewScanner(r)
	seen := make(map[string]struct{})
	out := make([]string, 0, 256)
	logger.Debug(map[string]any{"source": source}, "parse_top_sites_start")
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimPrefix(scanner.Text(), "\uFEFF")
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		name := normalize(line)
		if name == "" {
			continue
		}
		if !isDomainName(name) {
			logger.Debug(map[string]any{"line": lineNum, "raw": line}, "skip_invalid_domain")
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	if err := scanner.Err(); err != nil {
		logger.Debug(map[string]any{"source": source, "error": err.Error()}, "parse_top_sites_scan_error")
		return nil, err
	}
	logger.Debug(map[string]any{"source": source, "count": len(out)}, "parse_top_sites_done")
	return out, nil
}

// isDomainName requires at least two labels of 1..63 bytes and no whitespace.
func isDomainName(name string) bool {
	if len(name) > 253 || strings.ContainsAny(name, " \t/@") {
		return false
	}
	labels := strings.Split(name, ".")
	if len(labels) < 2 {
		return false
	}
	for _, l := range labels {
		if len(l) == 0 || len(l) > 63 {
			return false
		}
	}
	return true
}
