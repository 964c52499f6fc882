package topsites

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"

	logpkg "github.com/haukened/sitewatch/internal/site/common/log"
)

//go:embed data/topsites.json
var defaultList []byte

// Source produces the list of top-site domains.
type Source func() ([]string, error)

// DefaultSource returns the bundled list.
func DefaultSource() Source {
	return func() ([]string, error) {
		return loadMap(rawbytes.Provider(defaultList), json.Parser(), "embedded")
	}
}

// FileSource returns a Source reading path. The format is chosen by extension:
// .json, .yaml/.yml and .toml hold a map of domain to a truthy marker,
// .txt (or no extension) holds one domain per line.
func FileSource(path string, logger logpkg.Logger) Source {
	logger = logpkg.OrNoop(logger)
	return func() ([]string, error) {
		return LoadFile(path, logger)
	}
}

// LoadFile reads a top-site list from disk.
func LoadFile(path string, logger logpkg.Logger) ([]string, error) {
	logger = logpkg.OrNoop(logger)
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		parser = json.Parser()
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".toml":
		parser = toml.Parser()
	case ".txt", "":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open top sites file %s: %w", path, err)
		}
		defer f.Close()
		return parsePlainList(f, path, logger)
	default:
		return nil, fmt.Errorf("unsupported top sites file type: %s", path)
	}
	return loadMap(file.Provider(path), parser, path)
}

// loadMap loads a domain -> marker document. Domain names contain dots, so
// "/" is used as the key delimiter to keep them flat.
func loadMap(p koanf.Provider, parser koanf.Parser, source string) ([]string, error) {
	k := koanf.New("/")
	if err := k.Load(p, parser); err != nil {
		return nil, fmt.Errorf("failed to load top sites from %s: %w", source, err)
	}
	var out []string
	for name, v := range k.All() {
		if truthy(v) {
			out = append(out, normalize(name))
		}
	}
	slices.Sort(out)
	return out, nil
}

func truthy(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		s := strings.ToLower(strings.TrimSpace(x))
		return s != "" && s != "0" && s != "false"
	case float64:
		return x != 0
	case int:
		return x != 0
	case int64:
		return x != 0
	case uint64:
		return x != 0
	}
	return false
}

// LoadAsync loads src in the background and publishes the result to h.
// It returns at once; the returned channel receives the load error (or nil)
// and is then closed. Until the load completes h reports no members.
func LoadAsync(ctx context.Context, h *Holder, src Source, fpRate float64, logger logpkg.Logger) <-chan error {
	logger = logpkg.OrNoop(logger)
	done := make(chan error, 1)
	go func() {
		defer close(done)
		domains, err := src()
		if err != nil {
			logger.Warn(map[string]any{"error": err.Error()}, "top sites load failed")
			done <- err
			return
		}
		if err := ctx.Err(); err != nil {
			done <- err
			return
		}
		set := NewSet(domains, fpRate)
		h.Store(set)
		logger.Info(map[string]any{"count": set.Len()}, "top sites loaded")
		done <- nil
	}()
	return done
}
