// Command suffixgen compiles a Public Suffix List into the encoded pattern
// constants used by the publicsuffix repository.
package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/haukened/sitewatch/internal/site/common/log"
	"github.com/haukened/sitewatch/internal/site/common/utils"
	"github.com/haukened/sitewatch/internal/site/repos/publicsuffix"
)

const (
	icannBegin   = "// ===BEGIN ICANN DOMAINS==="
	icannEnd     = "// ===END ICANN DOMAINS==="
	privateBegin = "// ===BEGIN PRIVATE DOMAINS==="

	fetchTimeout = 30 * time.Second
)

// rules holds reversed suffix keys mapped to their ICANN flag.
type rules struct {
	exact    map[string]bool
	excluded map[string]bool
	under    map[string]bool
}

func main() {
	in := flag.String("in", "data/public_suffix_list.dat", "list to compile: a file path or an http(s) URL")
	out := flag.String("out", "patterns.go", "output Go file")
	pkg := flag.String("pkg", "publicsuffix", "package name of the output file")
	flag.Parse()

	if err := log.Configure("dev", "info"); err != nil {
		fmt.Fprintf(os.Stderr, "Logging configuration error: %v\n", err)
		os.Exit(1)
	}

	if err := run(context.Background(), *in, *out, *pkg); err != nil {
		log.Fatal(map[string]any{"error": err.Error(), "in": *in}, "suffixgen failed")
	}
}

func run(ctx context.Context, in, out, pkg string) error {
	r, err := open(ctx, in)
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	parsed, err := parse(r)
	if err != nil {
		return fmt.Errorf("parse %s: %w", in, err)
	}

	src, err := render(pkg, parsed)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	log.Info(map[string]any{
		"out":      out,
		"exact":    len(parsed.exact),
		"excluded": len(parsed.excluded),
		"under":    len(parsed.under),
	}, "Patterns written")
	return nil
}

func open(ctx context.Context, in string) (io.ReadCloser, error) {
	if !strings.HasPrefix(in, "http://") && !strings.HasPrefix(in, "https://") {
		return os.Open(in)
	}

	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, in, nil)
	if err != nil {
		cancel()
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("fetch %s: %w", in, err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		cancel()
		return nil, fmt.Errorf("fetch %s: unexpected status %d", in, resp.StatusCode)
	}
	return &cancelOnClose{ReadCloser: resp.Body, cancel: cancel}, nil
}

type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	defer c.cancel()
	return c.ReadCloser.Close()
}

// parse reads list text. Rules before the ICANN marker and after its end
// marker are private; "!" lines are exceptions and "*." lines wildcards.
// Wildcards anywhere but the leftmost label are not supported and skipped.
func parse(r io.Reader) (*rules, error) {
	out := &rules{
		exact:    map[string]bool{},
		excluded: map[string]bool{},
		under:    map[string]bool{},
	}
	icann := false
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch line {
		case icannBegin:
			icann = true
			continue
		case icannEnd, privateBegin:
			icann = false
			continue
		}
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if i := strings.IndexAny(line, " \t"); i >= 0 {
			line = line[:i]
		}
		line = strings.ToLower(line)

		target := out.exact
		switch {
		case strings.HasPrefix(line, "!"):
			target, line = out.excluded, line[1:]
		case strings.HasPrefix(line, "*."):
			target, line = out.under, line[2:]
		}
		if line == "" || strings.Contains(line, "*") {
			continue
		}
		target[utils.ReverseString(utils.ToASCII(line))] = icann
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(out.exact) == 0 {
		return nil, errors.New("no rules found")
	}
	return out, nil
}

func render(pkg string, r *rules) ([]byte, error) {
	exact, err := publicsuffix.Encode(r.exact)
	if err != nil {
		return nil, fmt.Errorf("encode exact rules: %w", err)
	}
	excluded, err := publicsuffix.Encode(r.excluded)
	if err != nil {
		return nil, fmt.Errorf("encode exception rules: %w", err)
	}
	under, err := publicsuffix.Encode(r.under)
	if err != nil {
		return nil, fmt.Errorf("encode wildcard rules: %w", err)
	}

	var b bytes.Buffer
	b.WriteString("// Code generated by suffixgen from data/public_suffix_list.dat; DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	b.WriteString("// ExactPattern encodes the exact suffix rules.\n")
	fmt.Fprintf(&b, "const ExactPattern = %q\n\n", exact)
	b.WriteString("// ExcludedPattern encodes the exception (\"!\") rules.\n")
	fmt.Fprintf(&b, "const ExcludedPattern = %q\n\n", excluded)
	b.WriteString("// UnderPattern encodes the wildcard (\"*.\") rules, keyed by the part after \"*.\".\n")
	fmt.Fprintf(&b, "const UnderPattern = %q\n", under)

	src, err := format.Source(b.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format output: %w", err)
	}
	return src, nil
}
