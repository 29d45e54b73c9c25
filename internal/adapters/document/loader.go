// Package document provides the loader that reads and parses graph
// documents from files, streams, and URLs.
package document

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.grampus.dev/grampus/internal/core/domain"
	"go.grampus.dev/grampus/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// fetchTimeout bounds a single HTTP document fetch.
const fetchTimeout = 30 * time.Second

var _ ports.DocumentLoader = (*Loader)(nil)

// Loader implements ports.DocumentLoader on YAML files and http(s) URLs.
type Loader struct {
	logger ports.Logger
	client *http.Client
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		logger: logger,
		client: &http.Client{Timeout: fetchTimeout},
	}
}

// Load reads one document from a file path or an http(s) URL.
func (l *Loader) Load(ctx context.Context, source string) (*domain.Document, error) {
	if isURL(source) {
		return l.loadURL(ctx, source)
	}
	return l.loadFile(source)
}

// LoadAll reads several documents concurrently and returns them in
// argument order. Only parsing is concurrent; injection stays serial.
func (l *Loader) LoadAll(ctx context.Context, sources []string) ([]*domain.Document, error) {
	docs := make([]*domain.Document, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, source := range sources {
		g.Go(func() error {
			doc, err := l.Load(ctx, source)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

// LoadReader parses one document from a stream. The source name is used
// for provenance only.
func (l *Loader) LoadReader(source string, r io.Reader) (*domain.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDocumentReadFailed.Error()), "source", source)
	}
	return l.Parse(source, data)
}

// Parse parses raw document bytes into the domain model.
func (l *Loader) Parse(source string, data []byte) (*domain.Document, error) {
	var dto documentDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDocumentParseFailed.Error()), "source", source)
	}

	return &domain.Document{
		Source:   source,
		Digest:   fmt.Sprintf("%016x", xxhash.Sum64(data)),
		Header:   dto.Header,
		Classmap: dto.Classmap,
		Vertices: dto.Vertices,
		Edges:    dto.Edges,
		Graph:    toGraphSection(dto.Graph),
	}, nil
}

func (l *Loader) loadFile(path string) (*domain.Document, error) {
	// #nosec G304 -- path is provided by the invoking user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDocumentReadFailed.Error()), "path", path)
	}
	return l.Parse(path, data)
}

func (l *Loader) loadURL(ctx context.Context, url string) (*domain.Document, error) {
	l.logger.Info(fmt.Sprintf("fetching %s", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDocumentFetchFailed.Error()), "url", url)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDocumentFetchFailed.Error()), "url", url)
	}
	defer resp.Body.Close() //nolint:errcheck // Best effort close in defer

	if resp.StatusCode != http.StatusOK {
		err := zerr.With(domain.ErrDocumentFetchFailed, "url", url)
		return nil, zerr.With(err, "status", resp.Status)
	}

	return l.LoadReader(url, resp.Body)
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// toGraphSection tags the loosely-typed graph section values as scalar,
// list, or invalid targets. An absent section maps to nil, which the
// injector rejects at construction.
func toGraphSection(raw map[string]map[string]any) domain.GraphSection {
	if raw == nil {
		return nil
	}

	section := make(domain.GraphSection, len(raw))
	for src, edges := range raw {
		edgeMap := make(domain.EdgeMap, len(edges))
		for label, target := range edges {
			edgeMap[label] = toTargetSpec(target)
		}
		section[src] = edgeMap
	}
	return section
}

func toTargetSpec(v any) domain.TargetSpec {
	switch t := v.(type) {
	case []any:
		elems := make([]domain.TargetSpec, len(t))
		for i, e := range t {
			elems[i] = toTargetSpec(e)
		}
		return domain.ListTarget(elems)
	case map[string]any, map[any]any:
		return domain.InvalidTarget()
	case nil:
		return domain.ScalarTarget("")
	case string:
		return domain.ScalarTarget(t)
	default:
		// YAML scalars that are not strings (numbers, booleans) name
		// vertices by their scalar text.
		return domain.ScalarTarget(fmt.Sprint(t))
	}
}
