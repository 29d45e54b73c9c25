package document_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.grampus.dev/grampus/internal/adapters/document"
	"go.grampus.dev/grampus/internal/core/domain"
	"go.grampus.dev/grampus/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const sampleDocument = `
header:
  name: shop
  version: 2
classmap:
  app: com.example.Application
  uses: depends-on
vertices:
  app:
    tier: frontend
edges:
  uses:
    weight: 3
graph:
  app:
    uses: db
    feeds: [queue, cache]
    count: 42
`

func newLoader(t *testing.T) *document.Loader {
	t.Helper()
	logger := mocks.NewMockLogger(gomock.NewController(t))
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	return document.NewLoader(logger)
}

func TestParse(t *testing.T) {
	doc, err := newLoader(t).Parse("shop.yaml", []byte(sampleDocument))
	require.NoError(t, err)

	assert.Equal(t, "shop.yaml", doc.Source)
	assert.Len(t, doc.Digest, 16)
	assert.Equal(t, "shop", doc.Header["name"])
	assert.Equal(t, "com.example.Application", doc.Classmap["app"])
	assert.Equal(t, "frontend", doc.Vertices["app"]["tier"])
	assert.Equal(t, 3, doc.Edges["uses"]["weight"])

	edges := doc.Graph["app"]
	require.NotNil(t, edges)

	uses := edges["uses"]
	assert.Equal(t, domain.TargetScalar, uses.Kind())
	assert.Equal(t, "db", uses.Name())

	feeds := edges["feeds"]
	require.Equal(t, domain.TargetList, feeds.Kind())
	require.Len(t, feeds.Elems(), 2)
	assert.Equal(t, "queue", feeds.Elems()[0].Name())
	assert.Equal(t, "cache", feeds.Elems()[1].Name())

	// Non-string scalars name vertices by their scalar text.
	count := edges["count"]
	assert.Equal(t, domain.TargetScalar, count.Kind())
	assert.Equal(t, "42", count.Name())
}

func TestParse_MapTargetIsTaggedInvalidNotRejected(t *testing.T) {
	// A map-shaped target parses fine; the error belongs to injection,
	// not loading.
	doc, err := newLoader(t).Parse("bad.yaml", []byte(`
graph:
  app:
    uses:
      nested: oops
`))
	require.NoError(t, err)
	assert.Equal(t, domain.TargetInvalid, doc.Graph["app"]["uses"].Kind())
}

func TestParse_AbsentGraphSectionIsNil(t *testing.T) {
	doc, err := newLoader(t).Parse("no-graph.yaml", []byte(`
header:
  name: empty
`))
	require.NoError(t, err)
	assert.Nil(t, doc.Graph)
}

func TestParse_DigestIsStablePerContent(t *testing.T) {
	l := newLoader(t)
	a, err := l.Parse("a.yaml", []byte(sampleDocument))
	require.NoError(t, err)
	b, err := l.Parse("b.yaml", []byte(sampleDocument))
	require.NoError(t, err)
	c, err := l.Parse("c.yaml", []byte(sampleDocument+"\n# changed"))
	require.NoError(t, err)

	assert.Equal(t, a.Digest, b.Digest)
	assert.NotEqual(t, a.Digest, c.Digest)
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := newLoader(t).Parse("broken.yaml", []byte("graph: [unclosed"))
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrDocumentParseFailed.Error())
}

func TestLoadReader(t *testing.T) {
	doc, err := newLoader(t).LoadReader("stream", strings.NewReader(sampleDocument))
	require.NoError(t, err)
	assert.Equal(t, "stream", doc.Source)
	assert.NotNil(t, doc.Graph)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDocument), 0o644))

	doc, err := newLoader(t).Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, path, doc.Source)
}

func TestLoad_FileMissing(t *testing.T) {
	_, err := newLoader(t).Load(context.Background(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrDocumentReadFailed.Error())
}

func TestLoad_URL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(sampleDocument))
	}))
	defer srv.Close()

	doc, err := newLoader(t).Load(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, srv.URL, doc.Source)
	assert.NotNil(t, doc.Graph)
}

func TestLoad_URLNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newLoader(t).Load(context.Background(), srv.URL)
	require.ErrorIs(t, err, domain.ErrDocumentFetchFailed)
}

func TestLoadAll_PreservesArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	var sources []string
	for _, name := range []string{"one", "two", "three"} {
		path := filepath.Join(dir, name+".yaml")
		content := "header:\n  name: " + name + "\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		sources = append(sources, path)
	}

	docs, err := newLoader(t).LoadAll(context.Background(), sources)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "one", docs[0].Header["name"])
	assert.Equal(t, "two", docs[1].Header["name"])
	assert.Equal(t, "three", docs[2].Header["name"])
}

func TestLoadAll_PropagatesFirstError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ok.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDocument), 0o644))

	_, err := newLoader(t).LoadAll(context.Background(), []string{path, "/does/not/exist.yaml"})
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrDocumentReadFailed.Error())
}
