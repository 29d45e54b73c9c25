package journal_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.grampus.dev/grampus/internal/adapters/journal"
	"go.grampus.dev/grampus/internal/core/domain"
)

func testRecord(source string) domain.LoadRecord {
	return domain.LoadRecord{
		Source:   source,
		Digest:   "00000000deadbeef",
		LoadedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Vertices: 3,
		Edges:    2,
	}
}

func TestStore_GetMissingReturnsNil(t *testing.T) {
	s, err := journal.NewStore(filepath.Join(t.TempDir(), "journal.json"))
	require.NoError(t, err)

	rec, err := s.Get("unknown.yaml")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestStore_PutThenGet(t *testing.T) {
	s, err := journal.NewStore(filepath.Join(t.TempDir(), "journal.json"))
	require.NoError(t, err)

	want := testRecord("shop.yaml")
	require.NoError(t, s.Put(want))

	got, err := s.Get("shop.yaml")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")

	s, err := journal.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Put(testRecord("shop.yaml")))

	reopened, err := journal.NewStore(path)
	require.NoError(t, err)
	got, err := reopened.Get("shop.yaml")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "00000000deadbeef", got.Digest)
}

func TestStore_PutOverwritesBySource(t *testing.T) {
	s, err := journal.NewStore(filepath.Join(t.TempDir(), "journal.json"))
	require.NoError(t, err)

	first := testRecord("shop.yaml")
	require.NoError(t, s.Put(first))

	second := first
	second.Digest = "00000000cafebabe"
	require.NoError(t, s.Put(second))

	got, err := s.Get("shop.yaml")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "00000000cafebabe", got.Digest)
}

func TestStore_EmptyFileIsValid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	s, err := journal.NewStore(path)
	require.NoError(t, err)
	rec, err := s.Get("anything")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestStore_CorruptFileFailsOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := journal.NewStore(path)
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrJournalUnmarshalFailed.Error())
}

func TestStore_PutCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "nested", "journal.json")

	s, err := journal.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Put(testRecord("shop.yaml")))

	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestFactory_Open(t *testing.T) {
	f := journal.NewFactory()
	j, err := f.Open(filepath.Join(t.TempDir(), "journal.json"))
	require.NoError(t, err)
	require.NotNil(t, j)
}
