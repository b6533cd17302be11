package recordfile

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// registro mínimo para ejercitar el almacén genérico
type testRec struct {
	Key   string
	Value int
}

func newTestStore(t *testing.T) (*Store[testRec], string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recs.dat")
	store := NewStore(path,
		func(r *testRec) []string { return []string{r.Key, strconv.Itoa(r.Value)} },
		func(fields []string) (*testRec, error) {
			if len(fields) != 2 {
				return nil, arityError("testRec", 2, len(fields))
			}
			v, err := decInt(fields[1])
			if err != nil {
				return nil, err
			}
			return &testRec{Key: fields[0], Value: v}, nil
		},
	)
	return store, path
}

func TestStore_AppendYForEach(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.Append(&testRec{Key: "a", Value: 1}))
	require.NoError(t, store.Append(&testRec{Key: "b", Value: 2}))
	require.NoError(t, store.Append(&testRec{Key: "c", Value: 3}))

	var keys []string
	require.NoError(t, store.ForEach(func(r *testRec) bool {
		keys = append(keys, r.Key)
		return true
	}))
	assert.Equal(t, []string{"a", "b", "c"}, keys, "el recorrido debe respetar el orden de almacenamiento")

	// El recorrido es reiniciable: una segunda pasada ve lo mismo.
	count := 0
	require.NoError(t, store.ForEach(func(r *testRec) bool {
		count++
		return true
	}))
	assert.Equal(t, 3, count)
}

func TestStore_ForEachSeDetieneConFalse(t *testing.T) {
	store, _ := newTestStore(t)
	for i := 0; i < 5; i++ {
		require.NoError(t, store.Append(&testRec{Key: "k", Value: i}))
	}

	seen := 0
	require.NoError(t, store.ForEach(func(r *testRec) bool {
		seen++
		return seen < 2
	}))
	assert.Equal(t, 2, seen)
}

func TestStore_ArchivoAusenteEsSecuenciaVacia(t *testing.T) {
	store, _ := newTestStore(t)

	recs, err := store.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestStore_RewriteAll(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, store.Append(&testRec{Key: "viejo", Value: 1}))

	next := []*testRec{
		{Key: "x", Value: 10},
		{Key: "y", Value: 20},
	}
	require.NoError(t, store.RewriteAll(next))

	recs, err := store.ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "x", recs[0].Key)
	assert.Equal(t, "y", recs[1].Key)

	// El swap atómico no deja temporales huérfanos.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "solo debe quedar el archivo del almacén")
}

func TestStore_ReplacePreservaElRestoByteAByte(t *testing.T) {
	store, path := newTestStore(t)
	for i := 0; i < 4; i++ {
		require.NoError(t, store.Append(&testRec{Key: "k" + strconv.Itoa(i), Value: i}))
	}
	before, err := os.ReadFile(path)
	require.NoError(t, err)
	beforeLines := strings.Split(strings.TrimSuffix(string(before), "\n"), "\n")

	require.NoError(t, store.Replace(
		func(r *testRec) bool { return r.Key == "k2" },
		&testRec{Key: "k2", Value: 99},
	))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	afterLines := strings.Split(strings.TrimSuffix(string(after), "\n"), "\n")

	require.Len(t, afterLines, len(beforeLines))
	for i := range beforeLines {
		if i == 2 {
			assert.Equal(t, "k2|99", afterLines[i])
			continue
		}
		assert.Equal(t, beforeLines[i], afterLines[i],
			"la línea %d no coincidente debe quedar idéntica byte a byte", i)
	}
}

func TestStore_ReplaceSinCoincidencia(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, store.Append(&testRec{Key: "a", Value: 1}))

	err := store.Replace(func(r *testRec) bool { return r.Key == "zzz" }, &testRec{Key: "zzz"})
	require.ErrorIs(t, err, ErrNoMatch)

	// El almacén queda intacto y sin temporales.
	recs, err := store.ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 1)
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStore_ReplaceSobreAlmacenInexistente(t *testing.T) {
	store, _ := newTestStore(t)
	err := store.Replace(func(r *testRec) bool { return true }, &testRec{Key: "a"})
	require.ErrorIs(t, err, ErrNoMatch)
}
