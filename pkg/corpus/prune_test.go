package corpus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrune(t *testing.T) {
	_, s := setupTestStore(t)
	ctx := context.Background()

	_, err := s.Import(ctx, "hobbits", NewSliceReader("frodo", "frodo", "sam", "sam", "sam", "fordo"))
	require.NoError(t, err)

	removed, err := s.Prune(ctx, "hobbits", 2)
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	r, err := s.Words(ctx, "hobbits")
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	assert.Equal(t, []string{"frodo", "frodo", "sam", "sam", "sam"}, drain(t, r))

	_, err = s.Prune(ctx, "ents", 2)
	assert.ErrorIs(t, err, ErrUnknownCorpus)
}

func TestPruneEmpty(t *testing.T) {
	_, s := setupTestStore(t)
	ctx := context.Background()

	_, err := s.Import(ctx, "rare", NewSliceReader("once"))
	require.NoError(t, err)
	_, err = s.Import(ctx, "common", NewSliceReader("twice", "twice"))
	require.NoError(t, err)

	_, err = s.Prune(ctx, "rare", 2)
	require.NoError(t, err)

	removed, err := s.PruneEmpty(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	infos, err := s.Corpora(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "common", infos[0].Name)
}
