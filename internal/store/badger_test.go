package store

import (
	"context"
	"encoding/json"
	"testing"

	"samko/internal/model"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBadgerJournal_SeedsEmptyJournal(t *testing.T) {
	j, err := OpenBadgerJournal("")
	require.NoError(t, err)
	defer j.Close()

	p := newTestPosts(t, WithJournal(j))
	assert.Equal(t, 6, p.Len())

	saved, err := j.Load()
	require.NoError(t, err)
	assert.Len(t, saved, 6)
}

func TestBadgerJournal_MirrorsMutations(t *testing.T) {
	j, err := OpenBadgerJournal("")
	require.NoError(t, err)
	defer j.Close()

	p := newTestPosts(t, WithJournal(j))
	ctx := context.Background()

	created, err := p.Create(ctx, validInput("Journaled Post"))
	require.NoError(t, err)
	_, err = p.Update(ctx, created.ID, UpdateInput{Title: ptr("Journaled Post v2")})
	require.NoError(t, err)
	_, err = p.Delete(ctx, "6")
	require.NoError(t, err)

	// Inspect Badger directly
	err = j.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(postPrefix + created.ID))
		if err != nil {
			return err
		}
		val, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		var stored model.BlogPost
		require.NoError(t, json.Unmarshal(val, &stored))
		assert.Equal(t, "journaled-post-v2", stored.Slug)

		_, err = txn.Get([]byte(postPrefix + "6"))
		assert.ErrorIs(t, err, badger.ErrKeyNotFound)
		return nil
	})
	assert.NoError(t, err)
}

func TestBadgerJournal_RestoresAcrossRestart(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	j, err := OpenBadgerJournal(dir)
	require.NoError(t, err)
	p := newTestPosts(t, WithJournal(j))
	created, err := p.Create(ctx, validInput("Survives Restart"))
	require.NoError(t, err)
	_, err = p.Delete(ctx, "1")
	require.NoError(t, err)
	require.NoError(t, j.Close())

	// Reopen the same directory
	j2, err := OpenBadgerJournal(dir)
	require.NoError(t, err)
	defer j2.Close()
	p2 := newTestPosts(t, WithJournal(j2))

	assert.Equal(t, 6, p2.Len())
	got, err := p2.Get(ctx, "survives-restart")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = p2.Get(ctx, "1")
	assert.ErrorIs(t, err, ErrNotFound)

	// Restored posts come back newest first
	list, err := p2.List(ctx, ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, created.ID, list[0].ID)
}
