package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crtic/ptc-manager/internal/repository"
)

func TestCollectionRepository_LoadMissing(t *testing.T) {
	ctx := context.Background()
	repo := NewCollectionRepository(NewTestDB(t))

	_, err := repo.Load(ctx, "ptc_projects")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCollectionRepository_Roundtrip(t *testing.T) {
	ctx := context.Background()
	repo := NewCollectionRepository(NewTestDB(t))

	blob := []byte(`[{"id":"1","name":"Piloto"}]`)
	require.NoError(t, repo.Save(ctx, "ptc_projects", blob))

	got, err := repo.Load(ctx, "ptc_projects")
	require.NoError(t, err)
	require.JSONEq(t, string(blob), string(got))
}

func TestCollectionRepository_Overwrite(t *testing.T) {
	ctx := context.Background()
	repo := NewCollectionRepository(NewTestDB(t))

	require.NoError(t, repo.Save(ctx, "ptc_quotations", []byte(`[]`)))
	require.NoError(t, repo.Save(ctx, "ptc_quotations", []byte(`[{"id":"q1"}]`)))

	got, err := repo.Load(ctx, "ptc_quotations")
	require.NoError(t, err)
	require.JSONEq(t, `[{"id":"q1"}]`, string(got))
}

func TestCollectionRepository_KeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	repo := NewCollectionRepository(NewTestDB(t))

	require.NoError(t, repo.Save(ctx, "ptc_projects", []byte(`["a"]`)))
	require.NoError(t, repo.Save(ctx, "ptc_activities", []byte(`["b"]`)))

	projects, err := repo.Load(ctx, "ptc_projects")
	require.NoError(t, err)
	require.JSONEq(t, `["a"]`, string(projects))

	activities, err := repo.Load(ctx, "ptc_activities")
	require.NoError(t, err)
	require.JSONEq(t, `["b"]`, string(activities))
}
