package activity_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/crtic/ptc-manager/internal/domain/activity"
	"github.com/crtic/ptc-manager/internal/repository"
	"github.com/crtic/ptc-manager/internal/repository/mocks"
)

func TestActivityService_Log(t *testing.T) {
	ctx := context.Background()

	store := &mocks.ActivityStore{}
	store.On("PrependActivity", ctx, mock.Anything).Return(nil)

	when := time.Date(2025, 3, 14, 16, 45, 0, 0, time.UTC)
	svc := activity.NewService(store, &mocks.ProjectNames{}, nil)
	entry, err := svc.Log(ctx, activity.LogRequest{
		Tag:               "Reunión",
		Title:             "Llamada de seguimiento",
		When:              when,
		AssociatedClient:  "Minera Andina",
		AssociatedProject: "p1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, entry.ID)
	require.Equal(t, activity.TypeManual, entry.Type)
	require.Equal(t, activity.StatusPending, entry.Status)
	require.Equal(t, "2025-03-14", entry.Date)
	require.Equal(t, "16:45", entry.Time)
}

func TestActivityService_Log_RequiresTitle(t *testing.T) {
	ctx := context.Background()

	store := &mocks.ActivityStore{}
	svc := activity.NewService(store, &mocks.ProjectNames{}, nil)
	_, err := svc.Log(ctx, activity.LogRequest{Title: "   "})
	require.ErrorIs(t, err, activity.ErrInvalidInput)
	store.AssertNotCalled(t, "PrependActivity", mock.Anything, mock.Anything)
}

func TestActivityService_List_Limit(t *testing.T) {
	ctx := context.Background()

	store := &mocks.ActivityStore{}
	store.On("ListActivities", ctx).Return([]activity.Activity{
		{ID: "3"}, {ID: "2"}, {ID: "1"},
	}, nil)

	svc := activity.NewService(store, &mocks.ProjectNames{}, nil)

	all, err := svc.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)

	limited, err := svc.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	require.Equal(t, "3", limited[0].ID)
}

func TestActivityService_ResolveProject(t *testing.T) {
	ctx := context.Background()

	projects := &mocks.ProjectNames{}
	projects.On("ProjectName", ctx, "p1").Return("Piloto", nil)
	projects.On("ProjectName", ctx, "gone").Return("", repository.ErrNotFound)

	svc := activity.NewService(&mocks.ActivityStore{}, projects, nil)

	res := svc.ResolveProject(ctx, activity.Activity{AssociatedProject: "p1"})
	require.True(t, res.Found)
	require.Equal(t, "Piloto", res.Name)

	// Dangling references resolve without error.
	res = svc.ResolveProject(ctx, activity.Activity{AssociatedProject: "gone"})
	require.False(t, res.Found)
	require.Equal(t, "gone", res.ID)

	res = svc.ResolveProject(ctx, activity.Activity{})
	require.False(t, res.Found)
	require.Empty(t, res.ID)
}

func TestSystem_Entry(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	entry := activity.System("New project created: Piloto", now)
	require.Equal(t, activity.TypeSystem, entry.Type)
	require.Equal(t, activity.StatusCompleted, entry.Status)
	require.Equal(t, "2025-03-14", entry.Date)
	require.Equal(t, "09:30", entry.Time)
	require.NotEmpty(t, entry.ID)
}
