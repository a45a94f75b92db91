package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/crtic/ptc-manager/internal/domain/activity"
	"github.com/crtic/ptc-manager/internal/domain/project"
	"github.com/crtic/ptc-manager/internal/domain/quotation"
)

// Collections is a mock for repository.Collections.
type Collections struct {
	mock.Mock
}

func (m *Collections) Load(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if blob, ok := args.Get(0).([]byte); ok {
		return blob, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Collections) Save(ctx context.Context, key string, blob []byte) error {
	args := m.Called(ctx, key, blob)
	return args.Error(0)
}

// ProjectStore is a mock for project.Store.
type ProjectStore struct {
	mock.Mock
}

func (m *ProjectStore) InsertProject(ctx context.Context, p *project.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProjectStore) GetProject(ctx context.Context, id string) (*project.Project, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*project.Project); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectStore) UpdateProject(ctx context.Context, p *project.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProjectStore) DeleteProject(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ProjectStore) ListProjects(ctx context.Context) ([]project.Project, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// IDSource is a mock for project.IDSource.
type IDSource struct {
	mock.Mock
}

func (m *IDSource) NextID() string {
	args := m.Called()
	return args.String(0)
}

// ActivityStore is a mock for activity.Store.
type ActivityStore struct {
	mock.Mock
}

func (m *ActivityStore) PrependActivity(ctx context.Context, entry *activity.Activity) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *ActivityStore) ListActivities(ctx context.Context) ([]activity.Activity, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]activity.Activity); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// QuotationStore is a mock for quotation.Store.
type QuotationStore struct {
	mock.Mock
}

func (m *QuotationStore) InsertQuotation(ctx context.Context, q *quotation.Quotation) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

func (m *QuotationStore) ListQuotations(ctx context.Context) ([]quotation.Quotation, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]quotation.Quotation); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// ProjectNames is a mock for activity.ProjectNames.
type ProjectNames struct {
	mock.Mock
}

func (m *ProjectNames) ProjectName(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}
