package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"lab-requests/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var migrationPath = filepath.Join("..", "..", "db", "migrations", "001_init_schema.sql")

func newTestRepo(t *testing.T) *sqlRepository {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	repo, err := NewSQLiteRepository(dbPath, migrationPath)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return repo.(*sqlRepository)
}

func sampleRequest(title string, deadline time.Time) *domain.LabRequest {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	return &domain.LabRequest{
		Title:       title,
		StudentName: "A. Ivanov",
		Deadline:    deadline,
		Status:      domain.StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestCreateAndGetRequest(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	deadline := time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC)
	req := sampleRequest("Physics Lab", deadline)
	description := "Grupo 11-201"
	req.Description = &description

	id, err := repo.CreateRequest(ctx, req)
	require.NoError(t, err)
	require.Greater(t, id, int64(0))

	stored, err := repo.GetRequestByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.Equal(t, id, stored.ID)
	assert.Equal(t, "Physics Lab", stored.Title)
	assert.Equal(t, "A. Ivanov", stored.StudentName)
	assert.Equal(t, domain.StatusActive, stored.Status)
	assert.True(t, stored.Deadline.Equal(deadline))
	assert.True(t, stored.CreatedAt.Equal(req.CreatedAt))
	require.NotNil(t, stored.Description)
	assert.Equal(t, description, *stored.Description)
}

func TestGetRequestMissingReturnsNil(t *testing.T) {
	repo := newTestRepo(t)

	stored, err := repo.GetRequestByID(context.Background(), 123)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestNullDescriptionRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.CreateRequest(ctx, sampleRequest("Sem descrição", time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	stored, err := repo.GetRequestByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Nil(t, stored.Description)
}

func TestListRequestsOrderingAndFilter(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	d1 := time.Date(2026, 3, 12, 12, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, 3, 13, 12, 0, 0, 0, time.UTC)
	d3 := time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC)

	// Inseridos fora de ordem; a listagem devolve D3, D1, D2
	for _, d := range []time.Time{d1, d2, d3} {
		_, err := repo.CreateRequest(ctx, sampleRequest("Lab", d))
		require.NoError(t, err)
	}

	all, err := repo.ListRequests(ctx, nil, 0, 100)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.True(t, all[0].Deadline.Equal(d3))
	assert.True(t, all[1].Deadline.Equal(d1))
	assert.True(t, all[2].Deadline.Equal(d2))

	// Filtro por status
	all[0].Status = domain.StatusCompleted
	require.NoError(t, repo.UpdateRequest(ctx, all[0]))

	completed := domain.StatusCompleted
	filtered, err := repo.ListRequests(ctx, &completed, 0, 100)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, all[0].ID, filtered[0].ID)

	// Paginação com offset
	page, err := repo.ListRequests(ctx, nil, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.True(t, page[0].Deadline.Equal(d1))
}

func TestUpdateRequestPersistsChanges(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.CreateRequest(ctx, sampleRequest("Original", time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	stored, err := repo.GetRequestByID(ctx, id)
	require.NoError(t, err)

	stored.Title = "Editado"
	stored.Status = domain.StatusCancelled
	stored.UpdatedAt = stored.UpdatedAt.Add(time.Minute)
	require.NoError(t, repo.UpdateRequest(ctx, stored))

	reloaded, err := repo.GetRequestByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Editado", reloaded.Title)
	assert.Equal(t, domain.StatusCancelled, reloaded.Status)
	assert.True(t, reloaded.UpdatedAt.Equal(stored.UpdatedAt))
}

func TestDeleteRequestReportsMissing(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.CreateRequest(ctx, sampleRequest("Para apagar", time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	deleted, err := repo.DeleteRequest(ctx, id)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeleteRequest(ctx, id)
	require.NoError(t, err)
	assert.False(t, deleted)

	stored, err := repo.GetRequestByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestCountRequests(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	total, err := repo.CountRequests(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)

	for i := 0; i < 3; i++ {
		_, err := repo.CreateRequest(ctx, sampleRequest("Lab", time.Date(2026, 7, 1+i, 0, 0, 0, 0, time.UTC)))
		require.NoError(t, err)
	}

	total, err = repo.CountRequests(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestPing(t *testing.T) {
	repo := newTestRepo(t)
	assert.NoError(t, repo.Ping(context.Background()))
}
