package jsonfile

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project-manager/internal/domain"
	"project-manager/internal/logging"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "users.json")
	logger := logging.NewWithWriter(io.Discard, logging.DefaultOptions())
	store, err := New(path, 0755, logger)
	require.NoError(t, err)
	return store
}

func buildTree(t *testing.T) []*domain.User {
	t.Helper()
	counters := domain.NewCounters()

	user, err := domain.NewUser(counters.Users, "Alex", "alex@email.com")
	require.NoError(t, err)
	project, err := domain.NewProject(counters.Projects, "CLI Tool", "A cool project", "2025-12-31")
	require.NoError(t, err)
	task, err := domain.NewTask(counters.Tasks, "Implement storage", "Alex")
	require.NoError(t, err)

	project.AddTask(task)
	user.AddProject(project)
	return []*domain.User{user}
}

func TestStore_Load_MissingFile(t *testing.T) {
	store := newTestStore(t)

	doc, err := store.Load(context.Background())
	require.NoError(t, err)

	assert.Empty(t, doc.Users)
	assert.NotNil(t, doc.Users)
	assert.Equal(t, int64(1), doc.Counters.Users.Next())
	assert.Equal(t, int64(1), doc.Counters.Projects.Next())
	assert.Equal(t, int64(1), doc.Counters.Tasks.Next())
}

func TestStore_SaveAndLoad_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	users := buildTree(t)

	require.NoError(t, store.Save(ctx, users))

	doc, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, doc.Users, 1)

	user := doc.Users[0]
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "Alex", user.Name)
	assert.Equal(t, "alex@email.com", user.Email)

	require.Len(t, user.Projects, 1)
	project := user.Projects[0]
	assert.Equal(t, int64(1), project.ID)
	assert.Equal(t, "CLI Tool", project.Title)
	assert.Equal(t, "A cool project", project.Description)
	assert.Equal(t, "2025-12-31", project.DueDate)

	require.Len(t, project.Tasks, 1)
	task := project.Tasks[0]
	assert.Equal(t, int64(1), task.ID)
	assert.Equal(t, "Implement storage", task.Title)
	assert.Equal(t, "Alex", task.AssignedTo)
	assert.Equal(t, domain.StatusPending, task.Status)
}

func TestStore_Load_SeedsCountersPastLoadedIDs(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	document := `[
    {
        "id": 42,
        "name": "Alex",
        "email": "alex@email.com",
        "projects": [
            {
                "id": 7,
                "title": "CLI Tool",
                "description": "",
                "due_date": "",
                "tasks": [
                    {"id": 19, "title": "Implement storage", "assigned_to": "", "status": "pending"}
                ]
            }
        ]
    }
]`
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0755))
	require.NoError(t, os.WriteFile(store.Path(), []byte(document), 0644))

	doc, err := store.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(43), doc.Counters.Users.Next())
	assert.Equal(t, int64(8), doc.Counters.Projects.Next())
	assert.Equal(t, int64(20), doc.Counters.Tasks.Next())
}

func TestStore_Load_CorruptedFile(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0755))
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not valid json"), 0644))

	doc, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, doc.Users)
	assert.Equal(t, int64(1), doc.Counters.Users.Next())
}

func TestStore_Load_MissingRequiredField(t *testing.T) {
	store := newTestStore(t)

	// A user record without an id fails the document schema.
	document := `[{"name": "Alex", "email": "alex@email.com"}]`
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0755))
	require.NoError(t, os.WriteFile(store.Path(), []byte(document), 0644))

	doc, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, doc.Users)
}

func TestStore_Load_WrongShape(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0755))
	require.NoError(t, os.WriteFile(store.Path(), []byte(`{"users": []}`), 0644))

	doc, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, doc.Users)
}

func TestStore_Load_DefaultsOptionalFields(t *testing.T) {
	store := newTestStore(t)

	document := `[
    {
        "id": 1,
        "name": "Alex",
        "email": "alex@email.com",
        "projects": [
            {
                "id": 1,
                "title": "CLI Tool",
                "tasks": [
                    {"id": 1, "title": "Implement storage"}
                ]
            }
        ]
    }
]`
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0755))
	require.NoError(t, os.WriteFile(store.Path(), []byte(document), 0644))

	doc, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, doc.Users, 1)

	project := doc.Users[0].Projects[0]
	assert.Equal(t, "", project.Description)
	assert.Equal(t, "", project.DueDate)

	task := project.Tasks[0]
	assert.Equal(t, "", task.AssignedTo)
	assert.Equal(t, domain.StatusPending, task.Status)
}

func TestStore_Save_CreatesDirectoryAndPrettyPrints(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, buildTree(t)))

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	content := string(raw)
	assert.True(t, strings.HasPrefix(content, "["))
	assert.Contains(t, content, "    \"id\": 1")
	assert.Contains(t, content, "\"name\": \"Alex\"")
	assert.Contains(t, content, "\"due_date\": \"2025-12-31\"")
	assert.Contains(t, content, "\"status\": \"pending\"")
}

func TestStore_Save_EmptyCollection(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, nil))

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestStore_CancelledContext(t *testing.T) {
	store := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Load(ctx)
	assert.Error(t, err)

	err = store.Save(ctx, nil)
	assert.Error(t, err)
}
