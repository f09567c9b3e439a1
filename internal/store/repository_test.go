package store

import (
	"context"
	"reflect"
	"testing"

	"flowsync/internal/seed"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	repo, err := Open(context.Background())
	if err != nil {
		t.Fatalf("opening test repository: %v", err)
	}

	t.Cleanup(func() {
		if err := repo.Close(); err != nil {
			t.Errorf("closing test repository: %v", err)
		}
	})

	return repo
}

func TestSeedAndLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	want := seed.Default()
	if err := repo.Seed(ctx, want); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !reflect.DeepEqual(got.Tasks, want.Tasks) {
		t.Errorf("Tasks = %+v, want %+v", got.Tasks, want.Tasks)
	}
	if !reflect.DeepEqual(got.Meetings, want.Meetings) {
		t.Errorf("Meetings = %+v, want %+v", got.Meetings, want.Meetings)
	}
	if !reflect.DeepEqual(got.Productivity, want.Productivity) {
		t.Errorf("Productivity = %+v, want %+v", got.Productivity, want.Productivity)
	}
	if !reflect.DeepEqual(got.Insights, want.Insights) {
		t.Errorf("Insights = %v, want %v", got.Insights, want.Insights)
	}
}

func TestSetTaskCompleted(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	if err := repo.Seed(ctx, seed.Default()); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	if err := repo.SetTaskCompleted(ctx, "2", true); err != nil {
		t.Fatalf("SetTaskCompleted() error = %v", err)
	}

	tasks, err := repo.Tasks(ctx)
	if err != nil {
		t.Fatalf("Tasks() error = %v", err)
	}

	want := seed.Default().Tasks
	want.Toggle("2")
	if !reflect.DeepEqual(tasks, want) {
		t.Errorf("Tasks after update = %+v, want %+v", tasks, want)
	}
}

func TestSetTaskCompletedUnknownID(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	if err := repo.Seed(ctx, seed.Default()); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	if err := repo.SetTaskCompleted(ctx, "nonexistent", true); err != nil {
		t.Fatalf("SetTaskCompleted(nonexistent) error = %v", err)
	}

	tasks, err := repo.Tasks(ctx)
	if err != nil {
		t.Fatalf("Tasks() error = %v", err)
	}
	if !reflect.DeepEqual(tasks, seed.Default().Tasks) {
		t.Errorf("unknown id changed tasks: %+v", tasks)
	}
}

func TestEmptyRepository(t *testing.T) {
	repo := newTestRepository(t)

	data, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(data.Tasks) != 0 || len(data.Meetings) != 0 || len(data.Productivity) != 0 || len(data.Insights) != 0 {
		t.Errorf("empty repository returned data: %+v", data)
	}
}

func TestRepositoriesAreIsolated(t *testing.T) {
	ctx := context.Background()
	a := newTestRepository(t)
	b := newTestRepository(t)

	if err := a.Seed(ctx, seed.Default()); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	tasks, err := b.Tasks(ctx)
	if err != nil {
		t.Fatalf("Tasks() error = %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("second repository saw %d tasks, want 0", len(tasks))
	}
}
