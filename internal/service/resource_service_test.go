package service

import (
	"context"
	"errors"
	"ielts_tracker_backend/internal/config"
	"ielts_tracker_backend/internal/model"
	"ielts_tracker_backend/internal/planner"
	"ielts_tracker_backend/internal/util"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newResourceService(t *testing.T, env *testEnv) *ResourceService {
	t.Helper()
	storage, err := NewStorageService(&config.StorageConfig{Type: util.StorageLocal, LocalPath: t.TempDir()})
	if err != nil {
		t.Fatalf("storage: %v", err)
	}
	return NewResourceService(env.res, env.sections, storage)
}

func TestResourceCatalogAndCollection(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t, "mei")
	svc := newResourceService(t, env)
	ctx := context.Background()

	if _, err := svc.Create(ctx, ResourceRequest{Title: "x", ResourceType: "podcast"}, nil); !errors.Is(err, util.ErrInvalidResourceType) {
		t.Fatalf("bad type: got %v", err)
	}
	if _, err := svc.Create(ctx, ResourceRequest{Title: "x", ResourceType: model.ResourceTypeBook, SectionID: ptr(uint(9))}, nil); !errors.Is(err, util.ErrInvalidSection) {
		t.Fatalf("bad section: got %v", err)
	}

	book, err := svc.Create(ctx, ResourceRequest{
		Title:        " Cambridge IELTS 18 ",
		SectionID:    ptr(planner.SectionReading),
		ResourceType: model.ResourceTypeBook,
	}, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if book.Title != "Cambridge IELTS 18" || book.Section == nil || book.Section.Name != "Reading" {
		t.Fatalf("created: %+v", book)
	}

	if _, err := svc.AddToCollection(user.ID, book.ID); err != nil {
		t.Fatalf("collect: %v", err)
	}
	if _, err := svc.AddToCollection(user.ID, book.ID); !errors.Is(err, util.ErrResourceCollected) {
		t.Fatalf("collect twice: got %v", err)
	}
	if _, err := svc.UpdateCollection(user.ID, book.ID, CollectionUpdateRequest{Rating: ptr(6)}); !errors.Is(err, util.ErrInvalidRating) {
		t.Fatalf("rating 6: got %v", err)
	}
	ur, err := svc.UpdateCollection(user.ID, book.ID, CollectionUpdateRequest{Completed: ptr(true), Rating: ptr(4)})
	if err != nil || !ur.Completed || *ur.Rating != 4 || ur.LastAccessed == nil {
		t.Fatalf("update collection: %+v err %v", ur, err)
	}

	done, err := svc.Collection(user.ID, ptr(true))
	if err != nil || len(done) != 1 {
		t.Fatalf("completed collection: %d err %v", len(done), err)
	}
	counts, err := svc.CompletedBySection(user.ID)
	if err != nil || len(counts) != 1 || counts[0].SectionName != "Reading" || counts[0].Count != 1 {
		t.Fatalf("completed by section: %+v err %v", counts, err)
	}

	if err := svc.RemoveFromCollection(user.ID, book.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := svc.RemoveFromCollection(user.ID, book.ID); !errors.Is(err, util.ErrResourceNotFound) {
		t.Fatalf("remove twice: got %v", err)
	}
}

func TestLocalStorageRoundTrip(t *testing.T) {
	root := t.TempDir()
	storage, err := NewStorageService(&config.StorageConfig{Type: util.StorageLocal, LocalPath: root})
	if err != nil {
		t.Fatalf("storage: %v", err)
	}
	ctx := context.Background()

	url, err := storage.Put(ctx, "resources/notes.txt", strings.NewReader("band 7"), 6, "text/plain")
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if url != "/uploads/resources/notes.txt" {
		t.Fatalf("url: %s", url)
	}
	data, err := os.ReadFile(filepath.Join(root, "resources", "notes.txt"))
	if err != nil || string(data) != "band 7" {
		t.Fatalf("stored: %q err %v", data, err)
	}

	if err := storage.Remove(ctx, "resources/notes.txt"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := storage.Remove(ctx, "resources/notes.txt"); err != nil {
		t.Fatalf("remove missing object: %v", err)
	}
}
