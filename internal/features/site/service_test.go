package site

import (
	"errors"
	"testing"

	"github.com/Ayush-shah-dev/real-estate-backend/internal/servererrors"
)

func TestGetProjectsByCategory(t *testing.T) {
	service := NewService()

	all := service.getProjects("")
	if len(all) == 0 {
		t.Fatal("expected at least one project")
	}

	var counted int
	for _, category := range []ProjectCategory{CategoryOngoing, CategoryCompleted, CategoryUpcoming} {
		filtered := service.getProjects(category)
		for _, p := range filtered {
			if p.Category != category {
				t.Errorf("project %s returned for category %q but belongs to %q", p.ProjectID, category, p.Category)
			}
		}
		counted += len(filtered)
	}

	if counted != len(all) {
		t.Errorf("categories cover %d projects, want %d", counted, len(all))
	}
}

func TestGetProject(t *testing.T) {
	service := NewService()

	project, err := service.getProject("1")
	if err != nil {
		t.Fatalf("expected project 1 to exist, got %v", err)
	}
	if project.Title == "" {
		t.Error("expected project to have a title")
	}

	_, err = service.getProject("does-not-exist")
	if !errors.Is(err, servererrors.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestCategoryIsValid(t *testing.T) {
	for _, category := range []ProjectCategory{CategoryOngoing, CategoryCompleted, CategoryUpcoming} {
		if !category.IsValid() {
			t.Errorf("expected %q to be a valid category", category)
		}
	}

	if ProjectCategory("archived").IsValid() {
		t.Error("expected unknown category to be invalid")
	}
}
