package handlers

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/abishekkprasad/health-journal/internal/repository"
)

func TestSetupCreatesProfileAndHistory(t *testing.T) {
	app, store := newJournalApp(t)
	setupProfile(t, app)

	profile, err := store.GetProfile(context.Background())
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if profile.HeightCM != 180 || profile.WeightKG != 85 || profile.BodyFatPercent != 22 {
		t.Errorf("profile round-trip mismatch: %+v", profile)
	}
	if profile.Age != 28 || profile.Gender != "male" {
		t.Errorf("profile round-trip mismatch: %+v", profile)
	}

	history, err := store.ListRecentBodyFat(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListRecentBodyFat: %v", err)
	}
	if len(history) != 1 || history[0].BodyFatPercent != 22 {
		t.Fatalf("expected 1 history entry at 22%%, got %+v", history)
	}
}

func TestSetupResubmissionMutatesInPlace(t *testing.T) {
	app, store := newJournalApp(t)
	setupProfile(t, app)

	resp := postForm(t, app, "/setup", url.Values{
		"height":   {"180"},
		"weight":   {"83"},
		"body_fat": {"21"},
		"age":      {"29"},
		"gender":   {"male"},
	})
	expectRedirectHome(t, resp)

	profile, err := store.GetProfile(context.Background())
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if profile.WeightKG != 83 || profile.BodyFatPercent != 21 || profile.Age != 29 {
		t.Errorf("expected profile overwritten in place, got %+v", profile)
	}

	history, err := store.ListRecentBodyFat(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListRecentBodyFat: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected a history entry per setup, got %d", len(history))
	}
}

func TestSetupMalformedFieldWritesNothing(t *testing.T) {
	app, store := newJournalApp(t)

	resp := postForm(t, app, "/setup", url.Values{
		"height":   {"180"},
		"weight":   {"abc"},
		"body_fat": {"22"},
		"age":      {"28"},
		"gender":   {"male"},
	})
	expectRedirectHome(t, resp)

	if _, err := store.GetProfile(context.Background()); !errors.Is(err, repository.ErrNoProfile) {
		t.Fatalf("expected no profile, got %v", err)
	}
	history, err := store.ListRecentBodyFat(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListRecentBodyFat: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("expected no history on discarded setup, got %d", len(history))
	}
}

func TestUpdateBodyFatChangesOnlyBodyFat(t *testing.T) {
	app, store := newJournalApp(t)
	setupProfile(t, app)

	resp := postForm(t, app, "/update-body-fat", url.Values{"body_fat": {"20.5"}})
	expectRedirectHome(t, resp)

	profile, err := store.GetProfile(context.Background())
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if profile.BodyFatPercent != 20.5 {
		t.Errorf("expected body fat 20.5, got %v", profile.BodyFatPercent)
	}
	if profile.WeightKG != 85 || profile.HeightCM != 180 || profile.Age != 28 {
		t.Errorf("expected other fields untouched, got %+v", profile)
	}

	history, err := store.ListRecentBodyFat(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListRecentBodyFat: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected history to grow by exactly 1, got %d", len(history))
	}
	if history[0].BodyFatPercent != 20.5 {
		t.Errorf("expected newest entry first, got %+v", history[0])
	}
}

func TestUpdateBodyFatBeforeSetupIsANoOp(t *testing.T) {
	app, store := newJournalApp(t)

	resp := postForm(t, app, "/update-body-fat", url.Values{"body_fat": {"20"}})
	expectRedirectHome(t, resp)

	history, err := store.ListRecentBodyFat(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListRecentBodyFat: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("expected no history before setup, got %d", len(history))
	}
}
