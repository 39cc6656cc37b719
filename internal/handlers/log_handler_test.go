package handlers

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/abishekkprasad/health-journal/internal/repository"
)

func TestLogSubmissionComputesAndStores(t *testing.T) {
	app, store := newJournalApp(t)
	setupProfile(t, app)

	resp := postForm(t, app, "/log", url.Values{
		"date":     {"2026-03-02"},
		"walk":     {"5"},
		"consumed": {"1800"},
		"burnt":    {"200"},
	})
	expectRedirectHome(t, resp)

	logs, err := store.ListLogs(context.Background())
	if err != nil {
		t.Fatalf("ListLogs: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected 1 log, got %d", len(logs))
	}
	log := logs[0]
	if log.TotalBurnKcal != 2302 || log.DeficitKcal != 502 || log.FatLossGrams != 65.19 {
		t.Errorf("unexpected derived fields: %+v", log)
	}
	if log.WeightKG != 85 {
		t.Errorf("expected weight defaulted from profile, got %v", log.WeightKG)
	}
}

func TestLogResubmissionOverwritesSameDate(t *testing.T) {
	app, store := newJournalApp(t)
	setupProfile(t, app)

	first := url.Values{"date": {"2026-03-02"}, "walk": {"5"}, "consumed": {"1800"}}
	second := url.Values{"date": {"2026-03-02"}, "walk": {"9"}, "consumed": {"2100"}}
	expectRedirectHome(t, postForm(t, app, "/log", first))
	expectRedirectHome(t, postForm(t, app, "/log", second))

	logs, err := store.ListLogs(context.Background())
	if err != nil {
		t.Fatalf("ListLogs: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected exactly 1 log after resubmission, got %d", len(logs))
	}
	if logs[0].WalkKM != 9 || logs[0].ConsumedKcal != 2100 {
		t.Errorf("expected second submission to win, got %+v", logs[0])
	}
}

func TestLogMalformedWalkLeavesStoreUnchanged(t *testing.T) {
	app, store := newJournalApp(t)
	setupProfile(t, app)

	resp := postForm(t, app, "/log", url.Values{
		"date": {"2026-03-02"},
		"walk": {"abc"},
	})
	expectRedirectHome(t, resp)

	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	if _, err := store.GetLog(context.Background(), date); !errors.Is(err, repository.ErrLogNotFound) {
		t.Fatalf("expected no log for that date, got %v", err)
	}
}

func TestLogMalformedDateIsDiscarded(t *testing.T) {
	app, store := newJournalApp(t)
	setupProfile(t, app)

	resp := postForm(t, app, "/log", url.Values{
		"date": {"02/03/2026"},
		"walk": {"5"},
	})
	expectRedirectHome(t, resp)

	logs, err := store.ListLogs(context.Background())
	if err != nil {
		t.Fatalf("ListLogs: %v", err)
	}
	if len(logs) != 0 {
		t.Fatalf("expected no logs, got %d", len(logs))
	}
}

func TestLogDefaultsDateToToday(t *testing.T) {
	app, store := newJournalApp(t)
	setupProfile(t, app)

	expectRedirectHome(t, postForm(t, app, "/log", url.Values{"walk": {"3"}}))

	logs, err := store.ListLogs(context.Background())
	if err != nil {
		t.Fatalf("ListLogs: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected 1 log, got %d", len(logs))
	}
	if got, want := logs[0].DateKey(), time.Now().Format("2006-01-02"); got != want {
		t.Errorf("expected log date %s, got %s", want, got)
	}
}

func TestLogBeforeSetupIsANoOp(t *testing.T) {
	app, store := newJournalApp(t)

	resp := postForm(t, app, "/log", url.Values{"walk": {"5"}})
	expectRedirectHome(t, resp)

	logs, err := store.ListLogs(context.Background())
	if err != nil {
		t.Fatalf("ListLogs: %v", err)
	}
	if len(logs) != 0 {
		t.Fatalf("expected no logs before setup, got %d", len(logs))
	}
}
