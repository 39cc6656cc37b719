package services

import (
	"context"
	"errors"
	"time"

	"github.com/abishekkprasad/health-journal/internal/models"
	"github.com/abishekkprasad/health-journal/internal/repository"
	"github.com/abishekkprasad/health-journal/pkg/metabolics"
)

const recentBodyFatEntries = 10

type ProfileStore interface {
	SetProfile(ctx context.Context, profile *models.UserProfile) error
	GetProfile(ctx context.Context) (*models.UserProfile, error)
	UpdateBodyFat(ctx context.Context, bodyFatPercent float64) error
}

type LogStore interface {
	UpsertLog(ctx context.Context, log *models.DailyLog) error
	ListLogs(ctx context.Context) ([]models.DailyLog, error)
}

type BodyFatHistoryStore interface {
	AppendBodyFat(ctx context.Context, bodyFatPercent float64) (*models.BodyFatEntry, error)
	ListRecentBodyFat(ctx context.Context, limit int) ([]models.BodyFatEntry, error)
}

// JournalService owns the journal's use cases: profile setup, body-fat
// updates, daily log submissions and the dashboard read path.
type JournalService struct {
	profiles ProfileStore
	logs     LogStore
	history  BodyFatHistoryStore
}

func NewJournalService(profiles ProfileStore, logs LogStore, history BodyFatHistoryStore) *JournalService {
	return &JournalService{
		profiles: profiles,
		logs:     logs,
		history:  history,
	}
}

type SetupProfileInput struct {
	HeightCM       float64
	WeightKG       float64
	BodyFatPercent float64
	Age            int
	Gender         string
}

// SetupProfile creates or overwrites the singleton profile and appends a
// body-fat history entry.
func (s *JournalService) SetupProfile(ctx context.Context, input SetupProfileInput) (*models.UserProfile, error) {
	if _, err := metabolics.KatchMcArdleBMR(input.WeightKG, input.BodyFatPercent); err != nil {
		return nil, err
	}

	profile := &models.UserProfile{
		HeightCM:       input.HeightCM,
		WeightKG:       input.WeightKG,
		BodyFatPercent: input.BodyFatPercent,
		Age:            input.Age,
		Gender:         input.Gender,
	}
	if err := s.profiles.SetProfile(ctx, profile); err != nil {
		return nil, err
	}
	if _, err := s.history.AppendBodyFat(ctx, input.BodyFatPercent); err != nil {
		return nil, err
	}
	return profile, nil
}

// UpdateBodyFat mutates only the profile's body-fat field and appends a
// history entry. Returns repository.ErrNoProfile when setup has never run.
func (s *JournalService) UpdateBodyFat(ctx context.Context, bodyFatPercent float64) error {
	if bodyFatPercent < 0 || bodyFatPercent > 75 {
		return metabolics.ErrImplausibleInput
	}
	if err := s.profiles.UpdateBodyFat(ctx, bodyFatPercent); err != nil {
		return err
	}
	_, err := s.history.AppendBodyFat(ctx, bodyFatPercent)
	return err
}

type LogDayInput struct {
	Date         time.Time
	WeightKG     *float64
	WalkKM       float64
	ConsumedKcal float64
	BurntKcal    float64
}

// LogDay computes the day's energy balance from the current profile and
// upserts the log for the given date. A zero Date means today; a nil weight
// falls back to the profile weight. Requires a profile.
func (s *JournalService) LogDay(ctx context.Context, input LogDayInput) (*models.DailyLog, error) {
	profile, err := s.profiles.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	bmr, err := metabolics.KatchMcArdleBMR(profile.WeightKG, profile.BodyFatPercent)
	if err != nil {
		return nil, err
	}

	date := input.Date
	if date.IsZero() {
		now := time.Now()
		date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	weight := profile.WeightKG
	if input.WeightKG != nil {
		weight = *input.WeightKG
	}

	balance := metabolics.DailyBalance(bmr, input.WalkKM, input.BurntKcal, input.ConsumedKcal)
	log := &models.DailyLog{
		LogDate:       date,
		WeightKG:      weight,
		WalkKM:        input.WalkKM,
		ConsumedKcal:  input.ConsumedKcal,
		BurntKcal:     input.BurntKcal,
		TotalBurnKcal: balance.TotalBurnKcal,
		DeficitKcal:   balance.DeficitKcal,
		FatLossGrams:  balance.FatLossGrams,
	}
	if err := s.logs.UpsertLog(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

// Dashboard is everything the index page renders.
type Dashboard struct {
	Profile        *models.UserProfile
	SetupNeeded    bool
	BMRKcal        float64
	Logs           []models.DailyLog
	Weeks          []models.WeeklySummary
	BodyFatHistory []models.BodyFatEntry
}

// LoadDashboard assembles the dashboard state. A journal without a profile
// renders in the setup-needed state rather than failing.
func (s *JournalService) LoadDashboard(ctx context.Context) (*Dashboard, error) {
	dashboard := &Dashboard{}

	profile, err := s.profiles.GetProfile(ctx)
	switch {
	case err == nil:
		dashboard.Profile = profile
		if bmr, bmrErr := metabolics.KatchMcArdleBMR(profile.WeightKG, profile.BodyFatPercent); bmrErr == nil {
			dashboard.BMRKcal = bmr
		}
	case errors.Is(err, repository.ErrNoProfile):
		dashboard.SetupNeeded = true
	default:
		return nil, err
	}

	logs, err := s.logs.ListLogs(ctx)
	if err != nil {
		return nil, err
	}
	dashboard.Logs = logs
	dashboard.Weeks = WeeklySummaries(logs)

	history, err := s.history.ListRecentBodyFat(ctx, recentBodyFatEntries)
	if err != nil {
		return nil, err
	}
	dashboard.BodyFatHistory = history

	return dashboard, nil
}
