package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/lshigami/Brushtail/internal/dto"
	"github.com/lshigami/Brushtail/internal/model"
)

// fakeProfileRepo is an in-memory ProfileRepository. FindAll* return
// profiles in insertion order so ordering assertions stay deterministic.
type fakeProfileRepo struct {
	profiles []*model.Profile
}

func (f *fakeProfileRepo) Create(profile *model.Profile) error {
	cp := *profile
	f.profiles = append(f.profiles, &cp)
	return nil
}

func (f *fakeProfileRepo) FindByID(id uuid.UUID) (*model.Profile, error) {
	for _, p := range f.profiles {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProfileRepo) FindByEmail(email string) (*model.Profile, error) {
	for _, p := range f.profiles {
		if p.Email == email {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProfileRepo) FindAll() ([]model.Profile, error) {
	out := make([]model.Profile, 0, len(f.profiles))
	for _, p := range f.profiles {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProfileRepo) FindAllByTotalPointsDesc() ([]model.Profile, error) {
	return f.FindAll()
}

func (f *fakeProfileRepo) FindAllByCurrentStreakDesc() ([]model.Profile, error) {
	return f.FindAll()
}

func (f *fakeProfileRepo) Update(profile *model.Profile) error {
	for i, p := range f.profiles {
		if p.ID == profile.ID {
			cp := *profile
			f.profiles[i] = &cp
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeProfileRepo) Delete(id uuid.UUID) error {
	for i, p := range f.profiles {
		if p.ID == id {
			f.profiles = append(f.profiles[:i], f.profiles[i+1:]...)
			return nil
		}
	}
	return nil
}

func newTestProfileService(repo *fakeProfileRepo, now time.Time) *profileService {
	return &profileService{profileRepo: repo, now: func() time.Time { return now }}
}

func TestProfileService_UpdateStats(t *testing.T) {
	now := time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)

	t.Run("FirstCompletion", func(t *testing.T) {
		repo := &fakeProfileRepo{}
		id := uuid.New()
		repo.Create(&model.Profile{ID: id, Email: "first@example.com"})

		svc := newTestProfileService(repo, now)
		require.NoError(t, svc.UpdateStats(id, 80, true))

		p, err := repo.FindByID(id)
		require.NoError(t, err)
		assert.Equal(t, 80, p.TotalPoints)
		assert.Equal(t, 1, p.QuizzesCompleted)
		assert.Equal(t, 1, p.CurrentStreak)
		assert.Equal(t, 1, p.LongestStreak)
		require.NotNil(t, p.LastQuizDate)
		assert.Equal(t, now, *p.LastQuizDate)
	})

	t.Run("ConsecutiveDayExtendsStreak", func(t *testing.T) {
		repo := &fakeProfileRepo{}
		id := uuid.New()
		repo.Create(&model.Profile{
			ID:            id,
			CurrentStreak: 4,
			LongestStreak: 4,
			LastQuizDate:  &yesterday,
		})

		svc := newTestProfileService(repo, now)
		require.NoError(t, svc.UpdateStats(id, 50, true))

		p, _ := repo.FindByID(id)
		assert.Equal(t, 5, p.CurrentStreak)
		assert.Equal(t, 5, p.LongestStreak)
	})

	t.Run("SameDayKeepsStreak", func(t *testing.T) {
		repo := &fakeProfileRepo{}
		id := uuid.New()
		earlierToday := now.Add(-3 * time.Hour)
		repo.Create(&model.Profile{
			ID:            id,
			TotalPoints:   100,
			CurrentStreak: 3,
			LongestStreak: 7,
			LastQuizDate:  &earlierToday,
		})

		svc := newTestProfileService(repo, now)
		require.NoError(t, svc.UpdateStats(id, 40, true))

		p, _ := repo.FindByID(id)
		assert.Equal(t, 3, p.CurrentStreak, "second completion on the same day must not extend the streak")
		assert.Equal(t, 7, p.LongestStreak)
		assert.Equal(t, 140, p.TotalPoints, "points still accumulate on same-day completions")
		assert.Equal(t, 1, p.QuizzesCompleted)
		assert.Equal(t, now, *p.LastQuizDate)
	})

	t.Run("GapResetsStreak", func(t *testing.T) {
		repo := &fakeProfileRepo{}
		id := uuid.New()
		threeDaysAgo := now.AddDate(0, 0, -3)
		repo.Create(&model.Profile{
			ID:            id,
			CurrentStreak: 9,
			LongestStreak: 9,
			LastQuizDate:  &threeDaysAgo,
		})

		svc := newTestProfileService(repo, now)
		require.NoError(t, svc.UpdateStats(id, 10, true))

		p, _ := repo.FindByID(id)
		assert.Equal(t, 1, p.CurrentStreak)
		assert.Equal(t, 9, p.LongestStreak, "longest streak survives a reset")
	})

	t.Run("IncompleteAttemptOnlyAddsPoints", func(t *testing.T) {
		repo := &fakeProfileRepo{}
		id := uuid.New()
		repo.Create(&model.Profile{ID: id, TotalPoints: 20, CurrentStreak: 2, LastQuizDate: &yesterday})

		svc := newTestProfileService(repo, now)
		require.NoError(t, svc.UpdateStats(id, 15, false))

		p, _ := repo.FindByID(id)
		assert.Equal(t, 35, p.TotalPoints)
		assert.Equal(t, 0, p.QuizzesCompleted)
		assert.Equal(t, 2, p.CurrentStreak)
		assert.Equal(t, yesterday, *p.LastQuizDate, "incomplete attempts must not touch the streak clock")
	})

	t.Run("ProfileNotFound", func(t *testing.T) {
		svc := newTestProfileService(&fakeProfileRepo{}, now)
		err := svc.UpdateStats(uuid.New(), 10, true)
		assert.ErrorIs(t, err, ErrProfileNotFound)
	})
}

func TestApplyStreak_CalendarBoundaries(t *testing.T) {
	// Late-night yesterday followed by early-morning today is consecutive
	// even though fewer than 24 hours elapsed.
	lastNight := time.Date(2025, 3, 14, 23, 50, 0, 0, time.UTC)
	thisMorning := time.Date(2025, 3, 15, 0, 10, 0, 0, time.UTC)

	p := &model.Profile{CurrentStreak: 2, LongestStreak: 2, LastQuizDate: &lastNight}
	applyStreak(p, thisMorning)
	assert.Equal(t, 3, p.CurrentStreak)
	assert.Equal(t, 3, p.LongestStreak)

	// More than 24 hours within the same two calendar days would extend
	// too, but a full skipped day always resets.
	skipped := thisMorning.AddDate(0, 0, 2)
	applyStreak(p, skipped)
	assert.Equal(t, 1, p.CurrentStreak)
	assert.Equal(t, 3, p.LongestStreak)
}

func TestProfileService_SyncProfile(t *testing.T) {
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("CreatesWhenAbsent", func(t *testing.T) {
		repo := &fakeProfileRepo{}
		svc := newTestProfileService(repo, now)
		id := uuid.New()

		resp, err := svc.SyncProfile(dto.SyncProfileRequest{
			UserID:   id,
			Email:    "new@example.com",
			FullName: "New User",
		})
		require.NoError(t, err)
		assert.Equal(t, id, resp.ID)
		assert.Equal(t, "new@example.com", resp.Email)
		assert.Equal(t, 0, resp.TotalPoints)

		_, err = repo.FindByID(id)
		assert.NoError(t, err)
	})

	t.Run("PatchesChangedFields", func(t *testing.T) {
		repo := &fakeProfileRepo{}
		id := uuid.New()
		repo.Create(&model.Profile{ID: id, Email: "u@example.com", FullName: "Old Name", TotalPoints: 300})

		svc := newTestProfileService(repo, now)
		resp, err := svc.SyncProfile(dto.SyncProfileRequest{
			UserID:    id,
			Email:     "u@example.com",
			FullName:  "New Name",
			AvatarURL: "https://cdn.example.com/a.png",
		})
		require.NoError(t, err)
		assert.Equal(t, "New Name", resp.FullName)
		assert.Equal(t, "https://cdn.example.com/a.png", resp.AvatarURL)
		assert.Equal(t, 300, resp.TotalPoints, "sync must never touch stats")
	})

	t.Run("EmptyFieldsIgnored", func(t *testing.T) {
		repo := &fakeProfileRepo{}
		id := uuid.New()
		repo.Create(&model.Profile{ID: id, Email: "u@example.com", FullName: "Keep Me", AvatarURL: "keep.png"})

		svc := newTestProfileService(repo, now)
		resp, err := svc.SyncProfile(dto.SyncProfileRequest{UserID: id, Email: "u@example.com"})
		require.NoError(t, err)
		assert.Equal(t, "Keep Me", resp.FullName)
		assert.Equal(t, "keep.png", resp.AvatarURL)
	})
}

func TestProfileService_Leaderboard(t *testing.T) {
	repo := &fakeProfileRepo{}
	for i := 0; i < 5; i++ {
		repo.Create(&model.Profile{ID: uuid.New(), TotalPoints: 500 - i*100})
	}
	svc := newTestProfileService(repo, time.Now())

	t.Run("LimitTruncates", func(t *testing.T) {
		top, err := svc.GetLeaderboard(3)
		require.NoError(t, err)
		require.Len(t, top, 3)
		assert.Equal(t, 500, top[0].TotalPoints)
	})

	t.Run("ZeroLimitReturnsAll", func(t *testing.T) {
		top, err := svc.GetLeaderboard(0)
		require.NoError(t, err)
		assert.Len(t, top, 5)
	})

	t.Run("LimitBeyondSize", func(t *testing.T) {
		top, err := svc.GetStreakLeaderboard(50)
		require.NoError(t, err)
		assert.Len(t, top, 5)
	})
}
