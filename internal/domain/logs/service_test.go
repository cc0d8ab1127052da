package logs

import (
	"context"
	"errors"
	"testing"
	"time"

	"dog-walk-tracker/internal/domain/household"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Log
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Log{}}
}

func (r *testRepo) Insert(ctx context.Context, ls []Log) error {
	for _, l := range ls {
		if l.ID == "" {
			return errors.New("repo: id required")
		}
		if _, ok := r.byID[l.ID]; ok {
			return errors.New("repo: already exists")
		}
	}
	for _, l := range ls {
		r.byID[l.ID] = l
	}
	return nil
}

func (r *testRepo) Replace(ctx context.Context, removeIDs []string, ls []Log) error {
	for _, id := range removeIDs {
		delete(r.byID, id)
	}
	return r.Insert(ctx, ls)
}

func (r *testRepo) Delete(ctx context.Context, ids []string) error {
	for _, id := range ids {
		delete(r.byID, id)
	}
	return nil
}

func (r *testRepo) ListRange(ctx context.Context, from, to time.Time) ([]Log, error) {
	out := make([]Log, 0)
	for _, l := range r.byID {
		if !l.CreatedAt.Before(from) && !l.CreatedAt.After(to) {
			out = append(out, l)
		}
	}
	return out, nil
}

func newTestService(repo Repository, now time.Time) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time { return now }
	return svc
}

// -------------------------
// Tests
// -------------------------

func TestCreateWalk_OneLogPerKindSharedTimestamp(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 20, 8, 0, 0, 0, time.UTC)
	svc := newTestService(newTestRepo(), now)

	ls, err := svc.CreateWalk(ctx, WalkInput{
		Member: household.MemberChris,
		Poop:   true,
		Pee:    true,
	})
	if err != nil {
		t.Fatalf("create walk: %v", err)
	}

	if len(ls) != 2 {
		t.Fatalf("expected 2 logs (poop+pee), got %d", len(ls))
	}
	if ls[0].Kind != KindPoop || ls[1].Kind != KindPee {
		t.Fatalf("unexpected kinds: %s, %s", ls[0].Kind, ls[1].Kind)
	}
	if !ls[0].CreatedAt.Equal(ls[1].CreatedAt) {
		t.Fatal("expected both logs to share one timestamp")
	}
	if !ls[0].CreatedAt.Equal(now) {
		t.Fatalf("expected timestamp defaulted to now, got %v", ls[0].CreatedAt)
	}
	if ls[0].ID == "" || ls[0].ID == ls[1].ID {
		t.Fatal("expected distinct non-empty ids")
	}
}

func TestCreateWalk_ExplicitTimestamp(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newTestRepo(), time.Now())

	at := time.Date(2026, 8, 19, 7, 30, 0, 0, time.UTC)
	ls, err := svc.CreateWalk(ctx, WalkInput{
		Member:    household.MemberDebbie,
		CreatedAt: &at,
		Pee:       true,
	})
	if err != nil {
		t.Fatalf("create walk: %v", err)
	}
	if len(ls) != 1 || !ls[0].CreatedAt.Equal(at) {
		t.Fatalf("expected single pee log at %v, got %v", at, ls)
	}
}

func TestCreateWalk_RequiresPoopOrPee(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newTestRepo(), time.Now())

	_, err := svc.CreateWalk(ctx, WalkInput{Member: household.MemberChris})
	if !errors.Is(err, ErrEmptyWalk) {
		t.Fatalf("expected ErrEmptyWalk, got %v", err)
	}
}

func TestCreateWalk_UnknownMember(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newTestRepo(), time.Now())

	_, err := svc.CreateWalk(ctx, WalkInput{Member: "Stranger", Poop: true})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUpdateWalk_ReplacesOldLogs(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 20, 8, 0, 0, 0, time.UTC)
	repo := newTestRepo()
	svc := newTestService(repo, now)

	old, err := svc.CreateWalk(ctx, WalkInput{Member: household.MemberChris, Poop: true, Pee: true})
	if err != nil {
		t.Fatalf("create walk: %v", err)
	}

	at := now.Add(-time.Hour)
	fresh, err := svc.UpdateWalk(ctx, []string{old[0].ID, old[1].ID}, WalkInput{
		Member:    household.MemberHaydn,
		CreatedAt: &at,
		Pee:       true,
	})
	if err != nil {
		t.Fatalf("update walk: %v", err)
	}

	if len(fresh) != 1 {
		t.Fatalf("expected 1 fresh log, got %d", len(fresh))
	}

	// Los viejos se fueron; solo queda el nuevo.
	if len(repo.byID) != 1 {
		t.Fatalf("expected repo to hold 1 log, got %d", len(repo.byID))
	}
	got, ok := repo.byID[fresh[0].ID]
	if !ok {
		t.Fatal("fresh log not persisted")
	}
	if got.Member != household.MemberHaydn || !got.CreatedAt.Equal(at) {
		t.Fatalf("unexpected persisted log: %+v", got)
	}
}

func TestDeleteWalk(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	svc := newTestService(repo, time.Now())

	ls, err := svc.CreateWalk(ctx, WalkInput{Member: household.MemberChris, Poop: true, Pee: true})
	if err != nil {
		t.Fatalf("create walk: %v", err)
	}

	if err := svc.DeleteWalk(ctx, []string{ls[0].ID, ls[1].ID}); err != nil {
		t.Fatalf("delete walk: %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("expected empty repo, got %d logs", len(repo.byID))
	}
}

func TestDeleteWalk_RequiresIDs(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newTestRepo(), time.Now())

	if err := svc.DeleteWalk(ctx, nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if err := svc.DeleteWalk(ctx, []string{"  ", ""}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank ids, got %v", err)
	}
}

func TestListRange_RejectsInvertedRange(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newTestRepo(), time.Now())

	now := time.Now()
	if _, err := svc.ListRange(ctx, now, now.Add(-time.Hour)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
