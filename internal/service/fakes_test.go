package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/complaint-portal/internal/domain"
	"github.com/spec-kit/complaint-portal/internal/events"
	"github.com/spec-kit/complaint-portal/internal/repository"
)

// fakeUserRepo is a map-backed stand-in for the Postgres user repository. It
// mimics the store's contracts: pgx.ErrNoRows for misses and a SQLSTATE 23505
// error for duplicate emails.
type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[int64]domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.Email == user.Email {
			return &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
		}
	}
	r.nextID++
	user.ID = r.nextID
	r.byID[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &user, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.byID {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) UpdateRegion(_ context.Context, id int64, region string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	user.Region = region
	r.byID[id] = user
	return &user, nil
}

// seed inserts a user directly, bypassing registration, the way bootstrap
// provisions the admin account.
func (r *fakeUserRepo) seed(user domain.User) domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	user.ID = r.nextID
	r.byID[user.ID] = user
	return user
}

// fakeComplaintRepo is a slice-backed stand-in for the complaint repository.
// Submission timestamps strictly increase so descending-order assertions are
// deterministic.
type fakeComplaintRepo struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]domain.Complaint
	clock  time.Time
	users  *fakeUserRepo
}

func newFakeComplaintRepo(users *fakeUserRepo) *fakeComplaintRepo {
	return &fakeComplaintRepo{
		items: make(map[int64]domain.Complaint),
		clock: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		users: users,
	}
}

func (r *fakeComplaintRepo) Create(_ context.Context, complaint *domain.Complaint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	r.clock = r.clock.Add(time.Second)
	complaint.ID = r.nextID
	complaint.SubmittedAt = r.clock
	r.items[complaint.ID] = *complaint
	return nil
}

func (r *fakeComplaintRepo) GetByID(_ context.Context, id int64) (*domain.Complaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	complaint, ok := r.items[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &complaint, nil
}

func (r *fakeComplaintRepo) ListByOwner(_ context.Context, ownerID int64) ([]domain.Complaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.Complaint
	for _, complaint := range r.items {
		if complaint.OwnerID == ownerID {
			result = append(result, complaint)
		}
	}
	sortNewestFirst(result)
	return result, nil
}

func (r *fakeComplaintRepo) ListWithFilter(_ context.Context, filter repository.ComplaintFilter) ([]domain.ComplaintWithSubmitter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []domain.Complaint
	for _, complaint := range r.items {
		if filter.Department != nil && string(complaint.Department) != *filter.Department {
			continue
		}
		if filter.Region != nil && string(complaint.Region) != *filter.Region {
			continue
		}
		matched = append(matched, complaint)
	}
	sortNewestFirst(matched)

	result := make([]domain.ComplaintWithSubmitter, 0, len(matched))
	for _, complaint := range matched {
		item := domain.ComplaintWithSubmitter{Complaint: complaint}
		if user, ok := r.users.byID[complaint.OwnerID]; ok {
			name, email := user.Name, user.Email
			item.SubmitterName = &name
			item.SubmitterEmail = &email
		}
		result = append(result, item)
	}
	return result, nil
}

func (r *fakeComplaintRepo) UpdateStatus(_ context.Context, id int64, status string) (*domain.Complaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	complaint, ok := r.items[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	complaint.Status = status
	r.items[id] = complaint
	return &complaint, nil
}

// orphan inserts a complaint whose owner is absent from the user repo, the
// shape the left join produces when an owner row is gone.
func (r *fakeComplaintRepo) orphan(complaint domain.Complaint) domain.Complaint {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	r.clock = r.clock.Add(time.Second)
	complaint.ID = r.nextID
	complaint.SubmittedAt = r.clock
	r.items[complaint.ID] = complaint
	return complaint
}

func sortNewestFirst(items []domain.Complaint) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].SubmittedAt.After(items[j].SubmittedAt)
	})
}

// recordingDispatcher captures published events for assertions.
type recordingDispatcher struct {
	mu        sync.Mutex
	published []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.published = append(d.published, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (d *recordingDispatcher) ofType(eventType events.EventType) []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	var result []events.Event
	for _, event := range d.published {
		if event.Type == eventType {
			result = append(result, event)
		}
	}
	return result
}
