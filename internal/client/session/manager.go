package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/eyeglaze/eyeglaze-cli/internal/client/api"
	"github.com/eyeglaze/eyeglaze-cli/internal/client/models"
	"github.com/eyeglaze/eyeglaze-cli/internal/logging"
)

var (
	// ErrBirthDateRequired means register was called without a birth date.
	// No request is issued in that case.
	ErrBirthDateRequired = errors.New("birth date is required")

	// ErrInvalidBirthDate means the birth date is not a valid YYYY-MM-DD date.
	ErrInvalidBirthDate = errors.New("invalid birth date")
)

// Manager owns the session state: the current user and the loading flag.
// State mutations happen under a mutex so interleaved login/logout calls
// from different goroutines cannot tear the user/persisted pair apart.
//
// The in-memory user and the persisted copy are kept identical after every
// successful mutation; a failed login or register leaves both untouched.
type Manager struct {
	backend api.Backend
	store   *Store
	log     logging.Logger

	mu      sync.Mutex
	current *models.User
	loading bool

	// now is a seam so tests can pin the date the age computation sees.
	now func() time.Time
}

func NewManager(backend api.Backend, store *Store, log logging.Logger) *Manager {
	return &Manager{backend: backend, store: store, log: log, now: time.Now}
}

// Restore rehydrates the session from the persisted store. It is called
// once at startup; an absent or unreadable store means no session.
func (m *Manager) Restore(ctx context.Context) {
	u := m.store.Load(ctx)
	m.mu.Lock()
	m.current = u
	m.mu.Unlock()
	if u != nil {
		m.log.Info(ctx, "session restored", "user", u.Email)
	}
}

// CurrentUser returns a copy of the logged-in user, or nil.
func (m *Manager) CurrentUser() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return nil
	}
	u := *m.current
	return &u
}

// IsLoggedIn reports whether a user is present. The route guard consults
// this before permitting a protected command.
func (m *Manager) IsLoggedIn() bool {
	return m.CurrentUser() != nil
}

// IsLoading reports whether a login or register call is in flight.
func (m *Manager) IsLoading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

func (m *Manager) setLoading(v bool) {
	m.mu.Lock()
	m.loading = v
	m.mu.Unlock()
}

func (m *Manager) setCurrent(u *models.User) {
	m.mu.Lock()
	m.current = u
	m.mu.Unlock()
}

// Login exchanges credentials for a session. On success the new user is
// persisted first and then installed in memory; on any failure the session
// state is left exactly as it was.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	m.setLoading(true)
	defer m.setLoading(false)

	data, err := m.backend.Login(ctx, email, password)
	if err != nil {
		return err
	}

	u := &models.User{
		ID:    data.ID,
		Email: data.Username,
		Name:  models.DisplayNameFromEmail(data.Username),
	}
	if data.Age != nil {
		u.Age = *data.Age
	}

	if err := m.store.Save(ctx, u); err != nil {
		return err
	}
	m.setCurrent(u)

	m.log.Info(ctx, "logged in", "user", u.Email)
	return nil
}

// Register creates an account and opens a session for it. The age sent on
// to the analysis flow is computed locally from the birth date as completed
// years at the current date.
func (m *Manager) Register(ctx context.Context, name, email, password, birthDate string) error {
	m.setLoading(true)
	defer m.setLoading(false)

	if birthDate == "" {
		return ErrBirthDateRequired
	}
	birth, err := time.Parse(birthDateLayout, birthDate)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBirthDate, err)
	}
	age := completedYears(birth, m.now())

	data, err := m.backend.Register(ctx, email, password, birthDate)
	if err != nil {
		return err
	}

	displayName := name
	if displayName == "" {
		displayName = models.DisplayNameFromEmail(data.Username)
	}

	u := &models.User{
		ID:    data.ID,
		Email: data.Username,
		Name:  displayName,
		Age:   age,
	}

	if err := m.store.Save(ctx, u); err != nil {
		return err
	}
	m.setCurrent(u)

	m.log.Info(ctx, "registered", "user", u.Email, "age", age)
	return nil
}

// Logout drops the in-memory user and removes the persisted copy. There is
// no backend call and the operation cannot fail; a store hiccup is logged
// and the in-memory session is cleared regardless.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.store.Clear(ctx); err != nil {
		m.log.Warn(ctx, "failed to clear persisted session", "error", err)
	}
	m.setCurrent(nil)
	m.log.Info(ctx, "logged out")
}
