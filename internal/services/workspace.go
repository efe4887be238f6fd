package services

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"rsvpportal/internal/cache"
	"rsvpportal/internal/domain"
)

const namespaceRevoked = "revoked_sessions"

// DefaultSessionTTL bounds a session whose expiry is unknown.
const DefaultSessionTTL = 168 * time.Hour

// NewSessionID returns a new sortable session identifier.
func NewSessionID() string {
	return ulid.Make().String()
}

// Workspace holds the cached stores of one login session.
type Workspace struct {
	Events *EventsStore
	RSVPs  *RSVPsStore

	expiresAt time.Time
}

// SessionManagerConfig wires a SessionManager.
type SessionManagerConfig struct {
	Events domain.EventsAPI
	RSVPs  domain.RSVPsAPI
	// Store persists cache snapshots and session revocations. Nil keeps both in memory.
	Store domain.SnapshotStore
	TTL   time.Duration
	// SessionTTL is assumed for sessions that carry no expiry.
	SessionTTL time.Duration
	Now        func() time.Time
	Metrics    *cache.Metrics
	Logger     *slog.Logger
}

// SessionManager owns one Workspace per session and ends sessions.
type SessionManager struct {
	cfg    SessionManagerConfig
	logger *slog.Logger

	mu         sync.Mutex
	workspaces map[string]*Workspace
	// revoked maps a session ID to the expiry of its token.
	revoked map[string]time.Time
}

// NewSessionManager returns a SessionManager.
func NewSessionManager(cfg SessionManagerConfig) *SessionManager {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = DefaultSessionTTL
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SessionManager{
		cfg:        cfg,
		logger:     logger,
		workspaces: make(map[string]*Workspace),
		revoked:    make(map[string]time.Time),
	}
}

// Workspace returns the workspace of session s, creating it and restoring
// its persisted snapshots on first use.
func (m *SessionManager) Workspace(ctx context.Context, s domain.Session) *Workspace {
	m.mu.Lock()
	defer m.mu.Unlock()
	exp := m.expiryOf(s)
	ws := m.workspaceLocked(ctx, s.ID, exp)
	if exp.After(ws.expiresAt) {
		ws.expiresAt = exp
	}
	return ws
}

func (m *SessionManager) expiryOf(s domain.Session) time.Time {
	if !s.ExpiresAt.IsZero() {
		return s.ExpiresAt
	}
	return m.cfg.Now().Add(m.cfg.SessionTTL)
}

func (m *SessionManager) workspaceLocked(ctx context.Context, sessionID string, expiresAt time.Time) *Workspace {
	if ws, ok := m.workspaces[sessionID]; ok {
		return ws
	}
	opts := cache.Options{
		TTL:     m.cfg.TTL,
		Now:     m.cfg.Now,
		Logger:  m.logger,
		Metrics: m.cfg.Metrics,
		Store:   m.cfg.Store,
		Key:     sessionID,
	}
	ws := &Workspace{
		Events:    NewEventsStore(m.cfg.Events, opts),
		RSVPs:     NewRSVPsStore(m.cfg.RSVPs, opts),
		expiresAt: expiresAt,
	}
	if err := ws.Events.Restore(ctx); err != nil {
		m.logger.WarnContext(ctx, "failed to restore events snapshot", "session_id", sessionID, "err", err)
	}
	if err := ws.RSVPs.Restore(ctx); err != nil {
		m.logger.WarnContext(ctx, "failed to restore rsvps snapshot", "session_id", sessionID, "err", err)
	}
	m.workspaces[sessionID] = ws
	return ws
}

func (m *SessionManager) Events(ctx context.Context, s domain.Session) domain.EventService {
	return m.Workspace(ctx, s).Events
}

func (m *SessionManager) RSVPs(ctx context.Context, s domain.Session) domain.RSVPService {
	return m.Workspace(ctx, s).RSVPs
}

// Terminate clears both caches of the session, deletes their snapshots and
// revokes the session. It is safe to call more than once.
func (m *SessionManager) Terminate(ctx context.Context, sessionID string) {
	if sessionID == "" {
		return
	}
	m.mu.Lock()
	ws := m.workspaceLocked(ctx, sessionID, m.cfg.Now().Add(m.cfg.SessionTTL))
	delete(m.workspaces, sessionID)
	expiresAt := ws.expiresAt
	m.revoked[sessionID] = expiresAt
	m.mu.Unlock()

	ws.Events.Clear(ctx)
	ws.RSVPs.Clear(ctx)

	if m.cfg.Store != nil {
		exp := []byte(strconv.FormatInt(expiresAt.UnixMilli(), 10))
		if err := m.cfg.Store.Save(context.WithoutCancel(ctx), namespaceRevoked, sessionID, exp); err != nil {
			m.logger.WarnContext(ctx, "failed to persist session revocation", "session_id", sessionID, "err", err)
		}
	}
	m.logger.InfoContext(ctx, "session terminated", "session_id", sessionID)
}

// IsRevoked reports whether the session was terminated, including by an
// earlier process sharing the same snapshot store. Revocations of expired
// tokens are forgotten.
func (m *SessionManager) IsRevoked(ctx context.Context, sessionID string) bool {
	now := m.cfg.Now()
	m.mu.Lock()
	exp, ok := m.revoked[sessionID]
	m.mu.Unlock()
	if ok {
		return now.Before(exp)
	}
	if m.cfg.Store == nil {
		return false
	}
	data, err := m.cfg.Store.Load(ctx, namespaceRevoked, sessionID)
	switch {
	case err == nil:
		exp := m.revocationExpiry(data)
		if !now.Before(exp) {
			m.forgetRevocation(ctx, sessionID)
			return false
		}
		m.mu.Lock()
		m.revoked[sessionID] = exp
		m.mu.Unlock()
		return true
	case errors.Is(err, domain.ErrNotFound):
		return false
	default:
		m.logger.WarnContext(ctx, "failed to check session revocation", "session_id", sessionID, "err", err)
		return false
	}
}

// revocationExpiry decodes a persisted revocation. Unreadable rows are kept
// for a full session lifetime.
func (m *SessionManager) revocationExpiry(data []byte) time.Time {
	ms, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return m.cfg.Now().Add(m.cfg.SessionTTL)
	}
	return time.UnixMilli(ms)
}

func (m *SessionManager) forgetRevocation(ctx context.Context, sessionID string) {
	if m.cfg.Store == nil {
		return
	}
	if err := m.cfg.Store.Delete(context.WithoutCancel(ctx), namespaceRevoked, sessionID); err != nil {
		m.logger.WarnContext(ctx, "failed to delete session revocation", "session_id", sessionID, "err", err)
	}
}

// Sweep drops the workspaces and revocations of sessions whose token has
// expired, together with their snapshots.
func (m *SessionManager) Sweep(ctx context.Context) {
	now := m.cfg.Now()
	var (
		expired []*Workspace
		revoked []string
	)
	m.mu.Lock()
	for id, ws := range m.workspaces {
		if !now.Before(ws.expiresAt) {
			expired = append(expired, ws)
			delete(m.workspaces, id)
		}
	}
	for id, exp := range m.revoked {
		if !now.Before(exp) {
			revoked = append(revoked, id)
			delete(m.revoked, id)
		}
	}
	m.mu.Unlock()

	for _, ws := range expired {
		ws.Events.Clear(ctx)
		ws.RSVPs.Clear(ctx)
	}
	for _, id := range revoked {
		m.forgetRevocation(ctx, id)
	}
	if len(expired) > 0 || len(revoked) > 0 {
		m.logger.DebugContext(ctx, "expired sessions swept", "workspaces", len(expired), "revocations", len(revoked))
	}
}

// Run calls Sweep every interval until ctx is done.
func (m *SessionManager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep(ctx)
		}
	}
}
