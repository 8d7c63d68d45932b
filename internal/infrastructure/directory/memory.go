package directory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cowryhub/cowry-backend/internal/domain/contract"
	"github.com/cowryhub/cowry-backend/internal/domain/entity"
)

// Memory is an in-memory identity directory. It backs tests and local
// development; nothing persists across process restarts.
//
// Memory intentionally does not implement contract.INicknameIndex so the
// resolver's list-and-scan path stays exercised.
type Memory struct {
	mu         sync.Mutex
	identities map[string]*memoryRecord
	sessions   map[string]string // token -> identity id

	// UpdateCalls counts UpdateIdentity invocations, letting tests assert
	// that a rejected request never reached the store.
	UpdateCalls int
}

type memoryRecord struct {
	identity entity.Identity
	password string
}

var _ contract.IIdentityDirectory = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		identities: make(map[string]*memoryRecord),
		sessions:   make(map[string]string),
	}
}

func (m *Memory) ListIdentities(_ context.Context) ([]*entity.Identity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entity.Identity, 0, len(m.identities))
	for _, rec := range m.identities {
		ident := rec.identity
		out = append(out, &ident)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *Memory) GetIdentityByID(_ context.Context, id string) (*entity.Identity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.identities[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	ident := rec.identity
	return &ident, nil
}

func (m *Memory) CreateIdentity(_ context.Context, ident *entity.Identity, password string) (*entity.Identity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *ident
	if stored.ID == "" {
		stored.ID = uuid.New().String()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}
	m.identities[stored.ID] = &memoryRecord{identity: stored, password: password}
	out := stored
	return &out, nil
}

func (m *Memory) VerifyPassword(_ context.Context, email, password string) (*contract.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, rec := range m.identities {
		if rec.identity.Email != email {
			continue
		}
		if rec.password != password {
			return nil, entity.ErrInvalidCredentials
		}
		now := time.Now().UTC()
		rec.identity.LastSignInAt = &now
		token := uuid.New().String()
		m.sessions[token] = rec.identity.ID
		ident := rec.identity
		return &contract.Session{Token: token, Identity: &ident}, nil
	}
	return nil, entity.ErrInvalidCredentials
}

func (m *Memory) VerifyToken(_ context.Context, token string) (*entity.Identity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.sessions[token]
	if !ok {
		return nil, entity.ErrInvalidCredentials
	}
	rec, ok := m.identities[id]
	if !ok {
		return nil, entity.ErrInvalidCredentials
	}
	ident := rec.identity
	return &ident, nil
}

func (m *Memory) UpdateIdentity(_ context.Context, id string, patch contract.IdentityPatch) (*entity.Identity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateCalls++
	rec, ok := m.identities[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	if patch.Nickname != nil {
		rec.identity.Nickname = *patch.Nickname
	}
	if patch.Role != nil {
		rec.identity.Role = *patch.Role
	}
	if patch.CWT != nil {
		rec.identity.Balance.CWT = *patch.CWT
	}
	if patch.CWS != nil {
		rec.identity.Balance.CWS = *patch.CWS
	}
	if patch.Phone != nil {
		rec.identity.Phone = *patch.Phone
	}
	if patch.Province != nil {
		rec.identity.Province = *patch.Province
	}
	if patch.WalletAddress != nil {
		rec.identity.WalletAddress = *patch.WalletAddress
	}
	if patch.NotificationsEnabled != nil {
		rec.identity.NotificationsEnabled = *patch.NotificationsEnabled
	}
	if patch.LastSignInAt != nil {
		rec.identity.LastSignInAt = patch.LastSignInAt
	}
	ident := rec.identity
	return &ident, nil
}

func (m *Memory) UpdatePassword(_ context.Context, id, newPassword string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.identities[id]
	if !ok {
		return entity.ErrNotFound
	}
	rec.password = newPassword
	return nil
}

func (m *Memory) RevokeSession(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
	return nil
}
