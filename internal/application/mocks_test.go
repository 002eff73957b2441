package application_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/connecta/identity-service/internal/domain/entity"
	"github.com/connecta/identity-service/internal/domain/repository"
)

// memRepo is an in-memory stand-in for the store adapter. It honors
// the store contract the services rely on: email uniqueness is decided
// atomically inside Create under the lock, never by a prior check.
type memRepo struct {
	mu       sync.Mutex
	byID     map[string]entity.Identity
	idByMail map[string]string
	seq      int

	getByIDCalls int
	updateCalls  int
}

func newMemRepo() *memRepo {
	return &memRepo{
		byID:     make(map[string]entity.Identity),
		idByMail: make(map[string]string),
	}
}

func (r *memRepo) GetByID(_ context.Context, id string) (*entity.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.getByIDCalls++
	ident, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := ident
	return &cp, nil
}

func (r *memRepo) GetByEmail(_ context.Context, email string) (*entity.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.idByMail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := r.byID[id]
	return &cp, nil
}

func (r *memRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.idByMail[email]
	return ok, nil
}

func (r *memRepo) Create(_ context.Context, ident *entity.Identity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.idByMail[ident.Email]; taken {
		return repository.ErrEmailTaken
	}
	r.seq++
	ident.ID = fmt.Sprintf("id-%04d", r.seq)
	now := time.Now()
	ident.CreatedAt = now
	ident.UpdatedAt = now
	r.byID[ident.ID] = *ident
	r.idByMail[ident.Email] = ident.ID
	return nil
}

func (r *memRepo) Update(_ context.Context, ident *entity.Identity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updateCalls++
	if _, ok := r.byID[ident.ID]; !ok {
		return repository.ErrNotFound
	}
	ident.UpdatedAt = time.Now()
	r.byID[ident.ID] = *ident
	return nil
}

func (r *memRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byID)
}

var _ repository.IdentityRepository = (*memRepo)(nil)

// memPublisher records published events; fail makes every publish
// return an error.
type memPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
	fail   bool
}

type publishedEvent struct {
	routingKey string
	body       any
}

func (p *memPublisher) PublishJSON(_ context.Context, routingKey string, body any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail {
		return errors.New("broker down")
	}
	p.events = append(p.events, publishedEvent{routingKey: routingKey, body: body})
	return nil
}

func (p *memPublisher) published() []publishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]publishedEvent(nil), p.events...)
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
