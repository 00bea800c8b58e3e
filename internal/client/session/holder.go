package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/dmitrijs2005/loginkeeper/internal/client/client"
	"github.com/dmitrijs2005/loginkeeper/internal/client/metrics"
	"github.com/dmitrijs2005/loginkeeper/internal/client/models"
	"github.com/dmitrijs2005/loginkeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/loginkeeper/internal/logging"
)

// DefaultStorageKey is the repository key the login user is kept under.
const DefaultStorageKey = "loginUser"

// Holder owns the current login user. It is safe for concurrent use: reads
// never block, writes are serialized so memory and the repository end up
// with the same last-written value.
type Holder struct {
	repo    metadata.Repository
	client  client.Client
	log     logging.Logger
	metrics *metrics.Metrics
	key     string

	current atomic.Pointer[models.LoginUser]

	// writeMu serializes memory+repository writes and subscriber fan-out.
	writeMu sync.Mutex
	subs    map[*subscriber]struct{}
}

type Option func(*Holder)

func WithLogger(l logging.Logger) Option {
	return func(h *Holder) {
		h.log = l
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(h *Holder) {
		h.metrics = m
	}
}

func WithStorageKey(key string) Option {
	return func(h *Holder) {
		h.key = key
	}
}

// New builds a Holder and loads the persisted user.
//
// A missing key yields the default user. A persisted value that is not a
// valid user record is logged and also yields the default user; the stored
// value is left alone. Only a repository read failure is returned.
func New(ctx context.Context, repo metadata.Repository, c client.Client, opts ...Option) (*Holder, error) {
	h := &Holder{
		repo:   repo,
		client: c,
		log:    logging.NewNop(),
		key:    DefaultStorageKey,
		subs:   make(map[*subscriber]struct{}),
	}
	for _, opt := range opts {
		opt(h)
	}

	user, err := h.load(ctx)
	if err != nil {
		return nil, err
	}
	h.current.Store(&user)
	h.metrics.SetLoggedIn(!user.IsDefault())
	return h, nil
}

func (h *Holder) load(ctx context.Context) (models.LoginUser, error) {
	data, err := h.repo.Get(ctx, h.key)
	if err != nil {
		return models.LoginUser{}, fmt.Errorf("load login user: %w", err)
	}
	if data == nil {
		return models.DefaultLoginUser(), nil
	}

	user, err := models.ParseLoginUser(data)
	if err != nil {
		h.log.Warn(ctx, "persisted login user is malformed, using default", "key", h.key, "error", err)
		return models.DefaultLoginUser(), nil
	}
	return user, nil
}

// LoginUser returns a copy of the current user.
func (h *Holder) LoginUser() models.LoginUser {
	return *h.current.Load()
}

// SetLoginUser replaces the current user and persists it. No validation is
// done on user. The returned error is the persistence failure, if any;
// memory is updated either way.
func (h *Holder) SetLoginUser(ctx context.Context, user models.LoginUser) error {
	h.writeMu.Lock()
	defer h.writeMu.Unlock()

	return h.replace(ctx, user)
}

// ClearLoginUser resets to the default user and removes the persisted key.
func (h *Holder) ClearLoginUser(ctx context.Context) error {
	h.writeMu.Lock()
	defer h.writeMu.Unlock()

	h.publish(models.DefaultLoginUser())

	err := h.repo.Delete(ctx, h.key)
	h.metrics.ObserveStore("delete", err)
	if err != nil {
		h.log.Error(ctx, "failed to remove persisted login user", "key", h.key, "error", err)
		return fmt.Errorf("clear login user: %w", err)
	}
	return nil
}

// FetchLoginUser asks the backend for the current user. Only a success
// envelope with data changes the state. The network call is made without
// holding any lock; a concurrent SetLoginUser may land before or after it.
func (h *Holder) FetchLoginUser(ctx context.Context) FetchResult {
	res := h.fetch(ctx)
	h.metrics.ObserveFetch(res.Status.String())
	return res
}

func (h *Holder) fetch(ctx context.Context) FetchResult {
	env, err := h.client.GetLoginUser(ctx)
	if err != nil {
		h.log.Warn(ctx, "fetch login user failed", "error", err)
		return FetchResult{Status: FetchFailed, Err: err}
	}
	if env == nil {
		h.log.Debug(ctx, "fetch login user returned no envelope")
		return FetchResult{Status: FetchEmpty}
	}

	res := FetchResult{Code: env.Code, Message: env.Message}
	switch {
	case !env.OK():
		h.log.Debug(ctx, "fetch login user rejected", "code", env.Code, "message", env.Message)
		res.Status = FetchRejected
		return res
	case env.Data == nil:
		h.log.Debug(ctx, "fetch login user returned no data")
		res.Status = FetchEmpty
		return res
	}

	h.writeMu.Lock()
	defer h.writeMu.Unlock()

	res.Status = FetchUpdated
	res.Err = h.replace(ctx, *env.Data)
	h.log.Debug(ctx, "login user fetched", "user", env.Data.UserName)
	return res
}

// replace must be called with writeMu held.
func (h *Holder) replace(ctx context.Context, user models.LoginUser) error {
	h.publish(user)

	data, err := json.Marshal(user)
	if err == nil {
		err = h.repo.Set(ctx, h.key, data)
	}
	h.metrics.ObserveStore("set", err)
	if err != nil {
		h.log.Error(ctx, "failed to persist login user", "key", h.key, "error", err)
		return fmt.Errorf("persist login user: %w", err)
	}
	return nil
}

// publish must be called with writeMu held.
func (h *Holder) publish(user models.LoginUser) {
	h.current.Store(&user)
	h.metrics.SetLoggedIn(!user.IsDefault())
	for s := range h.subs {
		s.offer(user)
	}
}
