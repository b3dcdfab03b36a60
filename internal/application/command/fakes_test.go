package command

import (
	"context"
	"fmt"
	"sync"
	"time"

	"planora/internal/domain/event"
	"planora/internal/domain/model"
	"planora/internal/domain/repository"
	"planora/internal/infrastructure/bus"
)

// memStore is a shared in-memory database for handler tests. All fake
// repositories operate on the same maps so cross-entity flows behave like
// they would against one database.
type memStore struct {
	mu sync.Mutex

	seq      int
	users    map[string]*model.User
	clients  map[string]*model.Client
	items    map[string]*model.Item
	events   map[string]*model.Event
	bookings map[string]*model.Booking
	types    map[string]*model.ServiceType

	// failBookingSaves makes the next N booking saves fail, for retry tests.
	failBookingSaves int
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[string]*model.User),
		clients:  make(map[string]*model.Client),
		items:    make(map[string]*model.Item),
		events:   make(map[string]*model.Event),
		bookings: make(map[string]*model.Booking),
		types:    make(map[string]*model.ServiceType),
	}
}

func (s *memStore) nextID() string {
	s.seq++
	return fmt.Sprintf("id-%d", s.seq)
}

type fakeUserRepo struct{ s *memStore }

func (r *fakeUserRepo) Save(ctx context.Context, u *model.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u.ID == "" {
		u.ID = r.s.nextID()
	}
	r.s.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, u *model.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	r.s.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeClientRepo struct{ s *memStore }

func (r *fakeClientRepo) Save(ctx context.Context, c *model.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c.ID == "" {
		c.ID = r.s.nextID()
	}
	r.s.clients[c.ID] = c
	return nil
}

func (r *fakeClientRepo) GetByID(ctx context.Context, id string) (*model.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.clients[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return c, nil
}

func (r *fakeClientRepo) Update(ctx context.Context, c *model.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.clients[c.ID]; !ok {
		return repository.ErrNotFound
	}
	r.s.clients[c.ID] = c
	return nil
}

func (r *fakeClientRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.clients[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.clients, id)
	return nil
}

func (r *fakeClientRepo) FindAll(ctx context.Context) ([]*model.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*model.Client
	for _, c := range r.s.clients {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeClientRepo) FindByUserID(ctx context.Context, userID string) (*model.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.clients {
		if c.UserID == userID {
			return c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeClientRepo) FindAvailableOutside(ctx context.Context, days []time.Time) ([]*model.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*model.Client
	for _, c := range r.s.clients {
		taken := false
		for _, a := range c.Availability {
			for _, d := range days {
				if a.Equal(d) {
					taken = true
				}
			}
		}
		if !taken {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeItemRepo struct{ s *memStore }

func (r *fakeItemRepo) Save(ctx context.Context, i *model.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if i.ID == "" {
		i.ID = r.s.nextID()
	}
	r.s.items[i.ID] = i
	return nil
}

func (r *fakeItemRepo) GetByID(ctx context.Context, id string) (*model.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i, ok := r.s.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return i, nil
}

func (r *fakeItemRepo) Update(ctx context.Context, i *model.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[i.ID]; !ok {
		return repository.ErrNotFound
	}
	r.s.items[i.ID] = i
	return nil
}

func (r *fakeItemRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.items, id)
	return nil
}

func (r *fakeItemRepo) FindByTypeID(ctx context.Context, typeID string) ([]*model.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*model.Item
	for _, i := range r.s.items {
		if i.TypeID == typeID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) FindByClientID(ctx context.Context, clientID string) ([]*model.Item, error) {
	return r.FindByClientIDs(ctx, []string{clientID})
}

func (r *fakeItemRepo) FindByClientIDs(ctx context.Context, clientIDs []string) ([]*model.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*model.Item
	for _, i := range r.s.items {
		for _, id := range clientIDs {
			if i.ClientID == id {
				out = append(out, i)
			}
		}
	}
	return out, nil
}

type fakeEventRepo struct{ s *memStore }

func (r *fakeEventRepo) Save(ctx context.Context, e *model.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if e.ID == "" {
		e.ID = r.s.nextID()
	}
	r.s.events[e.ID] = e
	return nil
}

func (r *fakeEventRepo) GetByID(ctx context.Context, id string) (*model.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.events[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return e, nil
}

func (r *fakeEventRepo) Update(ctx context.Context, e *model.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.events[e.ID]; !ok {
		return repository.ErrNotFound
	}
	r.s.events[e.ID] = e
	return nil
}

func (r *fakeEventRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.events, id)
	return nil
}

func (r *fakeEventRepo) UnsetField(ctx context.Context, id, field string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.events[id]
	if !ok {
		return repository.ErrNotFound
	}
	switch field {
	case "description":
		e.Description = ""
	case "venue_id":
		e.VenueID = ""
	case "dates":
		e.Dates = nil
	}
	return nil
}

func (r *fakeEventRepo) ListViews(ctx context.Context, filter repository.EventFilter) ([]*model.EventView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*model.EventView
	for _, e := range r.s.events {
		if filter.Published != nil && e.IsPublished != *filter.Published {
			continue
		}
		if filter.UserID != "" && e.UserID != filter.UserID {
			continue
		}
		view := &model.EventView{
			ID:          e.ID,
			Name:        e.Name,
			Images:      e.Images,
			Status:      e.Status,
			IsPublished: e.IsPublished,
			Dates:       e.Dates,
		}
		if latest, ok := model.LatestDate(e.Dates); ok {
			view.LastDate = &latest
		}
		out = append(out, view)
	}
	return out, nil
}

type fakeBookingRepo struct{ s *memStore }

func (r *fakeBookingRepo) Save(ctx context.Context, b *model.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failBookingSaves > 0 {
		r.s.failBookingSaves--
		return fmt.Errorf("simulated store failure")
	}
	if b.ID == "" {
		b.ID = r.s.nextID()
	}
	r.s.bookings[b.ID] = b
	return nil
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return b, nil
}

func (r *fakeBookingRepo) Update(ctx context.Context, b *model.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.bookings[b.ID]; !ok {
		return repository.ErrNotFound
	}
	r.s.bookings[b.ID] = b
	return nil
}

func (r *fakeBookingRepo) FindByEventID(ctx context.Context, eventID string) ([]*model.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*model.Booking
	for _, b := range r.s.bookings {
		if b.EventID == eventID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) FindByClientID(ctx context.Context, clientID string) ([]*model.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*model.Booking
	for _, b := range r.s.bookings {
		if b.ClientID == clientID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) FindViewsByClientID(ctx context.Context, clientID string) ([]*model.BookingView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*model.BookingView
	for _, b := range r.s.bookings {
		if b.ClientID != clientID {
			continue
		}
		view := &model.BookingView{Booking: *b}
		if e, ok := r.s.events[b.EventID]; ok {
			view.Event = e
		}
		out = append(out, view)
	}
	return out, nil
}

func (r *fakeBookingRepo) DeleteByEventID(ctx context.Context, eventID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, b := range r.s.bookings {
		if b.EventID == eventID {
			delete(r.s.bookings, id)
		}
	}
	return nil
}

func (r *fakeBookingRepo) UpdateStatusByEventID(ctx context.Context, eventID string, status model.BookingStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, b := range r.s.bookings {
		if b.EventID == eventID {
			b.Status = status
		}
	}
	return nil
}

type fakeServiceTypeRepo struct{ s *memStore }

func (r *fakeServiceTypeRepo) Save(ctx context.Context, t *model.ServiceType) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if t.ID == "" {
		t.ID = r.s.nextID()
	}
	r.s.types[t.ID] = t
	return nil
}

func (r *fakeServiceTypeRepo) GetByID(ctx context.Context, id string) (*model.ServiceType, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.types[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return t, nil
}

func (r *fakeServiceTypeRepo) FindByName(ctx context.Context, name string) (*model.ServiceType, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range r.s.types {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeServiceTypeRepo) FindAll(ctx context.Context) ([]*model.ServiceType, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*model.ServiceType
	for _, t := range r.s.types {
		out = append(out, t)
	}
	return out, nil
}

// fakeUnitOfWork hands out fake repositories over the shared store.
// Transactions are no-ops; handler logic under test does not depend on
// rollback semantics.
type fakeUnitOfWork struct {
	s    *memStore
	inTx bool
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error    { u.inTx = true; return nil }
func (u *fakeUnitOfWork) Commit(ctx context.Context) error   { u.inTx = false; return nil }
func (u *fakeUnitOfWork) Rollback(ctx context.Context) error { u.inTx = false; return nil }
func (u *fakeUnitOfWork) Close() error                       { return nil }
func (u *fakeUnitOfWork) IsInTransaction() bool              { return u.inTx }

func (u *fakeUnitOfWork) UserRepository() repository.UserRepository     { return &fakeUserRepo{u.s} }
func (u *fakeUnitOfWork) ClientRepository() repository.ClientRepository { return &fakeClientRepo{u.s} }
func (u *fakeUnitOfWork) ItemRepository() repository.ItemRepository     { return &fakeItemRepo{u.s} }
func (u *fakeUnitOfWork) EventRepository() repository.EventRepository   { return &fakeEventRepo{u.s} }
func (u *fakeUnitOfWork) BookingRepository() repository.BookingRepository {
	return &fakeBookingRepo{u.s}
}
func (u *fakeUnitOfWork) ServiceTypeRepository() repository.ServiceTypeRepository {
	return &fakeServiceTypeRepo{u.s}
}

type fakeUoWFactory struct{ s *memStore }

func (f *fakeUoWFactory) CreateUnitOfWork() repository.UnitOfWork {
	return &fakeUnitOfWork{s: f.s}
}

// fakeBus records published events and dispatches them synchronously to
// subscribers, so tests observe bus side effects without sleeps.
type fakeBus struct {
	mu        sync.Mutex
	published []event.DomainEvent
	handlers  map[string][]bus.EventHandler
}

func newFakeBus() *fakeBus {
	return &fakeBus{handlers: make(map[string][]bus.EventHandler)}
}

func (b *fakeBus) Subscribe(eventType string, handler bus.EventHandler) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
	return nil
}

func (b *fakeBus) Publish(ctx context.Context, evt event.DomainEvent) error {
	b.mu.Lock()
	b.published = append(b.published, evt)
	handlers := b.handlers[evt.EventType()]
	b.mu.Unlock()

	for _, h := range handlers {
		h.Handle(ctx, evt)
	}
	return nil
}

func (b *fakeBus) PublishBatch(ctx context.Context, events []event.DomainEvent) error {
	for _, evt := range events {
		if err := b.Publish(ctx, evt); err != nil {
			return err
		}
	}
	return nil
}

func (b *fakeBus) Start(ctx context.Context) error { return nil }
func (b *fakeBus) Stop() error                     { return nil }

func (b *fakeBus) eventsOfType(eventType string) []event.DomainEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []event.DomainEvent
	for _, evt := range b.published {
		if evt.EventType() == eventType {
			out = append(out, evt)
		}
	}
	return out
}
