package query

import (
	"bytes"
	"context"
	"io"
	"time"

	"planora/internal/domain/model"
	"planora/internal/domain/repository"
)

type fakeBlobStore struct {
	blobs map[string][]byte
}

func (s *fakeBlobStore) Store(ctx context.Context, name string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.blobs[name] = data
	return name, nil
}

func (s *fakeBlobStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	data, ok := s.blobs[name]
	if !ok {
		return nil, repository.ErrBlobNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

type fakeEventRepo struct {
	events map[string]*model.Event
	views  []*model.EventView
}

func (r *fakeEventRepo) Save(ctx context.Context, e *model.Event) error   { return nil }
func (r *fakeEventRepo) Update(ctx context.Context, e *model.Event) error { return nil }
func (r *fakeEventRepo) Delete(ctx context.Context, id string) error      { return nil }
func (r *fakeEventRepo) UnsetField(ctx context.Context, id, field string) error {
	return nil
}

func (r *fakeEventRepo) GetByID(ctx context.Context, id string) (*model.Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return e, nil
}

func (r *fakeEventRepo) ListViews(ctx context.Context, filter repository.EventFilter) ([]*model.EventView, error) {
	return r.views, nil
}

type fakeItemRepo struct {
	items map[string]*model.Item
}

func (r *fakeItemRepo) Save(ctx context.Context, i *model.Item) error   { return nil }
func (r *fakeItemRepo) Update(ctx context.Context, i *model.Item) error { return nil }
func (r *fakeItemRepo) Delete(ctx context.Context, id string) error     { return nil }

func (r *fakeItemRepo) GetByID(ctx context.Context, id string) (*model.Item, error) {
	i, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return i, nil
}

func (r *fakeItemRepo) FindByTypeID(ctx context.Context, typeID string) ([]*model.Item, error) {
	var out []*model.Item
	for _, i := range r.items {
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
	var out []*model.Item
	for _, i := range r.items {
		for _, id := range clientIDs {
			if i.ClientID == id {
				out = append(out, i)
			}
		}
	}
	return out, nil
}

type fakeClientRepo struct {
	clients map[string]*model.Client
}

func (r *fakeClientRepo) Save(ctx context.Context, c *model.Client) error   { return nil }
func (r *fakeClientRepo) Update(ctx context.Context, c *model.Client) error { return nil }
func (r *fakeClientRepo) Delete(ctx context.Context, id string) error       { return nil }

func (r *fakeClientRepo) GetByID(ctx context.Context, id string) (*model.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return c, nil
}

func (r *fakeClientRepo) FindAll(ctx context.Context) ([]*model.Client, error) {
	var out []*model.Client
	for _, c := range r.clients {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeClientRepo) FindByUserID(ctx context.Context, userID string) (*model.Client, error) {
	for _, c := range r.clients {
		if c.UserID == userID {
			return c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeClientRepo) FindAvailableOutside(ctx context.Context, days []time.Time) ([]*model.Client, error) {
	var out []*model.Client
	for _, c := range r.clients {
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

type fakeTypeRepo struct {
	types map[string]*model.ServiceType
}

func (r *fakeTypeRepo) Save(ctx context.Context, t *model.ServiceType) error { return nil }

func (r *fakeTypeRepo) GetByID(ctx context.Context, id string) (*model.ServiceType, error) {
	t, ok := r.types[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return t, nil
}

func (r *fakeTypeRepo) FindByName(ctx context.Context, name string) (*model.ServiceType, error) {
	for _, t := range r.types {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeTypeRepo) FindAll(ctx context.Context) ([]*model.ServiceType, error) {
	var out []*model.ServiceType
	for _, t := range r.types {
		out = append(out, t)
	}
	return out, nil
}

type fakeBookingRepo struct {
	views []*model.BookingView
}

func (r *fakeBookingRepo) Save(ctx context.Context, b *model.Booking) error   { return nil }
func (r *fakeBookingRepo) Update(ctx context.Context, b *model.Booking) error { return nil }
func (r *fakeBookingRepo) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	return nil, repository.ErrNotFound
}
func (r *fakeBookingRepo) FindByEventID(ctx context.Context, eventID string) ([]*model.Booking, error) {
	return nil, nil
}
func (r *fakeBookingRepo) FindByClientID(ctx context.Context, clientID string) ([]*model.Booking, error) {
	return nil, nil
}
func (r *fakeBookingRepo) DeleteByEventID(ctx context.Context, eventID string) error { return nil }
func (r *fakeBookingRepo) UpdateStatusByEventID(ctx context.Context, eventID string, status model.BookingStatus) error {
	return nil
}

func (r *fakeBookingRepo) FindViewsByClientID(ctx context.Context, clientID string) ([]*model.BookingView, error) {
	var out []*model.BookingView
	for _, v := range r.views {
		if v.ClientID == clientID {
			out = append(out, v)
		}
	}
	return out, nil
}
