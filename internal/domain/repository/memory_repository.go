package repository

import (
	"autosallon/internal/common"
	"autosallon/internal/domain/model"
	"context"
	"sort"
	"sync"
)

// In-memory implementations of the store interfaces, selected at process
// start when no database engine is configured. Each keeps insertion order
// through ascending ids so lists match the relational variants.

type memoryUserRepository struct {
	mu     sync.RWMutex
	users  map[int]model.User
	nextID int
}

func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{users: map[int]model.User{}, nextID: 1}
}

func (r *memoryUserRepository) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Username == user.Username {
			return common.ErrConflict
		}
	}
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) FindByUsername(_ context.Context, username string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *memoryUserRepository) FindByID(_ context.Context, id int) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	u := user
	return &u, nil
}

func (r *memoryUserRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users), nil
}

type memoryCarRepository struct {
	mu     sync.RWMutex
	cars   map[int]model.Car
	nextID int
}

func NewMemoryCarRepository() CarRepository {
	return &memoryCarRepository{cars: map[int]model.Car{}, nextID: 1}
}

func (r *memoryCarRepository) List(_ context.Context) ([]model.Car, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cars := make([]model.Car, 0, len(r.cars))
	for _, car := range r.cars {
		cars = append(cars, car)
	}
	sort.Slice(cars, func(i, j int) bool { return cars[i].ID < cars[j].ID })
	return cars, nil
}

func (r *memoryCarRepository) FindByID(_ context.Context, id int) (*model.Car, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	car, ok := r.cars[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	c := car
	return &c, nil
}

func (r *memoryCarRepository) Create(_ context.Context, car *model.Car) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	car.ID = r.nextID
	r.nextID++
	r.cars[car.ID] = *car
	return nil
}

func (r *memoryCarRepository) Update(_ context.Context, car *model.Car) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.cars[car.ID]; !ok {
		return common.ErrNotFound
	}
	r.cars[car.ID] = *car
	return nil
}

func (r *memoryCarRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.cars[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.cars, id)
	return nil
}

func (r *memoryCarRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.cars), nil
}

type memoryContactRepository struct {
	mu       sync.RWMutex
	contacts map[int]model.Contact
	nextID   int
}

func NewMemoryContactRepository() ContactRepository {
	return &memoryContactRepository{contacts: map[int]model.Contact{}, nextID: 1}
}

func (r *memoryContactRepository) List(_ context.Context) ([]model.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	contacts := make([]model.Contact, 0, len(r.contacts))
	for _, c := range r.contacts {
		contacts = append(contacts, c)
	}
	sort.Slice(contacts, func(i, j int) bool { return contacts[i].ID < contacts[j].ID })
	return contacts, nil
}

func (r *memoryContactRepository) Create(_ context.Context, contact *model.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	contact.ID = r.nextID
	r.nextID++
	r.contacts[contact.ID] = *contact
	return nil
}

func (r *memoryContactRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.contacts[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.contacts, id)
	return nil
}

type memorySellRequestRepository struct {
	mu       sync.RWMutex
	requests map[int]model.SellRequest
	nextID   int
}

func NewMemorySellRequestRepository() SellRequestRepository {
	return &memorySellRequestRepository{requests: map[int]model.SellRequest{}, nextID: 1}
}

func (r *memorySellRequestRepository) List(_ context.Context) ([]model.SellRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	requests := make([]model.SellRequest, 0, len(r.requests))
	for _, req := range r.requests {
		requests = append(requests, req)
	}
	sort.Slice(requests, func(i, j int) bool { return requests[i].ID < requests[j].ID })
	return requests, nil
}

func (r *memorySellRequestRepository) Create(_ context.Context, request *model.SellRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	request.ID = r.nextID
	r.nextID++
	r.requests[request.ID] = *request
	return nil
}

func (r *memorySellRequestRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.requests[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.requests, id)
	return nil
}
