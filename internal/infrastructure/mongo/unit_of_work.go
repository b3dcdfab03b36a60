package mongo

import (
	"context"
	"fmt"
	"sync"

	"planora/internal/domain/repository"

	"go.mongodb.org/mongo-driver/mongo"
)

// UnitOfWork implements the Unit of Work pattern for MongoDB
type UnitOfWork struct {
	client        *mongo.Client
	database      *mongo.Database
	session       mongo.Session
	mutex         sync.Mutex
	inTransaction bool

	userRepo        repository.UserRepository
	clientRepo      repository.ClientRepository
	itemRepo        repository.ItemRepository
	eventRepo       repository.EventRepository
	bookingRepo     repository.BookingRepository
	serviceTypeRepo repository.ServiceTypeRepository
}

// NewUnitOfWork creates a new MongoDB unit of work
func NewUnitOfWork(client *mongo.Client, database *mongo.Database) *UnitOfWork {
	return &UnitOfWork{
		client:   client,
		database: database,
	}
}

// Begin starts a new transaction
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	uow.mutex.Lock()
	defer uow.mutex.Unlock()

	if uow.inTransaction {
		return fmt.Errorf("unit of work is already in transaction")
	}

	session, err := uow.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	if err := session.StartTransaction(); err != nil {
		session.EndSession(ctx)
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	uow.session = session
	uow.inTransaction = true
	uow.setTransactionForRepositories()

	return nil
}

// Commit commits the current transaction
func (uow *UnitOfWork) Commit(ctx context.Context) error {
	uow.mutex.Lock()
	defer uow.mutex.Unlock()

	if !uow.inTransaction {
		return fmt.Errorf("no active transaction to commit")
	}

	if err := uow.session.CommitTransaction(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	uow.endTransaction(ctx)
	return nil
}

// Rollback rolls back the current transaction
func (uow *UnitOfWork) Rollback(ctx context.Context) error {
	uow.mutex.Lock()
	defer uow.mutex.Unlock()

	if !uow.inTransaction {
		return fmt.Errorf("no active transaction to rollback")
	}

	if err := uow.session.AbortTransaction(ctx); err != nil {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	uow.endTransaction(ctx)
	return nil
}

// Close releases the session
func (uow *UnitOfWork) Close() error {
	uow.mutex.Lock()
	defer uow.mutex.Unlock()

	if uow.session != nil {
		uow.session.EndSession(context.Background())
		uow.session = nil
	}
	uow.inTransaction = false
	return nil
}

// IsInTransaction reports whether a transaction is active
func (uow *UnitOfWork) IsInTransaction() bool {
	uow.mutex.Lock()
	defer uow.mutex.Unlock()
	return uow.inTransaction
}

// UserRepository returns the user repository bound to this unit of work
func (uow *UnitOfWork) UserRepository() repository.UserRepository {
	uow.mutex.Lock()
	defer uow.mutex.Unlock()

	if uow.userRepo == nil {
		uow.userRepo = NewUserRepository(uow.database)
		uow.bindTransaction(uow.userRepo)
	}
	return uow.userRepo
}

// ClientRepository returns the client repository bound to this unit of work
func (uow *UnitOfWork) ClientRepository() repository.ClientRepository {
	uow.mutex.Lock()
	defer uow.mutex.Unlock()

	if uow.clientRepo == nil {
		uow.clientRepo = NewClientRepository(uow.database)
		uow.bindTransaction(uow.clientRepo)
	}
	return uow.clientRepo
}

// ItemRepository returns the item repository bound to this unit of work
func (uow *UnitOfWork) ItemRepository() repository.ItemRepository {
	uow.mutex.Lock()
	defer uow.mutex.Unlock()

	if uow.itemRepo == nil {
		uow.itemRepo = NewItemRepository(uow.database)
		uow.bindTransaction(uow.itemRepo)
	}
	return uow.itemRepo
}

// EventRepository returns the event repository bound to this unit of work
func (uow *UnitOfWork) EventRepository() repository.EventRepository {
	uow.mutex.Lock()
	defer uow.mutex.Unlock()

	if uow.eventRepo == nil {
		uow.eventRepo = NewEventRepository(uow.database)
		uow.bindTransaction(uow.eventRepo)
	}
	return uow.eventRepo
}

// BookingRepository returns the booking repository bound to this unit of work
func (uow *UnitOfWork) BookingRepository() repository.BookingRepository {
	uow.mutex.Lock()
	defer uow.mutex.Unlock()

	if uow.bookingRepo == nil {
		uow.bookingRepo = NewBookingRepository(uow.database)
		uow.bindTransaction(uow.bookingRepo)
	}
	return uow.bookingRepo
}

// ServiceTypeRepository returns the service type repository bound to this unit of work
func (uow *UnitOfWork) ServiceTypeRepository() repository.ServiceTypeRepository {
	uow.mutex.Lock()
	defer uow.mutex.Unlock()

	if uow.serviceTypeRepo == nil {
		uow.serviceTypeRepo = NewServiceTypeRepository(uow.database)
		uow.bindTransaction(uow.serviceTypeRepo)
	}
	return uow.serviceTypeRepo
}

func (uow *UnitOfWork) bindTransaction(repo interface{}) {
	if !uow.inTransaction {
		return
	}
	if transactional, ok := repo.(repository.TransactionalRepository); ok {
		transactional.SetTransaction(uow.session)
	}
}

func (uow *UnitOfWork) setTransactionForRepositories() {
	for _, repo := range []interface{}{
		uow.userRepo, uow.clientRepo, uow.itemRepo,
		uow.eventRepo, uow.bookingRepo, uow.serviceTypeRepo,
	} {
		if repo == nil {
			continue
		}
		if transactional, ok := repo.(repository.TransactionalRepository); ok {
			transactional.SetTransaction(uow.session)
		}
	}
}

func (uow *UnitOfWork) endTransaction(ctx context.Context) {
	uow.session.EndSession(ctx)
	uow.session = nil
	uow.inTransaction = false
}

// UnitOfWorkFactory creates MongoDB units of work
type UnitOfWorkFactory struct {
	client   *mongo.Client
	database *mongo.Database
}

// NewUnitOfWorkFactory creates a new unit of work factory
func NewUnitOfWorkFactory(client *mongo.Client, database *mongo.Database) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{
		client:   client,
		database: database,
	}
}

// CreateUnitOfWork creates a new unit of work instance
func (f *UnitOfWorkFactory) CreateUnitOfWork() repository.UnitOfWork {
	return NewUnitOfWork(f.client, f.database)
}
