package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go-farmpet-api/internal/model"
	"go-farmpet-api/internal/repository"
	"go-farmpet-api/internal/service"
	"go-farmpet-api/pkg/database"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var errStorageDown = errors.New("storage down")

// newTestDB opens a private in-memory database. One connection keeps every query on the
// same database and serializes transactions.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

type repos struct {
	medications repository.MedicationRepository
	clients     repository.ClientRepository
	pets        repository.PetRepository
	purchases   repository.PurchaseRepository
}

func newRepos(db *gorm.DB) repos {
	return repos{
		medications: repository.NewMedicationRepo(db),
		clients:     repository.NewClientRepo(db),
		pets:        repository.NewPetRepo(db),
		purchases:   repository.NewPurchaseRepo(db),
	}
}

type fixture struct {
	db         *gorm.DB
	repos      repos
	svc        service.PurchaseService
	purchases  repository.PurchaseRepository
	client     *model.Client
	pet        *model.Pet
	medication *model.Medication
}

// newFixture seeds one client with a pet and one medication priced 10.00 with 100 in stock.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWith(t, func(r repos) repository.PurchaseRepository { return r.purchases })
}

// newFixtureWith lets a test swap the purchase repository the service writes through.
func newFixtureWith(t *testing.T, purchases func(repos) repository.PurchaseRepository) *fixture {
	t.Helper()

	db := newTestDB(t)
	r := newRepos(db)
	f := &fixture{db: db, repos: r}

	f.client = &model.Client{Name: "Ana Souza", Address: "Rua das Flores, 120", CPF: "12345678909", Phone: "11988887777"}
	require.NoError(t, r.clients.Create(f.client))

	f.pet = &model.Pet{Name: "Thor", Species: "Cachorro", Breed: "Labrador", ClientID: f.client.ID}
	require.NoError(t, r.pets.Create(f.pet))

	f.medication = f.addMedication(t, "Amoxicilina", "10.00", 100)

	f.purchases = purchases(r)
	f.withEvents(nil)
	return f
}

// withEvents rebuilds the service so committed changes are published to events.
func (f *fixture) withEvents(events service.EventPublisher) {
	f.svc = service.NewPurchaseService(
		repository.NewUnitOfWork(f.db),
		f.purchases,
		f.repos.clients,
		f.repos.medications,
		f.repos.pets,
		events,
		zerolog.Nop(),
	)
}

func (f *fixture) addMedication(t *testing.T, name, price string, stock int) *model.Medication {
	t.Helper()
	m := &model.Medication{
		Name:        name,
		Description: name + " description",
		Price:       decimal.RequireFromString(price),
		Stock:       stock,
	}
	require.NoError(t, f.repos.medications.Create(m))
	return m
}

func (f *fixture) stock(t *testing.T, id uuid.UUID) int {
	t.Helper()
	m, err := f.repos.medications.FindByID(id)
	require.NoError(t, err)
	return m.Stock
}

func (f *fixture) purchaseCount(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(&model.Purchase{}).Count(&n).Error)
	return n
}

// request builds a PIX purchase of quantity units of the fixture medication.
func (f *fixture) request(quantity int) *service.PurchaseRequest {
	return &service.PurchaseRequest{
		ClientID:      f.client.ID,
		MedicationID:  f.medication.ID,
		Quantity:      quantity,
		PaymentMethod: model.PaymentPix,
	}
}

func (f *fixture) create(t *testing.T, req *service.PurchaseRequest) *service.PurchaseResult {
	t.Helper()
	res, err := f.svc.CreatePurchase(context.Background(), req)
	require.NoError(t, err)
	return res
}

func amount(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func intPtr(n int) *int {
	return &n
}

// recordingPublisher keeps every published payload.
type recordingPublisher struct {
	mu       sync.Mutex
	payloads []map[string]interface{}
}

func (p *recordingPublisher) Publish(payload interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payloads = append(p.payloads, payload.(map[string]interface{}))
}

func (p *recordingPublisher) all() []map[string]interface{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]map[string]interface{}(nil), p.payloads...)
}

// failingPurchases fails the selected writes and delegates everything else.
type failingPurchases struct {
	repository.PurchaseRepository
	failCreate bool
	failUpdate bool
	failDelete bool
}

func (f *failingPurchases) Create(tx *gorm.DB, purchase *model.Purchase) error {
	if f.failCreate {
		return errStorageDown
	}
	return f.PurchaseRepository.Create(tx, purchase)
}

func (f *failingPurchases) Update(tx *gorm.DB, purchase *model.Purchase) error {
	if f.failUpdate {
		return errStorageDown
	}
	return f.PurchaseRepository.Update(tx, purchase)
}

func (f *failingPurchases) Delete(tx *gorm.DB, id uuid.UUID) error {
	if f.failDelete {
		return errStorageDown
	}
	return f.PurchaseRepository.Delete(tx, id)
}
