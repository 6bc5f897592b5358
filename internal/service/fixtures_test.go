package service

import (
	"context"
	"sync"
	"testing"

	"go-sales-rest/internal/model"
	"go-sales-rest/internal/repository"
	"go-sales-rest/pkg/database"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type recordedEvent struct {
	Type string
	Data interface{}
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (n *recordingNotifier) Publish(eventType string, data interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, recordedEvent{Type: eventType, Data: data})
}

func (n *recordingNotifier) types() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	types := make([]string, len(n.events))
	for i, ev := range n.events {
		types[i] = ev.Type
	}
	return types
}

type fixture struct {
	db          *gorm.DB
	productRepo repository.ProductRepository
	clientRepo  repository.ClientRepository
	saleRepo    repository.SaleRepository
	notifier    *recordingNotifier
	sales       SaleService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := database.NewTestDB(t)
	f := &fixture{
		db:          db,
		productRepo: repository.NewProductRepo(db),
		clientRepo:  repository.NewClientRepo(db),
		saleRepo:    repository.NewSaleRepo(db),
		notifier:    &recordingNotifier{},
	}
	f.sales = NewSaleService(f.productRepo, f.clientRepo, f.saleRepo, db, f.notifier)
	return f
}

func (f *fixture) product(t *testing.T, name, price string, stock int) *model.Product {
	t.Helper()
	p := &model.Product{Name: name, Price: decimal.RequireFromString(price), Stock: stock}
	require.NoError(t, f.productRepo.Create(context.Background(), p))
	return p
}

func (f *fixture) client(t *testing.T, email string) *model.Client {
	t.Helper()
	c := &model.Client{
		Name:       "Ana",
		Surname:    "Lopez",
		Email:      email,
		Phone:      "600000000",
		Address:    "Calle Mayor 1",
		PayMethods: []model.ClientPayMethod{{PayMethodID: 1}, {PayMethodID: 3}},
	}
	require.NoError(t, f.clientRepo.Create(context.Background(), c))
	return c
}

func (f *fixture) stock(t *testing.T, id uint) int {
	t.Helper()
	p, err := f.productRepo.FindByID(context.Background(), id)
	require.NoError(t, err)
	return p.Stock
}

func (f *fixture) saleCount(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(&model.Sale{}).Count(&n).Error)
	return n
}
