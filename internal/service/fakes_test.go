package service

import (
	"time"

	"go-stock-admin/internal/model"
	"go-stock-admin/internal/repository"
)

type fakeSource struct {
	products []model.Product
	err      error
	calls    int
}

func (f *fakeSource) FetchProducts() ([]model.Product, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

type stockCall struct {
	ProductID  string
	ColorIndex int
	Stock      int
}

type fakeGateway struct {
	calls []stockCall
	// fail rejects the call whose 1-based position matches
	fail map[int]error
	// hook runs during each UpdateStock, before the outcome is decided
	hook func()
}

func (f *fakeGateway) UpdateStock(productID string, colorIndex, stock int) error {
	f.calls = append(f.calls, stockCall{ProductID: productID, ColorIndex: colorIndex, Stock: stock})
	if f.hook != nil {
		f.hook()
	}
	if err, ok := f.fail[len(f.calls)]; ok {
		return err
	}
	return nil
}

type notice struct {
	Level   model.NoticeLevel
	Message string
}

type fakeNotifier struct {
	notices []notice
}

func (f *fakeNotifier) Notify(level model.NoticeLevel, message string) {
	f.notices = append(f.notices, notice{Level: level, Message: message})
}

type fakeChangeRepo struct {
	records []model.StockChange
}

func (f *fakeChangeRepo) Record(change *model.StockChange) error {
	f.records = append(f.records, *change)
	return nil
}

func (f *fakeChangeRepo) Recent(limit int) ([]model.StockChange, error) {
	if limit > len(f.records) {
		limit = len(f.records)
	}
	return f.records[:limit], nil
}

func (f *fakeChangeRepo) GetStockMovement(startDate, endDate time.Time) ([]repository.StockMovementData, error) {
	return nil, nil
}

// fakeClock advances only when told to.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newFakeClock() *fakeClock { return &fakeClock{now: time.Unix(1_700_000_000, 0)} }
