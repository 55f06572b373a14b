package service

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"go-pharmacy-pos/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSale_ConcurrentSalesNeverOversell(t *testing.T) {
	f := newFixture(t)
	m := f.addMedicine(t, "A", 40, 0, "1.00")

	var (
		wg       sync.WaitGroup
		ok, fail atomic.Int32
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.sales.CreateSale(&CreateSaleRequest{
				CustomerName:  "x",
				PaymentMethod: model.PaymentCash,
				Items:         []CreateSaleItemRequest{{MedicineID: m.ID, Quantity: 1}},
			})
			switch {
			case err == nil:
				ok.Add(1)
			case errors.Is(err, ErrInsufficientStock):
				fail.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(40), ok.Load())
	assert.Equal(t, int32(10), fail.Load())

	got, err := f.medicines.GetMedicine(m.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Quantity)
}
