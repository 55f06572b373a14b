package seed

import (
	"io"
	"log/slog"
	"testing"

	"go-pharmacy-pos/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepos() Repos {
	store := repository.NewStore()
	return Repos{
		Medicines: repository.NewMedicineRepo(store),
		Customers: repository.NewCustomerRepo(store),
		Suppliers: repository.NewSupplierRepo(store),
	}
}

func TestLoad(t *testing.T) {
	r := newRepos()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, Load(r, log))

	suppliers, err := r.Suppliers.FindAll()
	require.NoError(t, err)
	require.Len(t, suppliers, 2)
	assert.Equal(t, "PharmaCorp Ltd", suppliers[0].Name)

	medicines, err := r.Medicines.FindAll()
	require.NoError(t, err)
	require.Len(t, medicines, 2)
	assert.Equal(t, "Paracetamol 500mg", medicines[0].Name)
	assert.Equal(t, 8, medicines[0].Quantity)
	require.NotNil(t, medicines[0].SupplierID)
	assert.Equal(t, suppliers[0].ID, *medicines[0].SupplierID)

	// both seeded medicines start below their thresholds
	low, err := r.Medicines.FindLowStock()
	require.NoError(t, err)
	assert.Len(t, low, 2)

	customers, err := r.Customers.FindAll()
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Sarah Johnson", customers[0].Name)

	// second run is a no-op
	require.NoError(t, Load(r, log))
	medicines, err = r.Medicines.FindAll()
	require.NoError(t, err)
	assert.Len(t, medicines, 2)
}
