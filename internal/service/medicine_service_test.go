package service

import (
	"testing"

	"go-pharmacy-pos/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMedicine_AssignsIncreasingIDs(t *testing.T) {
	f := newFixture(t)

	a := f.addMedicine(t, "A", 1, 0, "1.00")
	b := f.addMedicine(t, "B", 1, 0, "1.00")
	require.NoError(t, f.medicines.DeleteMedicine(b.ID))
	c := f.addMedicine(t, "C", 1, 0, "1.00")

	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID)
	assert.Equal(t, 3, c.ID, "ids are never reused")
	assert.Equal(t, testNow, c.CreatedAt)
	assert.Len(t, f.publisher.ofType(EventMedicineCreated), 3)
}

func TestCreateMedicine_Defaults(t *testing.T) {
	f := newFixture(t)

	m, err := f.medicines.CreateMedicine(&CreateMedicineRequest{
		Name:          "Amoxicillin",
		Category:      "Antibiotic",
		Manufacturer:  "MediCorp",
		BatchNumber:   "AM1",
		ExpiryDate:    "2027-01-01",
		PurchasePrice: dec("0"),
		SellingPrice:  dec("4.10"),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, m.Quantity)
	assert.Equal(t, model.DefaultMinimumStock, m.MinimumStock)
}

func TestCreateMedicine_NegativeQuantityRejected(t *testing.T) {
	f := newFixture(t)

	_, err := f.medicines.CreateMedicine(&CreateMedicineRequest{
		Name:          "Bad",
		Category:      "x",
		Manufacturer:  "x",
		BatchNumber:   "x",
		ExpiryDate:    "2027-01-01",
		Quantity:      intPtr(-4),
		PurchasePrice: dec("1"),
		SellingPrice:  dec("1"),
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Details, 1)
	assert.Equal(t, "quantity", verr.Details[0].Field)

	all, err := f.medicines.GetAllMedicines()
	require.NoError(t, err)
	assert.Empty(t, all)

	m := f.addMedicine(t, "Good", 1, 0, "1.00")
	assert.Equal(t, 1, m.ID, "rejected create must not consume an id")
}

func TestCreateMedicine_MissingRequiredFields(t *testing.T) {
	f := newFixture(t)

	_, err := f.medicines.CreateMedicine(&CreateMedicineRequest{ExpiryDate: "not-a-date"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	fields := map[string]string{}
	for _, d := range verr.Details {
		fields[d.Field] = d.Tag
	}
	assert.Equal(t, "required", fields["name"])
	assert.Equal(t, "required", fields["category"])
	assert.Equal(t, "date", fields["expiryDate"])
	assert.Equal(t, "required", fields["sellingPrice"])
	assert.Equal(t, "required", fields["purchasePrice"])
}

func TestSearchMedicines(t *testing.T) {
	f := newFixture(t)
	_, err := f.medicines.CreateMedicine(&CreateMedicineRequest{
		Name:          "Paracetamol 500mg",
		GenericName:   strPtr("Acetaminophen"),
		Category:      "Pain Relief",
		Manufacturer:  "Generic Pharma",
		BatchNumber:   "PC1",
		ExpiryDate:    "2027-12-31",
		PurchasePrice: dec("1.50"),
		SellingPrice:  dec("2.50"),
	})
	require.NoError(t, err)
	f.addMedicine(t, "Cetirizine", 1, 0, "1.00")

	for _, q := range []string{"PARA", "acetamin", "relief", "generic", "cet"} {
		got, err := f.medicines.SearchMedicines(q)
		require.NoError(t, err, q)
		assert.NotEmpty(t, got, q)
	}

	got, err := f.medicines.SearchMedicines("cetam")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Paracetamol 500mg", got[0].Name)

	got, err = f.medicines.SearchMedicines("zzz")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = f.medicines.SearchMedicines("")
	assert.ErrorIs(t, err, ErrEmptyQuery)
	_, err = f.medicines.SearchMedicines("   ")
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestGetLowStockMedicines_InclusiveThreshold(t *testing.T) {
	f := newFixture(t)
	below := f.addMedicine(t, "Below", 4, 5, "1.00")
	at := f.addMedicine(t, "At", 5, 5, "1.00")
	f.addMedicine(t, "Above", 6, 5, "1.00")

	low, err := f.medicines.GetLowStockMedicines()
	require.NoError(t, err)

	ids := []int{}
	for _, m := range low {
		ids = append(ids, m.ID)
	}
	assert.ElementsMatch(t, []int{below.ID, at.ID}, ids)
}

func TestUpdateMedicine(t *testing.T) {
	f := newFixture(t)
	m := f.addMedicine(t, "A", 100, 10, "1.00")

	updated, err := f.medicines.UpdateMedicine(m.ID, &model.MedicinePatch{
		SellingPrice: dec("1.75"),
		Quantity:     intPtr(3),
	})
	require.NoError(t, err)
	assert.Equal(t, "A", updated.Name)
	assert.Equal(t, 3, updated.Quantity)
	requireDecimal(t, "1.75", updated.SellingPrice)
	assert.Equal(t, m.CreatedAt, updated.CreatedAt)
	assert.Len(t, f.publisher.ofType(EventLowStock), 1)

	_, err = f.medicines.UpdateMedicine(999, &model.MedicinePatch{Name: strPtr("x")})
	assert.ErrorIs(t, err, ErrMedicineNotFound)

	_, err = f.medicines.UpdateMedicine(m.ID, &model.MedicinePatch{Quantity: intPtr(-1)})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestDeleteMedicine(t *testing.T) {
	f := newFixture(t)
	m := f.addMedicine(t, "A", 1, 0, "1.00")

	require.NoError(t, f.medicines.DeleteMedicine(m.ID))
	_, err := f.medicines.GetMedicine(m.ID)
	assert.ErrorIs(t, err, ErrMedicineNotFound)
	assert.ErrorIs(t, f.medicines.DeleteMedicine(m.ID), ErrMedicineNotFound)
}
