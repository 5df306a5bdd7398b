package repositoryImp

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/gorm"

	"seedlib/database"
	"seedlib/entities"
	"seedlib/pkg/inventory/repository"
	seedRepoImp "seedlib/pkg/seed/repositoryImp"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	return db
}

func makeSeed(t *testing.T, db *gorm.DB, name string) uint {
	t.Helper()
	id, err := seedRepoImp.New(db).Create(&entities.Seed{Type: "Herb", Name: name})
	if err != nil {
		t.Fatalf("create seed: %v", err)
	}
	return id
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestGetOrCreateCreatesOnce(t *testing.T) {
	db := testDB(t)
	repo := New(db)
	seedID := makeSeed(t, db, "Basil")

	first, err := repo.GetOrCreate(seedID)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	if first.SeedID != seedID || first.CurrentAmount != "" || first.BuyMore || first.Extra {
		t.Errorf("fresh inventory wrong: %+v", first)
	}
	if first.SeedName == nil || *first.SeedName != "Basil" {
		t.Errorf("seed name not joined: %v", first.SeedName)
	}

	second, err := repo.GetOrCreate(seedID)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("second call created a new row: %d vs %d", second.ID, first.ID)
	}

	var count int64
	db.Model(&entities.Inventory{}).Where("seed_id = ?", seedID).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 inventory row, got %d", count)
	}
}

func TestGetOrCreateMissingSeed(t *testing.T) {
	repo := New(testDB(t))
	_, err := repo.GetOrCreate(999)
	if !errors.Is(err, repository.ErrSeedNotFound) {
		t.Fatalf("got %v, want ErrSeedNotFound", err)
	}
}

func TestUpdateKeyedBySeedID(t *testing.T) {
	db := testDB(t)
	repo := New(db)
	seedID := makeSeed(t, db, "Basil")
	before, _ := repo.GetOrCreate(seedID)

	ok, err := repo.Update(seedID, repository.InventoryPatch{
		CurrentAmount: strPtr("50 packets"),
		BuyMore:       boolPtr(true),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !ok {
		t.Fatal("update should succeed")
	}

	after, _ := repo.GetOrCreate(seedID)
	if after.CurrentAmount != "50 packets" || !after.BuyMore {
		t.Errorf("patch not applied: %+v", after)
	}
	if !after.LastUpdated.Time.After(before.LastUpdated.Time) && !after.LastUpdated.Time.Equal(before.LastUpdated.Time) {
		t.Error("last_updated went backwards")
	}
}

func TestUpdateEmptyPatchAndMissingRow(t *testing.T) {
	db := testDB(t)
	repo := New(db)
	seedID := makeSeed(t, db, "Basil")
	repo.GetOrCreate(seedID)

	if ok, err := repo.Update(seedID, repository.InventoryPatch{}); err != nil || ok {
		t.Errorf("empty patch: ok=%v err=%v", ok, err)
	}
	if ok, err := repo.Update(999, repository.InventoryPatch{Notes: strPtr("x")}); err != nil || ok {
		t.Errorf("missing row: ok=%v err=%v", ok, err)
	}
}

func TestGetAllOrderedBySeedName(t *testing.T) {
	db := testDB(t)
	repo := New(db)
	zinnia := makeSeed(t, db, "Zinnia")
	basil := makeSeed(t, db, "Basil")
	repo.GetOrCreate(zinnia)
	repo.GetOrCreate(basil)

	items, err := repo.GetAll()
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if *items[0].SeedName != "Basil" || *items[1].SeedName != "Zinnia" {
		t.Errorf("wrong order: %s, %s", *items[0].SeedName, *items[1].SeedName)
	}
}

func TestAdjustmentsNewestFirstAndFiltered(t *testing.T) {
	db := testDB(t)
	repo := New(db)
	basil := makeSeed(t, db, "Basil")
	zinnia := makeSeed(t, db, "Zinnia")

	older := entities.NewDateTime(time.Now().Add(-2 * time.Hour))
	newer := entities.NewDateTime(time.Now().Add(-time.Hour))
	if _, err := repo.CreateAdjustment(&entities.InventoryAdjustment{
		SeedID: basil, AdjustmentType: "Addition", AmountChange: "+2 packets", AdjustedAt: older,
	}); err != nil {
		t.Fatalf("create adjustment: %v", err)
	}
	if _, err := repo.CreateAdjustment(&entities.InventoryAdjustment{
		SeedID: basil, AdjustmentType: "Manual Update", AmountChange: "From '2' to '1'", AdjustedAt: newer,
	}); err != nil {
		t.Fatalf("create adjustment: %v", err)
	}
	if _, err := repo.CreateAdjustment(&entities.InventoryAdjustment{
		SeedID: zinnia, AdjustmentType: "Addition", AmountChange: "+1 packet",
	}); err != nil {
		t.Fatalf("create adjustment: %v", err)
	}

	all, err := repo.GetAdjustments(0)
	if err != nil {
		t.Fatalf("get all adjustments: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 adjustments, got %d", len(all))
	}

	basilOnly, err := repo.GetAdjustments(basil)
	if err != nil {
		t.Fatalf("filtered adjustments: %v", err)
	}
	if len(basilOnly) != 2 {
		t.Fatalf("expected 2 adjustments for basil, got %d", len(basilOnly))
	}
	if basilOnly[0].AdjustmentType != "Manual Update" {
		t.Errorf("wrong order, first is %s", basilOnly[0].AdjustmentType)
	}
	if basilOnly[0].SeedName == nil || *basilOnly[0].SeedName != "Basil" {
		t.Errorf("seed name not joined: %v", basilOnly[0].SeedName)
	}
}

func TestCreateAdjustmentMissingSeed(t *testing.T) {
	repo := New(testDB(t))
	_, err := repo.CreateAdjustment(&entities.InventoryAdjustment{
		SeedID: 42, AdjustmentType: "Addition",
	})
	if !errors.Is(err, repository.ErrSeedNotFound) {
		t.Fatalf("got %v, want ErrSeedNotFound", err)
	}
}
