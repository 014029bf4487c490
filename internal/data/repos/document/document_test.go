package document

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/portside/vesselwatch-backend/internal/data/repos/testutil"
	"github.com/portside/vesselwatch-backend/internal/domain"
)

func TestDocumentRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewDocumentRepo(db, testutil.Logger(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, tx, []*domain.Document{
		{ID: uuid.New(), Name: "inspection notes", Payload: datatypes.JSON([]byte(`{"port":"Rotterdam"}`))},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(created) != 1 {
		t.Fatalf("Create: expected 1 document, got %d", len(created))
	}

	got, err := repo.GetByIDs(ctx, tx, []uuid.UUID{created[0].ID})
	if err != nil {
		t.Fatalf("GetByIDs: %v", err)
	}
	if len(got) != 1 || got[0].Name != "inspection notes" {
		t.Fatalf("GetByIDs: unexpected result: %+v", got)
	}

	created[0].Payload = datatypes.JSON([]byte(`{"port":"Antwerp"}`))
	if err := repo.Update(ctx, tx, created[0]); err != nil {
		t.Fatalf("Update: %v", err)
	}

	all, err := repo.GetAll(ctx, tx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(all) == 0 {
		t.Fatalf("GetAll: expected at least one document")
	}

	if err := repo.Delete(ctx, tx, []uuid.UUID{created[0].ID}); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got, err = repo.GetByIDs(ctx, tx, []uuid.UUID{created[0].ID})
	if err != nil {
		t.Fatalf("GetByIDs after delete: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Delete: document still present")
	}
}
