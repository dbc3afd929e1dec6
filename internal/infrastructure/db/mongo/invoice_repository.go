package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/freelancehub/dashboard/internal/core/domain"
)

type InvoiceRepository struct {
	col *mongo.Collection
}

func NewInvoiceRepository(db *mongo.Database) *InvoiceRepository {
	return &InvoiceRepository{col: db.Collection(collectionInvoices)}
}

func (r *InvoiceRepository) List(ctx context.Context) ([]domain.Invoice, error) {
	return findAll[domain.Invoice](ctx, r.col)
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *domain.Invoice) error {
	doc := *inv
	doc.ID = newID()
	if err := insert(ctx, r.col, doc); err != nil {
		return err
	}
	inv.ID = doc.ID
	return nil
}
