package albums

import "context"

// System defines the album pipeline operations.
// Create coordinates PDF generation and the row insert in that fixed order;
// the remaining operations are single-step queries.
type System interface {
	List(ctx context.Context) ([]Album, error)
	Find(ctx context.Context, id int64) (*Album, error)
	Create(ctx context.Context, cmd CreateCommand) (*Album, error)
	Update(ctx context.Context, id int64, cmd UpdateCommand) (*Album, error)
	Delete(ctx context.Context, id int64) error

	// ResolvePDF returns the on-disk path of the album's document, checking
	// existence lazily at fetch time.
	ResolvePDF(ctx context.Context, id int64) (string, error)
}
