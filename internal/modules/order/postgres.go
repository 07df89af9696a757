package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates the Postgres-backed order store. The orders
// table is keyed by checkout_session_id with a unique constraint, which is
// what makes the webhook upsert safe under duplicate delivery.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const selectSQL = `
	SELECT id, checkout_session_id, status, payment_status,
	       amount_subtotal, amount_tax, amount_shipping, amount_total,
	       currency, items, customer_details, created_at, updated_at
	FROM orders`

func (r *postgresRepo) UpsertBySessionID(ctx context.Context, o *Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return err
	}
	customer, err := json.Marshal(o.CustomerDetails)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO orders
		  (id, checkout_session_id, status, payment_status,
		   amount_subtotal, amount_tax, amount_shipping, amount_total,
		   currency, items, customer_details)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		ON CONFLICT (checkout_session_id) DO UPDATE
		SET payment_status=EXCLUDED.payment_status,
		    amount_subtotal=EXCLUDED.amount_subtotal,
		    amount_tax=EXCLUDED.amount_tax,
		    amount_shipping=EXCLUDED.amount_shipping,
		    amount_total=EXCLUDED.amount_total,
		    currency=EXCLUDED.currency,
		    items=EXCLUDED.items,
		    customer_details=EXCLUDED.customer_details,
		    updated_at=NOW()`,
		o.ID, o.CheckoutSessionID, o.Status, o.PaymentStatus,
		o.AmountSubtotal, o.AmountTax, o.AmountShipping, o.AmountTotal,
		o.Currency, items, customer)
	return err
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Order, error) {
	return scanOrder(r.db.QueryRowContext(ctx, selectSQL+" WHERE id=$1", id))
}

func (r *postgresRepo) GetBySessionID(ctx context.Context, sessionID string) (*Order, error) {
	return scanOrder(r.db.QueryRowContext(ctx, selectSQL+" WHERE checkout_session_id=$1", sessionID))
}

func (r *postgresRepo) List(ctx context.Context) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, selectSQL+" ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []*Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id string, status OrderStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status=$1, updated_at=$2 WHERE id=$3`,
		status, time.Now(), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface{ Scan(dest ...interface{}) error }

func scanOrder(row rowScanner) (*Order, error) {
	o := &Order{}
	var items, customer []byte
	err := row.Scan(
		&o.ID, &o.CheckoutSessionID, &o.Status, &o.PaymentStatus,
		&o.AmountSubtotal, &o.AmountTax, &o.AmountShipping, &o.AmountTotal,
		&o.Currency, &items, &customer, &o.CreatedAt, &o.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		_ = json.Unmarshal(items, &o.Items)
	}
	if len(customer) > 0 {
		_ = json.Unmarshal(customer, &o.CustomerDetails)
	}
	return o, nil
}
