package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/zumerkk/atlasderslik-sub000/internal/adapter/storage"
	"github.com/zumerkk/atlasderslik-sub000/internal/core/domain"
	"github.com/zumerkk/atlasderslik-sub000/internal/core/port"
)

var orderColumns = []string{
	"id", "user_id", "package_id", "amount", "status",
	"gateway_session_token", "gateway_transaction_id",
	"failure_reason", "completed_at", "created_at",
}

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	statement := r.db.QueryBuilder.Insert("orders").
		Columns("id", "user_id", "package_id", "amount", "status", "created_at").
		Values(order.ID, order.UserID, order.PackageID, order.Amount, order.Status, order.CreatedAt)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return order, nil
}

func (r *Repository) ReadOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	return r.readOne(ctx, sq.Eq{"id": orderID})
}

func (r *Repository) ReadOrderByToken(ctx context.Context, token string) (*domain.Order, error) {
	return r.readOne(ctx, sq.Eq{"gateway_session_token": token})
}

func (r *Repository) readOne(ctx context.Context, pred any) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(pred)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order, err := scanOrder(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *Repository) ListOrdersByUser(ctx context.Context, userID string) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, order)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) ReadLatestCompletedByUser(ctx context.Context, userID string) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"user_id": userID, "status": domain.OrderStatusCompleted}).
		OrderBy("completed_at DESC").
		Limit(1)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order, err := scanOrder(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return order, nil
}

// AttachSessionToken writes the token on a PENDING order that has none yet.
// The partial unique index on gateway_session_token keeps one token bound to
// at most one order.
func (r *Repository) AttachSessionToken(ctx context.Context, orderID string, token string) error {
	statement := r.db.QueryBuilder.Update("orders").
		Set("gateway_session_token", token).
		Where(sq.Eq{
			"id":                    orderID,
			"status":                domain.OrderStatusPending,
			"gateway_session_token": nil,
		})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrConflictingData
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}

// ApplyTerminalTransition is the single write path for status. One
// conditional UPDATE keyed on the current status, so concurrent callers race
// on the row and exactly one of them wins.
func (r *Repository) ApplyTerminalTransition(ctx context.Context, orderID string,
	from domain.OrderStatus, to domain.OrderStatus, fields port.TerminalFields) (bool, error) {
	statement := r.db.QueryBuilder.Update("orders").
		Set("status", to).
		Where(sq.Eq{"id": orderID, "status": from})

	if fields.GatewayTransactionID != "" {
		statement = statement.Set("gateway_transaction_id", fields.GatewayTransactionID)
	}
	if fields.FailureReason != "" {
		statement = statement.Set("failure_reason", fields.FailureReason)
	}
	if fields.CompletedAt != nil {
		statement = statement.Set("completed_at", *fields.CompletedAt)
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return false, err
	}

	tag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	order := domain.Order{}
	var token, txnID, reason *string

	err := row.Scan(
		&order.ID,
		&order.UserID,
		&order.PackageID,
		&order.Amount,
		&order.Status,
		&token,
		&txnID,
		&reason,
		&order.CompletedAt,
		&order.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if token != nil {
		order.GatewaySessionToken = *token
	}
	if txnID != nil {
		order.GatewayTransactionID = *txnID
	}
	if reason != nil {
		order.FailureReason = *reason
	}
	return &order, nil
}
