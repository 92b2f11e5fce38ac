package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/zumerkk/atlasderslik-sub000/internal/adapter/storage"
	"github.com/zumerkk/atlasderslik-sub000/internal/core/domain"
)

// ReferenceData serves the read-only collaborator ports over the platform's
// packages and users tables. The payment subsystem never writes these.
type ReferenceData struct {
	db *storage.DB
}

func NewReferenceData(db *storage.DB) (*ReferenceData, error) {
	return &ReferenceData{db: db}, nil
}

func (rd *ReferenceData) ReadPackage(ctx context.Context, packageID string) (*domain.Package, error) {
	statement := rd.db.QueryBuilder.
		Select("id", "name", "price", "purchasable").
		From("packages").
		Where(sq.Eq{"id": packageID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	pkg := domain.Package{}
	err = rd.db.QueryRow(ctx, sql, args...).Scan(
		&pkg.ID,
		&pkg.Name,
		&pkg.Price,
		&pkg.Purchasable,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &pkg, nil
}

func (rd *ReferenceData) ReadUser(ctx context.Context, userID string) (*domain.User, error) {
	statement := rd.db.QueryBuilder.
		Select("id", "first_name", "last_name", "email",
			"phone", "address", "city", "identity_number").
		From("users").
		Where(sq.Eq{"id": userID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	user := domain.User{}
	var phone, address, city, identity *string

	err = rd.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&phone,
		&address,
		&city,
		&identity,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	if phone != nil {
		user.Phone = *phone
	}
	if address != nil {
		user.Address = *address
	}
	if city != nil {
		user.City = *city
	}
	if identity != nil {
		user.IdentityNumber = *identity
	}

	return &user, nil
}
