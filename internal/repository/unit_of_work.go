package repository

import (
	"context"

	"gorm.io/gorm"
)

// UnitOfWork scopes one atomic operation. The *gorm.DB handed to fn is the transaction and
// must be passed to every repository call made inside it; returning an error (or panicking)
// rolls everything back, returning nil commits.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type gormUnitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &gormUnitOfWork{db}
}

func (u *gormUnitOfWork) Do(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return u.db.WithContext(ctx).Transaction(fn)
}
