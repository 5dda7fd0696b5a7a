package mocks

import (
	"context"
	"luxhome/infras/postgres"

	"github.com/jmoiron/sqlx"
)

type transactorImpl struct {
	BeginErr error
}

// WithTransaction implements postgres.Transactor without a database; fn receives a nil tx.
func (t *transactorImpl) WithTransaction(_ context.Context, fn func(tx *sqlx.Tx) error) error {
	if t.BeginErr != nil {
		return t.BeginErr
	}

	return fn(nil)
}

func NewTransactor() postgres.Transactor {
	return &transactorImpl{}
}

// NewFailingTransactor returns a Transactor that fails before running fn.
func NewFailingTransactor(err error) postgres.Transactor {
	return &transactorImpl{BeginErr: err}
}
