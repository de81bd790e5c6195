package main

import (
	"context"

	"github.com/tervahagn/landing/internal/database"
	"github.com/tervahagn/landing/internal/domain"
	"github.com/tervahagn/landing/internal/repository"
	"github.com/tervahagn/landing/internal/service"
)

// lazyLedger connects to the ledger database on the first Create, which the
// emit service only calls after the landing page has been written.
type lazyLedger struct {
	databaseURL string
	db          *database.DB
}

func (l *lazyLedger) Create(ctx context.Context, emission *domain.Emission) error {
	if l.db == nil {
		db, err := openLedger(ctx, l.databaseURL)
		if err != nil {
			return err
		}
		l.db = db
	}
	return repository.NewEmissionRepository(l.db.Pool()).Create(ctx, emission)
}

func (l *lazyLedger) Close() {
	if l != nil && l.db != nil {
		l.db.Close()
	}
}

// orNil keeps a nil *lazyLedger from becoming a non-nil service.Ledger.
func (l *lazyLedger) orNil() service.Ledger {
	if l == nil {
		return nil
	}
	return l
}
