package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/trees-microservice/internal/domain/repository"
	"github.com/trees-microservice/internal/repository/postgres"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewTreeRepositoryForTest creates a tree repository with test database and logger
func NewTreeRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.TreeRepository {
	return postgres.NewTreeRepository(NewDBForTest(db, logger))
}
