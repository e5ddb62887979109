package repository

import (
	"errors"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const (
	ErrForeignKeyViolation = "23503"
	ErrUniqueViolation     = "23505"

	dialectPostgres = "postgres"
)

var (
	_ BooksRepository    = (*postgresRepository)(nil)
	_ RequestsRepository = (*postgresRepository)(nil)
	_ WishesRepository   = (*postgresRepository)(nil)
)

type postgresRepository struct {
	logger  *zap.Logger
	db      DataBase
	dialect goqu.DialectWrapper
}

func New(logger *zap.Logger, db DataBase) *postgresRepository {
	return &postgresRepository{
		logger:  logger,
		db:      db,
		dialect: goqu.Dialect(dialectPostgres),
	}
}

// pgErrorCode returns the SQLSTATE and constraint of a Postgres error, if err is one.
func pgErrorCode(err error) (code, constraint string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}
	return "", ""
}
