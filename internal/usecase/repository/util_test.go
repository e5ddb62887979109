package repository

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

type txLayer uint

const (
	none txLayer = iota
	extract
)

type errLayer uint

const (
	null errLayer = iota
	db
	scan
	f
	beginTx
	commitTx
	rollBackTx
	noRows
)

var (
	errInternal = errors.New("internal error")
	testTime    = time.Date(2024, time.March, 3, 10, 0, 0, 0, time.UTC)
)

func insertTxInMock(ctx context.Context, mock pgxmock.PgxPoolIface) context.Context {
	mock.ExpectBegin()
	tx, _ := mock.Begin(ctx)
	ctx = context.WithValue(ctx, txInjector{}, tx)
	return ctx
}

func newMockRepository(t *testing.T) (pgxmock.PgxPoolIface, *postgresRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, New(nil, mock)
}

// intArg matches a bound integer argument by value whatever its Go integer
// type, since the query builder decides how LIMIT and OFFSET are bound.
type intArg int64

func (a intArg) Match(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == int64(a)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return a >= 0 && rv.Uint() == uint64(a)
	default:
		return false
	}
}
