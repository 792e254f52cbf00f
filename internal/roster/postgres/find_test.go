package postgres

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"reflect"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/rosterbalance/internal/roster"
)

var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.vals) {
		return errors.New("column count mismatch")
	}
	for i, d := range dest {
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(r.vals[i]))
	}
	return nil
}

type call struct {
	sql  string
	args []any
}

// fakeTx answers QueryRow from rows in order.
type fakeTx struct {
	pgx.Tx
	rows       []fakeRow
	calls      []call
	rolledBack bool
}

func (tx *fakeTx) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	tx.calls = append(tx.calls, call{sql: sql, args: args})
	row := tx.rows[0]
	tx.rows = tx.rows[1:]
	return row
}

func (tx *fakeTx) Rollback(context.Context) error {
	tx.rolledBack = true
	return nil
}

type fakeDB struct {
	tx       *fakeTx
	beginErr error
	opts     pgx.TxOptions
	row      fakeRow
	calls    []call
}

func (db *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	db.calls = append(db.calls, call{sql: sql, args: args})
	return db.row
}

func (db *fakeDB) SendBatch(context.Context, *pgx.Batch) pgx.BatchResults {
	panic("unexpected batch")
}

func (db *fakeDB) BeginTx(_ context.Context, opts pgx.TxOptions) (pgx.Tx, error) {
	db.opts = opts
	if db.beginErr != nil {
		return nil, db.beginErr
	}
	return db.tx, nil
}

func TestFind_RandomUsesOneSnapshot(t *testing.T) {
	tx := &fakeTx{rows: []fakeRow{
		{vals: []any{5}},
		{vals: []any{int64(9), "Nine", 50.0, false, true}},
	}}
	db := &fakeDB{tx: tx}
	p := newProvider(db, quietLogger)

	want := rand.New(rand.NewPCG(3, 3)).IntN(5)
	pl, ok, err := p.Find(t.Context(), roster.Query{
		Ranking: roster.Comparison{Op: roster.Equal, Value: 50},
		Order:   roster.Random,
		Rand:    rand.New(rand.NewPCG(3, 3)),
	})
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, roster.Player{ID: 9, FullName: "Nine", Ranking: 50, CanPlayGoalie: true}, pl)

	require.Equal(t, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, db.opts)
	require.Empty(t, db.calls, "random lookups must not run outside the transaction")
	require.True(t, tx.rolledBack)

	require.Len(t, tx.calls, 2)
	require.Contains(t, tx.calls[0].sql, "SELECT count(*) FROM users WHERE")
	require.Contains(t, tx.calls[1].sql, "ORDER BY id OFFSET $3 LIMIT 1")
	require.Equal(t, tx.calls[0].args, tx.calls[1].args[:2])
	require.Equal(t, want, tx.calls[1].args[2])
}

func TestFind_RandomNoCandidates(t *testing.T) {
	tx := &fakeTx{rows: []fakeRow{{vals: []any{0}}}}
	db := &fakeDB{tx: tx}
	p := newProvider(db, quietLogger)

	_, ok, err := p.Find(t.Context(), roster.Query{Order: roster.Random, Rand: rand.New(rand.NewPCG(1, 1))})
	require.NoError(t, err)
	require.False(t, ok)
	require.Len(t, tx.calls, 1)
	require.True(t, tx.rolledBack)
}

func TestFind_RandomBeginFails(t *testing.T) {
	boom := errors.New("too many connections")
	p := newProvider(&fakeDB{beginErr: boom}, quietLogger)

	_, _, err := p.Find(t.Context(), roster.Query{Order: roster.Random, Rand: rand.New(rand.NewPCG(1, 1))})
	require.ErrorIs(t, err, boom)
	require.ErrorContains(t, err, "begin snapshot")
}

func TestFind_RandomRequiresRand(t *testing.T) {
	p := newProvider(&fakeDB{}, quietLogger)

	_, _, err := p.Find(t.Context(), roster.Query{Order: roster.Random})
	require.ErrorIs(t, err, roster.ErrRandRequired)
}

func TestFind_OrderedSkipsTransaction(t *testing.T) {
	db := &fakeDB{row: fakeRow{err: pgx.ErrNoRows}}
	p := newProvider(db, quietLogger)

	_, ok, err := p.Find(t.Context(), roster.Query{
		Ranking: roster.Comparison{Op: roster.Below, Value: 50},
		Order:   roster.RankingDesc,
	})
	require.NoError(t, err)
	require.False(t, ok)
	require.Zero(t, db.opts)
	require.Len(t, db.calls, 1)
	require.Contains(t, db.calls[0].sql, "ORDER BY ranking DESC, id ASC LIMIT 1")
}
