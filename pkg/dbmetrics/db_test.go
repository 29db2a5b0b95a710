package dbmetrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperation(t *testing.T) {
	assert.Equal(t, "select", operation("SELECT id FROM jam_schedules"))
	assert.Equal(t, "insert", operation("  INSERT INTO jam_schedules (a) VALUES ($1)"))
	assert.Equal(t, "delete", operation("DELETE\nFROM jam_schedules"))
}

func TestGetExecutor_PrefersTransaction(t *testing.T) {
	db := &DB{}
	ctx := context.Background()

	assert.Same(t, db, GetExecutor(ctx, db))
	assert.False(t, IsInTransaction(ctx))

	tx := &Tx{}
	txCtx := WithTx(ctx, tx)
	assert.Same(t, tx, GetExecutor(txCtx, db))
	assert.True(t, IsInTransaction(txCtx))
}
