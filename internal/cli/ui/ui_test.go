package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainOutput(t *testing.T) {
	u := New(&bytes.Buffer{})
	assert.False(t, u.IsTTY)

	assert.Equal(t, "=== Balances ===", u.Header("Balances"))
	assert.Equal(t, "[OK] done", u.Success("done"))
	assert.Equal(t, "[FAILED] drift", u.Error("drift"))
	assert.Equal(t, "[WARN] slow", u.Warning("slow"))
	assert.Equal(t, "note", u.Muted("note"))
}

func TestBlockAlignsValues(t *testing.T) {
	u := New(&bytes.Buffer{})

	out := u.Block([]KV{{"Cash", "50.00"}, {"Transfer", "1250.00"}})

	assert.Equal(t, "  Cash:       50.00\n  Transfer: 1250.00", out)
}
