package dbmetrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperation(t *testing.T) {
	assert.Equal(t, "select", Operation("SELECT id FROM reservations WHERE department = $1"))
	assert.Equal(t, "insert", Operation("  insert into x values ($1)"))
	assert.Equal(t, "unknown", Operation("   "))
}
