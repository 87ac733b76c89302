package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingFields(t *testing.T) {
	missing := MissingFields(
		Required("address", "T111"),
		Required("amount", ""),
		Required("txId", "tx1"),
		Required("contractAddress", ""),
	)
	assert.Equal(t, []string{"amount", "contractAddress"}, missing)
}

func TestMissingFields_NoneMissing(t *testing.T) {
	assert.Empty(t, MissingFields(Required("name", "W1"), Required("chat_id", "C")))
}

func TestRequireFields(t *testing.T) {
	require.NoError(t, RequireFields(Required("name", "W1")))

	err := RequireFields(Required("name", ""), Required("bot_token", ""))
	require.Error(t, err)
	assert.Equal(t, "missing required fields: name, bot_token", err.Error())
}

func TestNormalizeAddress(t *testing.T) {
	assert.Equal(t, "TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t", NormalizeAddress("  TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t\n"))
}
