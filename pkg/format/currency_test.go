package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "$1,234.50", Currency(cfg, 1234.5))
	assert.Equal(t, "$0.00", Currency(cfg, 0))
	assert.Equal(t, "$250,000.00", Currency(cfg, 250000))
}

func TestPercent(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "11.40%", Percent(cfg, 11.4))
	assert.Equal(t, "0.00%", Percent(cfg, 0))
}
