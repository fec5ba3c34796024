package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SlotsBot_Go/internal/domain"
)

func TestBonusTime(t *testing.T) {
	assert.Nil(t, bonusTime(""))
	assert.Nil(t, bonusTime("yesterday"))

	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	got := bonusTime(ts.Format(domain.BonusTimeLayout))
	require.NotNil(t, got)
	assert.True(t, ts.Equal(*got))
}
