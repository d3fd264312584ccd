package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevenuePeriods_Order(t *testing.T) {
	var names []string
	for _, p := range RevenuePeriods() {
		names = append(names, p.String())
	}
	assert.Equal(t, []string{"daily", "weekly", "monthly", "annual"}, names)
}

func TestRevenuePeriod_JSON(t *testing.T) {
	data, err := json.Marshal(RevenuePeriodMonthly)
	require.NoError(t, err)
	assert.Equal(t, `"monthly"`, string(data))

	var p RevenuePeriod
	require.NoError(t, json.Unmarshal([]byte(`"annual"`), &p))
	assert.Equal(t, RevenuePeriodAnnual, p)

	assert.Error(t, json.Unmarshal([]byte(`"hourly"`), &p))
	assert.Equal(t, "RevenuePeriod(9)", RevenuePeriod(9).String())
}
