package plans

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindByID(t *testing.T) {
	plan := FindByID("team-plan")
	require.NotNil(t, plan)
	assert.Equal(t, "Team", plan.Name)
	assert.True(t, plan.Popular)
	assert.Equal(t, 4999, plan.PriceInCents)
}

func TestFindByID_Unknown(t *testing.T) {
	assert.Nil(t, FindByID("free-plan"))
}

func TestCatalogTiers(t *testing.T) {
	require.Len(t, SubscriptionPlans, 3)

	tiers := make([]string, 0, len(SubscriptionPlans))
	for _, p := range SubscriptionPlans {
		tiers = append(tiers, p.Tier)
		assert.NotEmpty(t, p.Features)
		assert.Greater(t, p.PriceInCents, 0)
	}
	assert.Equal(t, []string{"pro", "team", "enterprise"}, tiers)
}
