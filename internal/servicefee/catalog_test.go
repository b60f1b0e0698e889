package servicefee

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/marketfee-next/internal/constants"

	"github.com/stretchr/testify/require"
)

func TestIsActive(t *testing.T) {
	base := globalFee("fee_1", "10", testNow.Add(-time.Hour))

	require.True(t, IsActive(base, testNow))

	pending := base
	pending.Status = constants.ServiceFeeStatusPending
	require.False(t, IsActive(pending, testNow))

	future := base
	future.ValidFrom = timePtr(testNow.Add(time.Minute))
	require.False(t, IsActive(future, testNow))

	expired := base
	expired.ValidTo = timePtr(testNow.Add(-time.Minute))
	require.False(t, IsActive(expired, testNow))

	bounded := base
	bounded.ValidFrom = timePtr(testNow)
	bounded.ValidTo = timePtr(testNow)
	require.True(t, IsActive(bounded, testNow), "bounds are inclusive")
}

func TestLoadActiveFeesPartitionsByLevel(t *testing.T) {
	created := testNow.Add(-time.Hour)
	inactive := globalFee("fee_off", "50", created)
	inactive.Status = constants.ServiceFeeStatusInactive
	source := &fakeFees{fees: []Fee{
		globalFee("fee_g", "10", created),
		itemFee("fee_i", "5", created, ItemRule{}),
		shopFee("fee_s", "8", created, ShopRule{}),
		inactive,
	}}

	catalog, err := LoadActiveFees(context.Background(), source, testNow)
	require.NoError(t, err)
	require.Len(t, catalog.Global, 1)
	require.Len(t, catalog.Item, 1)
	require.Len(t, catalog.Shop, 1)
	require.Equal(t, "fee_g", catalog.Global[0].ID)
	require.False(t, catalog.Empty())
}

func TestLoadActiveFeesPropagatesError(t *testing.T) {
	boom := errors.New("db down")
	_, err := LoadActiveFees(context.Background(), &fakeFees{err: boom}, testNow)
	require.ErrorIs(t, err, boom)
}
