package app

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baron-chain/coinnet-bc/crypto/keyring"
	"github.com/baron-chain/coinnet-bc/types"
)

func TestGenesisMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewGenesisMetrics(reg)

	cs, err := DevelopmentConfig(WithMetrics(m))
	require.NoError(t, err)

	_, err = cs.BuildGenesis()
	require.NoError(t, err)
	_, err = cs.ToJSON()
	require.NoError(t, err)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.BuildsTotal.WithLabelValues(string(ChainTypeDevelopment))))
	assert.Equal(t, float64(12), testutil.ToFloat64(m.EndowedAccounts))

	TestnetGenesis(GenesisInitOptions{
		Authorities: AuthoritiesFromSeeds("Alice", "Bob"),
		Nominators:  []types.AccountID{keyring.MustAccountIDFromSeed("Dave"), keyring.MustAccountIDFromSeed("Eve")},
		RootKey:     keyring.MustAccountIDFromSeed("Alice"),
		Rand:        rand.New(rand.NewSource(3)),
		Metrics:     m,
	})

	expected := `
# HELP coinnet_genesis_endowed_accounts Number of accounts endowed by the last assembled genesis.
# TYPE coinnet_genesis_endowed_accounts gauge
coinnet_genesis_endowed_accounts 12
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "coinnet_genesis_endowed_accounts"))

	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == "coinnet_genesis_nomination_targets" {
			assert.Equal(t, uint64(2), mf.GetMetric()[0].GetHistogram().GetSampleCount())
		}
	}
}

func TestLoadFailureMetric(t *testing.T) {
	m := NewGenesisMetrics(prometheus.NewRegistry())

	_, err := loadJSON("broken", []byte("{"), []Option{WithMetrics(m)})
	assert.ErrorIs(t, err, ErrMalformedChainSpec)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ChainSpecLoadFails.WithLabelValues("broken")))
}

func TestNilMetrics(t *testing.T) {
	var m *GenesisMetrics
	assert.NotPanics(t, func() {
		m.observeBuild(ChainTypeLive)
		m.observeLoadFailure("x")
	})
	assert.NotPanics(t, func() { NewGenesisMetrics(nil) })
}
