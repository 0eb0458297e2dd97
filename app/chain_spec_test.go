package app

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainSpecJSONRoundTrip(t *testing.T) {
	for _, id := range ChainIDs() {
		t.Run(id, func(t *testing.T) {
			cs, err := LoadChainSpec(id)
			require.NoError(t, err)

			bz, err := cs.ToJSON()
			require.NoError(t, err)

			decoded, err := ChainSpecFromJSONBytes(bz)
			require.NoError(t, err)
			assert.Equal(t, cs.Name, decoded.Name)
			assert.Equal(t, cs.ID, decoded.ID)
			assert.Equal(t, cs.ChainType, decoded.ChainType)
			assert.Equal(t, cs.TelemetryEndpoints, decoded.TelemetryEndpoints)

			again, err := decoded.ToJSON()
			require.NoError(t, err)
			assert.Equal(t, string(bz), string(again))
		})
	}
}

func TestChainSpecExtensionsRoundTrip(t *testing.T) {
	ext := Extensions{
		ForkBlocks: []ForkBlock{{Number: 42, Hash: common.HexToHash("0x01")}},
		BadBlocks:  []common.Hash{common.HexToHash("0xdead")},
	}

	cs, err := DevelopmentConfig(
		WithExtensions(ext),
		WithBootNodes("/dns/boot.coinnet.io/tcp/30333/p2p/12D3KooWEyoppNCUx8Yx66oV9fJnriXwCcXwDDUA2kj6vnc6iDEp"),
		WithProtocolID("coin"),
		WithProperties(map[string]interface{}{"tokenSymbol": "COIN"}),
	)
	require.NoError(t, err)

	bz, err := cs.ToJSON()
	require.NoError(t, err)
	assert.Contains(t, string(bz), `"protocolId": "coin"`)

	decoded, err := ChainSpecFromJSONBytes(bz)
	require.NoError(t, err)
	assert.Equal(t, ext, decoded.Extensions)
	assert.Equal(t, cs.BootNodes, decoded.BootNodes)
	assert.Equal(t, "coin", decoded.ProtocolID)
	assert.Equal(t, "COIN", decoded.Properties["tokenSymbol"])
}

func TestChainSpecFromMalformedJSON(t *testing.T) {
	valid, err := CoinnetTestConfig()
	require.NoError(t, err)
	validJSON, err := valid.ToJSON()
	require.NoError(t, err)

	replace := func(old, new string) []byte {
		require.Contains(t, string(validJSON), old)
		return bytes.Replace(validJSON, []byte(old), []byte(new), 1)
	}

	testCases := map[string][]byte{
		"empty":               {},
		"truncated":           validJSON[:len(validJSON)/2],
		"not an object":       []byte(`[1, 2, 3]`),
		"missing name":        []byte(`{"id": "x", "genesis": {"runtime": {}}}`),
		"missing runtime":     []byte(`{"name": "x", "id": "x", "genesis": {}}`),
		"unknown chain type":  replace(`"chainType": "Live"`, `"chainType": "Moon"`),
		"telemetry scheme":    replace(`"wss://telemetry.polkadot.io/submit/"`, `"ftp://telemetry.polkadot.io/submit/"`),
		"telemetry arity":     replace(`"wss://telemetry.polkadot.io/submit/",`, `"wss://telemetry.polkadot.io/submit/", 0, 1,`),
		"bad account address": replace(`"key": "`, `"key": "5Bad`),
		"bad amount":          replace(`"amount": "`, `"amount": "ten`),
	}

	for name, bz := range testCases {
		t.Run(name, func(t *testing.T) {
			var cs *ChainSpec
			require.NotPanics(t, func() { cs, err = ChainSpecFromJSONBytes(bz) })
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedChainSpec)
			assert.Nil(t, cs)
		})
	}
}

func TestChainSpecInvalidGenesis(t *testing.T) {
	cs, err := NewChainSpec("Broken", "broken", ChainTypeCustom, NewDefaultGenesisState)
	require.NoError(t, err)

	_, err = cs.BuildGenesis()
	assert.ErrorIs(t, err, ErrInvalidGenesis)

	_, err = cs.ToJSON()
	assert.ErrorIs(t, err, ErrInvalidGenesis)
}

func TestNewChainSpecErrors(t *testing.T) {
	builder := func() GenesisConfig { return GenesisConfig{} }

	testCases := map[string]struct {
		name      string
		id        string
		chainType ChainType
		builder   GenesisBuilder
		opts      []Option
		expErr    error
	}{
		"missing name":       {id: "x", chainType: ChainTypeLive, builder: builder, expErr: ErrMalformedChainSpec},
		"unknown chain type": {name: "x", id: "x", chainType: "Moon", builder: builder, expErr: ErrMalformedChainSpec},
		"missing builder":    {name: "x", id: "x", chainType: ChainTypeLive, expErr: ErrMalformedChainSpec},
		"bad telemetry": {
			name: "x", id: "x", chainType: ChainTypeLive, builder: builder,
			opts:   []Option{WithTelemetryEndpoints(TelemetryEndpoint{URL: "wss://"})},
			expErr: ErrInvalidTelemetry,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := NewChainSpec(tc.name, tc.id, tc.chainType, tc.builder, tc.opts...)
			assert.ErrorIs(t, err, tc.expErr)
		})
	}
}

func TestTelemetryEndpoint(t *testing.T) {
	testCases := map[string]struct {
		url   string
		valid bool
	}{
		"wss":          {url: StagingTelemetryURL, valid: true},
		"ws":           {url: "ws://127.0.0.1:8001/submit", valid: true},
		"https":        {url: "https://telemetry.coinnet.io/submit", valid: true},
		"ftp":          {url: "ftp://telemetry.coinnet.io", valid: false},
		"no host":      {url: "wss:///submit", valid: false},
		"not a url":    {url: "::", valid: false},
		"bare address": {url: "telemetry.coinnet.io", valid: false},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			e, err := NewTelemetryEndpoint(tc.url, 3)
			if !tc.valid {
				assert.ErrorIs(t, err, ErrInvalidTelemetry)
				return
			}
			require.NoError(t, err)

			bz, err := json.Marshal(e)
			require.NoError(t, err)
			exp, err := json.Marshal([]interface{}{tc.url, 3})
			require.NoError(t, err)
			assert.Equal(t, exp, bz)

			var decoded TelemetryEndpoint
			require.NoError(t, json.Unmarshal(bz, &decoded))
			assert.Equal(t, e, decoded)
		})
	}
}
