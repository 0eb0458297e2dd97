package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baron-chain/coinnet-bc/crypto/keyring"
	"github.com/baron-chain/coinnet-bc/types"
)

func TestPresets(t *testing.T) {
	testCases := map[string]struct {
		name       string
		chainID    string
		chainType  ChainType
		validators int
		balances   int
		println    bool
	}{
		"dev":          {"Development", "dev", ChainTypeDevelopment, 1, 12, true},
		"local":        {"Local Testnet", "local_testnet", ChainTypeLocal, 2, 12, false},
		"staging":      {"Staging Testnet", "staging_testnet", ChainTypeLive, 3, 4, false},
		"coinnet":      {"1COIN Testnet", "coinnet_testnet", ChainTypeLive, 2, 3, false},
		"coinnet-main": {"1COIN", "coinnet_main", ChainTypeLive, 3, 7, false},
	}
	require.Len(t, ChainIDs(), len(testCases))

	for id, tc := range testCases {
		t.Run(id, func(t *testing.T) {
			cs, err := LoadChainSpec(id)
			require.NoError(t, err)
			assert.Equal(t, tc.name, cs.Name)
			assert.Equal(t, tc.chainID, cs.ID)
			assert.Equal(t, tc.chainType, cs.ChainType)

			genesis, err := cs.BuildGenesis()
			require.NoError(t, err)
			assert.Len(t, genesis.Staking.Stakers, tc.validators)
			assert.Equal(t, uint32(2*tc.validators), genesis.Staking.ValidatorCount)
			assert.Equal(t, uint32(tc.validators), genesis.Staking.MinimumValidatorCount)
			assert.Len(t, genesis.Balances.Balances, tc.balances)
			assert.Equal(t, tc.println, genesis.Contracts.CurrentSchedule.EnablePrintln)

			_, ok := ChainDescription(id)
			assert.True(t, ok)
		})
	}
}

func TestPresetsAreReproducible(t *testing.T) {
	for _, id := range ChainIDs() {
		t.Run(id, func(t *testing.T) {
			first, err := LoadChainSpec(id)
			require.NoError(t, err)
			second, err := LoadChainSpec(id)
			require.NoError(t, err)

			a, err := first.ToJSON()
			require.NoError(t, err)
			b, err := second.ToJSON()
			require.NoError(t, err)
			assert.True(t, bytes.Equal(a, b))
		})
	}
}

func TestDefaultChainIsDevelopment(t *testing.T) {
	cs, err := LoadChainSpec("")
	require.NoError(t, err)
	assert.Equal(t, "dev", cs.ID)
}

func TestStagingPreset(t *testing.T) {
	cs, err := StagingTestnetConfig()
	require.NoError(t, err)
	require.Len(t, cs.TelemetryEndpoints, 1)
	assert.Equal(t, TelemetryEndpoint{URL: "wss://telemetry.polkadot.io/submit/"}, cs.TelemetryEndpoints[0])

	genesis, err := cs.BuildGenesis()
	require.NoError(t, err)

	root := types.MustAccountIDFromHex("0x326533ecd0d499ed73c1ecba838f52e95f238a4f212458aae39462f89c447040")
	assert.Equal(t, root, genesis.Sudo.Key)
	assert.Equal(t, root, genesis.Balances.Balances[0].Account)

	authorities := StagingAuthorities()
	for i, auth := range authorities {
		assert.Equal(t, auth.Stash, genesis.Balances.Balances[i+1].Account)
		assert.Equal(t, auth.Stash, genesis.Session.Keys[i].Account)
		assert.Equal(t, auth.SessionKeys(), genesis.Session.Keys[i].Keys)
		assert.Equal(t, auth.Controller, genesis.Staking.Stakers[i].Controller)
	}
	assert.Equal(t, "5DZgiavMzv3NonUEG7CUPTReg25aLpaTDWdJcpnAwMNT3BUC", authorities[0].Stash.String())
	assert.Equal(t, "5F1umJsBGAaFmLvme1c5UqEHvN6WKEovLgud7fHab9gGcGE2", authorities[0].Controller.String())
	assert.Equal(t, "5DKD6rZUbt5tFktfwSwjzrDnig4wQf6pQQfF29ScoHJuPEir", authorities[0].Grandpa.String())
	assert.Equal(t, []types.AccountID{root, authorities[0].Stash}, genesis.TechnicalCommittee.Members)
}

func TestIntegrationTestConfigs(t *testing.T) {
	single, err := IntegrationTestConfigWithSingleAuthority()
	require.NoError(t, err)
	genesis, err := single.BuildGenesis()
	require.NoError(t, err)
	assert.Equal(t, "test", single.ID)
	assert.Equal(t, ChainTypeDevelopment, single.ChainType)
	assert.Len(t, genesis.Staking.Stakers, 1)
	assert.False(t, genesis.Contracts.CurrentSchedule.EnablePrintln)

	two, err := IntegrationTestConfigWithTwoAuthorities()
	require.NoError(t, err)
	genesis, err = two.BuildGenesis()
	require.NoError(t, err)
	assert.Equal(t, "Integration Test", two.Name)
	assert.Len(t, genesis.Session.Keys, 2)
	assert.Equal(t, keyring.MustAccountIDFromSeed("Bob//stash"), genesis.Session.Keys[1].Validator)
}

func TestLoadChainSpecFromFile(t *testing.T) {
	cs, err := LocalTestnetConfig()
	require.NoError(t, err)
	bz, err := cs.ToJSON()
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "local.json")
	require.NoError(t, os.WriteFile(path, bz, 0o600))

	loaded, err := LoadChainSpec(path)
	require.NoError(t, err)
	assert.Equal(t, "local_testnet", loaded.ID)
	_, err = loaded.BuildGenesis()
	require.NoError(t, err)

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, bz[:len(bz)/3], 0o600))
	_, err = LoadChainSpec(broken)
	assert.ErrorIs(t, err, ErrMalformedChainSpec)

	_, err = LoadChainSpec(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, ErrUnknownChain)
	_, err = LoadChainSpec("polkadot")
	assert.ErrorIs(t, err, ErrUnknownChain)
}

func TestExportChainSpec(t *testing.T) {
	cs, err := DevelopmentConfig()
	require.NoError(t, err)

	var jsonOut bytes.Buffer
	require.NoError(t, ExportChainSpec(cs, &jsonOut, FormatJSON))
	_, err = ChainSpecFromJSONBytes(jsonOut.Bytes())
	require.NoError(t, err)

	var yamlOut bytes.Buffer
	require.NoError(t, ExportChainSpec(cs, &yamlOut, FormatYAML))
	out := yamlOut.String()
	assert.True(t, strings.HasPrefix(out, "name: Development\n"), out[:40])
	assert.Contains(t, out, "chainType: Development")
	assert.Contains(t, out, `slashRewardFraction: "0.100000000000000000"`)

	assert.Error(t, ExportChainSpec(cs, &bytes.Buffer{}, "toml"))
}
