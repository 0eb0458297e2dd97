package app

import (
	"github.com/baron-chain/coinnet-bc/types"
)

// StagingTelemetryURL receives telemetry of the staging network.
const StagingTelemetryURL = "wss://telemetry.polkadot.io/submit/"

// stagingAuthorities were generated offline from a private secret as
// <secret>/fir/{stash,controller}/<i> (sr25519) and <secret>//fir//session//<i>.
var stagingAuthorities = []types.AuthorityKeys{
	{
		Stash:              types.MustAccountIDFromHex("0x425683c5e9814ef3e429d1a80f5728d2bb7809408751f011f1982aaf11706646"),
		Controller:         types.MustAccountIDFromHex("0x82930c74ec05211f19372558ff009213c7b19f2a3b860962f31d4abaffd8f81a"),
		Grandpa:            types.MustPublicKeyFromHex("0x374c1d7da6467bca73a126279f0f8e3836e7ae56a3f1fe4ae7dc1d6cdcb97c38"),
		Babe:               types.MustPublicKeyFromHex("0xc615aaa9ac54dd543f3aed5ef80f29d0e2216a432f2a7df887c15140a42a1575"),
		ImOnline:           types.MustPublicKeyFromHex("0xe6779faaa6f2a0f66a708700b63b946edf66655c61b218c4a0863b52af24ae09"),
		AuthorityDiscovery: types.MustPublicKeyFromHex("0xf8ad88419580b55c0877adf9e67633573611f77b090e46ed0ea96952794c815e"),
	},
	{
		Stash:              types.MustAccountIDFromHex("0xda26a67157b30108c941c31b46af635f878b172c12cac69e58fcd804dd5bf641"),
		Controller:         types.MustAccountIDFromHex("0xd2d4d0b5e7e55af834ea3ba3fba92e83cb798577083ca4b7ee01e1591c473d5d"),
		Grandpa:            types.MustPublicKeyFromHex("0xb2879203306f223216579c3d66429b0f915b307f3acaeac95de935adcbff5ddc"),
		Babe:               types.MustPublicKeyFromHex("0x6a7151ccaa67b1ae76b38e901b435657e129761b2b55cec5d804778c873d5970"),
		ImOnline:           types.MustPublicKeyFromHex("0x34aa18d41765d438de24bd118f55f12dacd9ab31d139b8dad154e9581e9a5352"),
		AuthorityDiscovery: types.MustPublicKeyFromHex("0xd0336c901f187212502d14264cbfa448aa97aa19dbf6f16a75627b4fcffabd52"),
	},
	{
		Stash:              types.MustAccountIDFromHex("0xbcc1b837623631376e589c099c87dc598b0dce97fa428bae5411064dbee91a34"),
		Controller:         types.MustAccountIDFromHex("0x5863d452a28c5b2db6d35bc6ec0bcf12debfa9fc25cf343044033c5fb0f88f6a"),
		Grandpa:            types.MustPublicKeyFromHex("0x494f05a61a29c4d6f5bdc302ac4eedcba6abb097949bbf20f421248d1378ab06"),
		Babe:               types.MustPublicKeyFromHex("0x52955122a092772adc39930a4b77a649a5dd2ad86ae5a84242645290b812bc1b"),
		ImOnline:           types.MustPublicKeyFromHex("0x3a3d18375fd0a6eddc7991ebf3ddf3c0140db55ec5b3cb7e99fc8bd95359d917"),
		AuthorityDiscovery: types.MustPublicKeyFromHex("0x76614187c2122ac8b70c8fc40431916cfb33379f1db6af87b5ea4c2dc28eaf0e"),
	},
}

var stagingRootKey = types.MustAccountIDFromHex("0x326533ecd0d499ed73c1ecba838f52e95f238a4f212458aae39462f89c447040")

// StagingAuthorities returns a copy of the staging network's authority table.
func StagingAuthorities() []types.AuthorityKeys {
	return append([]types.AuthorityKeys(nil), stagingAuthorities...)
}
