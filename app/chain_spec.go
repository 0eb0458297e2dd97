package app

import (
	"encoding/json"
	"fmt"
	"net/url"

	errorsmod "cosmossdk.io/errors"
	"github.com/cometbft/cometbft/libs/log"
	"github.com/ethereum/go-ethereum/common"
)

// ChainType classifies a network.
type ChainType string

const (
	ChainTypeDevelopment ChainType = "Development"
	ChainTypeLocal       ChainType = "Local"
	ChainTypeLive        ChainType = "Live"
	ChainTypeCustom      ChainType = "Custom"
)

func (t ChainType) valid() bool {
	switch t {
	case ChainTypeDevelopment, ChainTypeLocal, ChainTypeLive, ChainTypeCustom:
		return true
	}
	return false
}

// TelemetryEndpoint is a telemetry submission URL and the verbosity of what
// is sent to it. It encodes as a [url, verbosity] pair.
type TelemetryEndpoint struct {
	URL       string
	Verbosity uint8
}

// NewTelemetryEndpoint validates the url of a telemetry endpoint.
func NewTelemetryEndpoint(rawURL string, verbosity uint8) (TelemetryEndpoint, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return TelemetryEndpoint{}, errorsmod.Wrap(ErrInvalidTelemetry, err.Error())
	}
	switch u.Scheme {
	case "ws", "wss", "http", "https":
	default:
		return TelemetryEndpoint{}, errorsmod.Wrapf(ErrInvalidTelemetry, "unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return TelemetryEndpoint{}, errorsmod.Wrapf(ErrInvalidTelemetry, "%s has no host", rawURL)
	}
	return TelemetryEndpoint{URL: rawURL, Verbosity: verbosity}, nil
}

func (e TelemetryEndpoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{e.URL, e.Verbosity})
}

func (e *TelemetryEndpoint) UnmarshalJSON(bz []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(bz, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("telemetry endpoint must be a [url, verbosity] pair, got %d elements", len(pair))
	}

	var (
		rawURL    string
		verbosity uint8
	)
	if err := json.Unmarshal(pair[0], &rawURL); err != nil {
		return err
	}
	if err := json.Unmarshal(pair[1], &verbosity); err != nil {
		return err
	}

	endpoint, err := NewTelemetryEndpoint(rawURL, verbosity)
	if err != nil {
		return err
	}
	*e = endpoint
	return nil
}

// ForkBlock pins the hash of a block number. It encodes as a [number, hash] pair.
type ForkBlock struct {
	Number uint32
	Hash   common.Hash
}

func (f ForkBlock) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{f.Number, f.Hash})
}

func (f *ForkBlock) UnmarshalJSON(bz []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(bz, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("fork block must be a [number, hash] pair, got %d elements", len(pair))
	}
	if err := json.Unmarshal(pair[0], &f.Number); err != nil {
		return err
	}
	return json.Unmarshal(pair[1], &f.Hash)
}

// Extensions are node parameters carried alongside the genesis.
type Extensions struct {
	// ForkBlocks are block numbers with known hashes.
	ForkBlocks []ForkBlock `json:"forkBlocks"`
	// BadBlocks are known bad block hashes.
	BadBlocks []common.Hash `json:"badBlocks"`
}

// GenesisBuilder produces the genesis of a chain spec on demand.
type GenesisBuilder func() GenesisConfig

// ChainSpec describes a network: its identity, bootstrap parameters and
// genesis. The genesis is either built lazily or decoded from JSON.
type ChainSpec struct {
	Name               string
	ID                 string
	ChainType          ChainType
	BootNodes          []string
	TelemetryEndpoints []TelemetryEndpoint
	ProtocolID         string
	Properties         map[string]interface{}
	Extensions         Extensions

	builder GenesisBuilder
	genesis *GenesisConfig
	logger  log.Logger
	metrics *GenesisMetrics
}

// Option configures a ChainSpec.
type Option func(*ChainSpec)

func WithBootNodes(nodes ...string) Option {
	return func(cs *ChainSpec) { cs.BootNodes = append(cs.BootNodes, nodes...) }
}

func WithTelemetryEndpoints(endpoints ...TelemetryEndpoint) Option {
	return func(cs *ChainSpec) { cs.TelemetryEndpoints = append(cs.TelemetryEndpoints, endpoints...) }
}

func WithProtocolID(id string) Option {
	return func(cs *ChainSpec) { cs.ProtocolID = id }
}

func WithProperties(props map[string]interface{}) Option {
	return func(cs *ChainSpec) { cs.Properties = props }
}

func WithExtensions(ext Extensions) Option {
	return func(cs *ChainSpec) { cs.Extensions = ext }
}

// WithLogger sets the logger preset genesis builders log to.
func WithLogger(logger log.Logger) Option {
	return func(cs *ChainSpec) { cs.logger = logger }
}

// WithMetrics records genesis builds and decode failures on m.
func WithMetrics(m *GenesisMetrics) Option {
	return func(cs *ChainSpec) { cs.metrics = m }
}

// NewChainSpec returns a chain spec whose genesis is produced by builder.
func NewChainSpec(name, id string, chainType ChainType, builder GenesisBuilder, opts ...Option) (*ChainSpec, error) {
	if name == "" || id == "" {
		return nil, errorsmod.Wrap(ErrMalformedChainSpec, "name and id are required")
	}
	if !chainType.valid() {
		return nil, errorsmod.Wrapf(ErrMalformedChainSpec, "unknown chain type %q", chainType)
	}
	if builder == nil {
		return nil, errorsmod.Wrap(ErrMalformedChainSpec, "genesis builder is required")
	}

	cs := &ChainSpec{
		Name:      name,
		ID:        id,
		ChainType: chainType,
		BootNodes: []string{},
		builder:   builder,
	}
	for _, opt := range opts {
		opt(cs)
	}

	for _, e := range cs.TelemetryEndpoints {
		if _, err := NewTelemetryEndpoint(e.URL, e.Verbosity); err != nil {
			return nil, err
		}
	}
	return cs, nil
}

// BuildGenesis returns the validated genesis of the chain. A lazily built
// genesis is assembled on the first call only.
func (cs *ChainSpec) BuildGenesis() (GenesisConfig, error) {
	if cs.genesis == nil {
		genesis := cs.builder()
		cs.genesis = &genesis
		cs.metrics.observeBuild(cs.ChainType)
	}

	if err := ValidateGenesis(*cs.genesis); err != nil {
		return GenesisConfig{}, errorsmod.Wrapf(err, "chain %s", cs.ID)
	}
	return *cs.genesis, nil
}

type chainSpecJSON struct {
	Name               string                 `json:"name"`
	ID                 string                 `json:"id"`
	ChainType          ChainType              `json:"chainType"`
	BootNodes          []string               `json:"bootNodes"`
	TelemetryEndpoints []TelemetryEndpoint    `json:"telemetryEndpoints"`
	ProtocolID         *string                `json:"protocolId"`
	Properties         map[string]interface{} `json:"properties"`
	ForkBlocks         []ForkBlock            `json:"forkBlocks"`
	BadBlocks          []common.Hash          `json:"badBlocks"`
	ConsensusEngine    interface{}            `json:"consensusEngine"`
	Genesis            genesisJSON            `json:"genesis"`
}

type genesisJSON struct {
	Runtime *GenesisConfig `json:"runtime"`
}

// ToJSON builds the genesis and renders the chain spec document.
func (cs *ChainSpec) ToJSON() ([]byte, error) {
	genesis, err := cs.BuildGenesis()
	if err != nil {
		return nil, err
	}

	doc := chainSpecJSON{
		Name:               cs.Name,
		ID:                 cs.ID,
		ChainType:          cs.ChainType,
		BootNodes:          cs.BootNodes,
		TelemetryEndpoints: cs.TelemetryEndpoints,
		Properties:         cs.Properties,
		ForkBlocks:         cs.Extensions.ForkBlocks,
		BadBlocks:          cs.Extensions.BadBlocks,
		Genesis:            genesisJSON{Runtime: &genesis},
	}
	if doc.BootNodes == nil {
		doc.BootNodes = []string{}
	}
	if cs.ProtocolID != "" {
		doc.ProtocolID = &cs.ProtocolID
	}

	return json.MarshalIndent(doc, "", MakeEncodingConfig().Indent)
}

// ChainSpecFromJSONBytes decodes a chain spec document. The genesis it
// carries is returned as is and validated by BuildGenesis.
func ChainSpecFromJSONBytes(bz []byte, opts ...Option) (*ChainSpec, error) {
	var doc chainSpecJSON
	if err := json.Unmarshal(bz, &doc); err != nil {
		return nil, errorsmod.Wrap(ErrMalformedChainSpec, err.Error())
	}
	if doc.Name == "" || doc.ID == "" {
		return nil, errorsmod.Wrap(ErrMalformedChainSpec, "name and id are required")
	}
	if doc.ChainType == "" {
		doc.ChainType = ChainTypeLive
	}
	if !doc.ChainType.valid() {
		return nil, errorsmod.Wrapf(ErrMalformedChainSpec, "unknown chain type %q", doc.ChainType)
	}
	if doc.Genesis.Runtime == nil {
		return nil, errorsmod.Wrap(ErrMalformedChainSpec, "genesis.runtime is required")
	}

	cs := &ChainSpec{
		Name:               doc.Name,
		ID:                 doc.ID,
		ChainType:          doc.ChainType,
		BootNodes:          doc.BootNodes,
		TelemetryEndpoints: doc.TelemetryEndpoints,
		Properties:         doc.Properties,
		Extensions: Extensions{
			ForkBlocks: doc.ForkBlocks,
			BadBlocks:  doc.BadBlocks,
		},
		genesis: doc.Genesis.Runtime,
	}
	if doc.ProtocolID != nil {
		cs.ProtocolID = *doc.ProtocolID
	}
	for _, opt := range opts {
		opt(cs)
	}
	return cs, nil
}
