package app

import (
	_ "embed"

	errorsmod "cosmossdk.io/errors"
)

//go:embed res/node_runtime.compact.wasm
var wasmBinary []byte

// WasmBinary returns the runtime code set at genesis, or nil when the build
// carries none.
func WasmBinary() []byte {
	if len(wasmBinary) == 0 {
		return nil
	}
	return wasmBinary
}

// WasmBinaryUnwrap returns the runtime code and panics when the build carries
// none.
func WasmBinaryUnwrap() []byte {
	code := WasmBinary()
	if code == nil {
		panic(errorsmod.Wrap(ErrMissingRuntime, "development wasm binary is not available"))
	}
	return code
}
