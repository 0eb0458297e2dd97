package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/baron-chain/coinnet-bc/app"
	"github.com/baron-chain/coinnet-bc/crypto/keyring"
)

const (
	appName      = "coinnetd"
	appEnvPrefix = "COINNET"
)

func main() {
	if err := run(); err != nil {
		handleError(err)
	}
}

func run() error {
	return NewRootCmd().Execute()
}

func handleError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(getExitCode(err))
}

// getExitCode returns 2 for bad input and 1 for everything else.
func getExitCode(err error) int {
	switch {
	case errors.Is(err, app.ErrUnknownChain),
		errors.Is(err, app.ErrMalformedChainSpec),
		errors.Is(err, keyring.ErrInvalidSecretURI),
		errors.Is(err, keyring.ErrInvalidPhrase),
		errors.Is(err, keyring.ErrUnknownScheme):
		return 2
	default:
		return 1
	}
}
