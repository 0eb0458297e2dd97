/*
Package params defines the token denominations and runtime constants the
genesis assembler relies on.

Balances are expressed in indivisible base units. The human-facing units are
derived from MilliCents:

	MilliCents = 10^9
	Cents      = 1_000 * MilliCents
	Dollars    = 100 * Cents

so one Dollar is 10^14 base units and a genesis endowment of ten million
Dollars (10^21) no longer fits in 64 bits. Amounts are therefore carried as
cosmossdk.io/math Int values.
*/
package params
