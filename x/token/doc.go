/*
Package token implements a fungible token ledger.

Balances are kept in wallets, one wallet per address. A wallet may hold
coins of several tickers, so the same ledger serves both the managed
token and the native currency it trades against.

Owners can authorize a spender to move a limited amount on their behalf
with an allowance. Minting and burning are not exposed as messages, they
are only reachable through the Controller and meant to be called by
other extensions that own the monetary policy.
*/
package token
