/*
Package treasurytest provides mocks and helpers for testing extensions:
authenticators with a fixed set of signers, transaction and message stubs
and random condition generators.
*/
package treasurytest
