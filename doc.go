/*
Package treasury defines the common interfaces that tie the token, vault
and farm extensions together: transactions and messages, handlers and
decorators, the key-value store abstraction, conditions and addresses,
and the context helpers carrying block information.

Implementations of the heavier pieces live in subpackages. The root
package holds only what every extension needs to agree on.
*/
package treasury
