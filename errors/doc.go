/*
Package errors implements custom error interfaces for the treasury
framework.

Each returned error is categorized by the root error it was created from.
Root errors carry a unique numeric code, so a failure can be reported to a
client without leaking internal details. Use Wrap and Wrapf to attach
context to an error and the root error Is method to test the category:

	if err := doSomething(); errors.ErrNotFound.Is(err) {
		...
	}

Extensions register their own root errors with Register. Codes below 1000
are reserved for this package.
*/
package errors
