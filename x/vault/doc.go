/*
Package vault implements the treasury that manages the token supply.

A group of admins controls the vault. Minting requires a unanimous
vote: every current admin must vote for exactly the same amount before
new tokens are created. The vault also runs a simple exchange with
admin-set prices, where anyone can buy tokens for the native currency
or burn tokens to get native currency back.

Admins take their share of the proceeds through withdrawal requests.
A request becomes payable once every current admin has one outstanding,
and each admin collects independently. A percentage cap bounds how much
of the vault balance the outstanding requests may claim.

All funds are held in wallets of the token extension, under an address
derived from a vault condition that no key can sign for.
*/
package vault
