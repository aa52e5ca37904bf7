/*
Package farm implements yield farming for the treasury token.

Stakeholders lock tokens in the farm pool and earn yield at a yearly
rate. Yield is settled lazily: nothing accrues in the background, the
pending amount is recomputed from the block time whenever a stakeholder
interacts with the farm. Settlement uses integer math and always rounds
down.

The rate is controlled by the vault admins and can only be changed
through the vault. Before a rate change takes effect, every stakeholder
is settled at the old rate so past time is never re-priced.
*/
package farm
