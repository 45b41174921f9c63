/*
Package offer implements the two party swap.

An initializer offers GiveAmount tokens from one of its token accounts in
exchange for ReceiveAmount tokens sent to it from the taker token account.
The offer record and the escrow vault live at program derived addresses
computed from the two token accounts, so both parties find them without any
lookup table. The given tokens wait in the vault, a token account owned by
its own address, until the taker accepts or the initializer cancels. Only
this package can sign for the vault.

Only pending offers are stored. Accepting or cancelling deletes both the
offer and the vault and returns their rent to the initializer, so exactly
one of the two can ever succeed.
*/
package offer
