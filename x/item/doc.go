/*
Package item is the registry of tradable items.

An item names a token mint, the seller's token account holding the supply,
and the market it is listed in. The record is created in the same batch as
the mint and the token account, so a listed item always has its supply
minted. Items are immutable and never deleted.
*/
package item
