/*
Package crypto holds the ed25519 keys used to sign barter transactions.

The address of a wallet is its raw 32 byte public key, so no hashing is
involved between a key and the account it controls.
*/
package crypto
