/*
Package sigs provides basic authentication
middleware to verify the signatures on the transaction,
and maintain nonces for replay protection.

A signer is identified by its ed25519 public key, which is also its
address. The sequence of every signer is stored under its own prefix,
outside of the account space, so it never collides with the lamport
balance kept for the same address.
*/
package sigs
