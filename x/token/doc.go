/*
Package token is the fungible token ledger.

A mint defines a token and who may issue it. A token account holds an
amount of exactly one mint for one owner. The owner is either a wallet,
which authorizes with its signature, or a program derived address, which a
program authorizes with x.WithProgramSigner. Every mint and token account
is allocated through the system extension and carries a rent deposit.

The associated token account of a wallet for a mint lives at an address
derived from both, so anyone can find or create it without asking the
wallet for a fresh key.
*/
package token
