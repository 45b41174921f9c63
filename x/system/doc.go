/*
Package system keeps the native lamport balance of every wallet and the
rent deposit of every account allocated by a program.

A program never creates an account out of thin air: it first allocates the
address through the Controller, which debits the payer the rent exempt
minimum for the declared space and records who paid. Closing the account
returns the deposit to a wallet of the program's choosing.
*/
package system
