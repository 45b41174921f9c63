/*
Package x contains some standard extensions

Extensions are separate packages that each handle a part of the state
machine. They share the Authenticator interface defined here, so a handler
never needs to know which decorator verified the signers of a transaction.
*/
package x
