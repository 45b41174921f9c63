/*
Package app contains standard implementations of a number of components.

It is a good place to find the default router, decorator chain and the ABCI
application wrapping it all. Applications such as cmd/barterd assemble these
pieces with their own extensions.
*/
package app
