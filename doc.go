/*
Package barter defines the common interfaces that tie together the
subpackages of the escrow swap engine, as well as implementations of some of
the simpler components (when interfaces would be too much overhead).

We pass context through context.Context between app, middleware, and
handlers. To do so, barter defines some common keys to store info, such as
block height and chain id. Each extension, such as sigs, may add its own keys
to enrich the context with specific data.

There should exist two functions for every XYZ of type T that we want to
support in Context:

  WithXYZ(Context, T) Context
  GetXYZ(Context) (val T, ok bool)

WithXYZ may panic if the value was previously set to avoid lower-level
modules overwriting the value (eg. height, header).

Every account lives in one shared address space keyed by Address. Addresses
are either ed25519 public keys, owned by whoever holds the private key, or
program derived addresses (see FindProgramAddress) that lie off the curve and
can only be used by program logic.
*/
package barter
