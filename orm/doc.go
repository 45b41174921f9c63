/*
Package orm provides an easy to use db wrapper over the shared account space.

Every account lives under a single prefix and is keyed by its address. A
stored value starts with an eight byte discriminator that tells which kind of
record it holds, followed by the protobuf encoding of the record. This lets a
generic loader (LoadAccount) tell an item from an offer without knowing in
advance what lives at an address, and lets typed buckets refuse to load a
record of the wrong kind.

* A ModelBucket gives typed access to one kind of record.
* It may possess secondary indexes (1:1 or 1:N).
* Easy queries for one and iteration.
*/
package orm
