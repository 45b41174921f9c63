/*
Package client talks to a barter node.

A Conn moves bytes: TendermintConn to a remote node over its rpc,
LocalConn to an application running in the same process, committing one
block per transaction. Client builds, signs and commits transactions on top
of a Conn and exposes the swap operations: listing items, opening,
accepting and cancelling offers.
*/
package client
