/*
Package batch implements batch transactions.

A batch transaction holds a list of messages that the application can
process, wrapped in a single transaction. The transaction fails if any of
the messages fails to be processed, so several steps such as creating a
mint, a token account and an item record are applied together or not at
all. Signatures and other middleware placed before the batch decorator are
applied only once per transaction.
*/
package batch
