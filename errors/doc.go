/*
Package errors implements the error handling used across barter.

Every error returned to a client must be rooted in one of the registered
errors. A registered error carries an ABCI code, which is what the client
receives together with the log message, so that a failed transaction can be
classified on the other side of the wire.

Extensions declare their own root errors with Register, during program
initialization only. Reusing a code panics.

To add context use Wrap or Wrapf. The first wrap attaches a stack trace, which
is printed with %+v:

	%s is just the error message
	%+v is the full stack trace
*/
package errors
