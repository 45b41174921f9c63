/*
Package utils contains the decorators shared by every barter application:
panic recovery, transaction logging, savepoints and result tagging.
*/
package utils
