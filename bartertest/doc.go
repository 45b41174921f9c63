/*
Package bartertest provides mocks and helpers to test barter extensions.
*/
package bartertest
