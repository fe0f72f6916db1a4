/*
Package ibfutil holds the pieces shared by the Sets/IBF and Maps/IBD
templates: the Key/Value type constraint, the hasher contract, seed
generation, and the peeling decoder used by both structures' ListAll.

Nothing here is exported for direct end-user use except where noted;
it exists so the two structures can share one implementation of the
parts that don't differ between a set and a dictionary.
*/
package ibfutil
