/*
Package IBD implements an Invertible Bloom Dictionary: the key/value
counterpart to Sets/IBF. Each bucket XORs together the keys and the values
of every pair that touches it; a bucket left holding exactly one pair (a
pure bucket) can be read back directly, and the whole dictionary can be
recovered by repeatedly peeling pure buckets the same way IBF does.

Directory size and seed count are fixed at construction. Overloading the
directory degrades Get toward ambiguous and can make ListAll fail.
*/
package IBD
