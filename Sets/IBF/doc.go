/*
Package IBF implements an Invertible Bloom Filter: a fixed-size set built
from XOR-accumulator buckets rather than bitmap counters. Where a plain
Bloom filter can only ever answer "maybe" or "no", a bucket that ends up
holding exactly one element (a pure bucket) lets IBF answer "yes"
definitively, and lets it recover its entire contents by repeatedly peeling
pure buckets off the directory.

The directory size and the number of hash seeds per element are fixed at
construction and never grow; packing in more elements than the directory
was sized for degrades Contains toward "maybe" and can make ListAll fail.
*/
package IBF
