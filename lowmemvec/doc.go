package lowmemvec

/*

# Low memory sequences addressed by single byte positions

Vec is the backing store for small sorted collections that live inside every
node of a trie. Most nodes hold a handful of elements and many hold none, so
the sequence optimizes for footprint rather than append throughput:

- the zero value holds no allocation
- capacity grows exactly while the sequence is small, then by a quarter
- removals give memory back once capacity exceeds twice the length
- positions are uint8, so a Vec never holds more than MaxLen elements

Vec does not sort anything itself. Callers keep elements ordered by key and use
BinarySearchByKey to find either the matching position or the position that
keeps the order on insert.

Positional access outside [0, Len()) is a programming error and panics, in the
same way slice indexing does. Get is the bounds-checked alternative.

*/
