package u8map

/*

# Ordered byte-keyed maps for trie children

Map is the children container of a compressed trie node. Keys are single bytes
(0..255) and entries are kept in a contiguous array sorted ascending by key, so
every keyed operation is one binary search followed by at most one positional
insert or remove.

## Absent means empty

A Map holds either no backing sequence at all, or a non-empty one. Any
mutation that empties the sequence releases it, so the empty state always costs
a single nil pointer. Fresh maps, drained maps and the source of a Take are
indistinguishable from the zero value.

## Insert never overwrites

Insert reports false and discards the offered value when the key is already
present. Callers use this to detect duplicate children. GetOrCreate is the way
to reach an existing entry or create it in one search.

## Iteration order

Values, Keys and All yield entries in ascending key order. Drain consumes the
map by popping from the end of the backing sequence, so it yields entries in
descending key order. Both orders are part of the contract.

## Aliasing

Pointers returned by Get, GetMut, GetOrCreate, Values and All point into the
backing array. They are valid only until the next Insert, Remove, GetOrCreate
miss, Take or Drain on the same map. Nothing enforces this; the owning trie
must not hold one across a mutation.

A Map is not safe for concurrent use.

## Copying

A Map must not be copied once used. A copy shares the backing sequence with the
original, and removing the last entry through one copy would leave the other
holding an empty sequence. Hand entries over with Take, which leaves the source
empty and unallocated. go vet reports copies through the copylocks check.

*/
