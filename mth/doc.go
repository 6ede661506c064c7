/*
Package mth implements the Merkle Tree Hash construction used by certificate
transparency style logs, together with inclusion (audit path) proofs and
their verification.

# Construction

The root of a leaf sequence D[n] is defined recursively:

	MTH({d0}) = d0
	MTH(D[n]) = combine(MTH(D[0:k]), MTH(D[k:n]))

where k is the largest power of two strictly less than n. A single leaf is
its own root and no combine is applied to it. The split rule is the only
structural decision in the whole construction: because k is recomputed for
every sub range, sequences whose length is not a power of two are handled
directly, without padding the leaves or duplicating the last one. The right
hand sub tree is simply smaller (and possibly unbalanced) when n is not a
power of two.

The same split rule drives proof generation. The audit path for leaf i is
the sequence of sibling sub tree roots collected while unwinding the split
recursion, ordered from the sibling nearest the leaf out to the sibling
nearest the root. There is exactly one path entry per split encountered on
the way down to the leaf, so path length is the recursion depth for i.

# Layout of the package

The low level api is a set of free functions over a leaf slice: GetRoot,
InclusionProof, LeafIndex and VerifyInclusion. These place a small burden of
knowledge on the caller (the leaf slice must not change between calls that
are expected to agree with each other). Tree is the opinionated surface on
top: it freezes the leaf sequence at construction, after which every query
is a pure read and any number of goroutines can share one Tree.

# Direction free proofs

Audit paths produced here carry no left/right direction bits. The verifier
folds the leaf through the path as combine(accumulator, sibling) without
knowing which side the sibling was originally on. That is only sound when
the combiner is commutative, which every combiner shipped with this package
guarantees by hashing the pair in canonical byte order. A combiner that is
sensitive to argument order still produces a well defined root, but makes
VerifyInclusion unsound for any leaf whose true position put it on the
other side of a combine. The commutativity requirement is part of the
Combiner contract, not a soft convention.
*/
package mth
