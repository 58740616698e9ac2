// Package compact implements the versioned wire encoding for plans.
//
// A wire string is seven dot-separated ASCII fields:
//
//	0.<T>.<R>.<C>.<SCREW>.<TILES>.<FEATURES>
//
// where 0 is the format version, T is the tile variant (f or l), R
// and C are the decimal cell grid dimensions, and the last three
// fields are unpadded base64url blobs: SCREW is exactly three bytes
// holding the screw measurements in 0.1mm units, TILES packs the RxC
// cell bits and FEATURES packs the (R+1)x(C+1) summit activity bits,
// both row-major with the most significant bit first.
//
// The format stores one bit per summit, not the feature kind. Decode
// recomputes the three eligibility predicates against the decoded
// cell grid and resolves each active bit in a fixed priority order:
// connector, then chamfer, then screw. The predicates are disjoint,
// so the priority order is a defined but normally dead branch; an
// active bit at a summit where no predicate holds decodes as no
// feature. Plans whose features all sit at eligible summits, which
// includes every plan the assembler produces over layouts with
// occupied corner cells, round-trip bit for bit.
package compact
