// Package jubjub provides the curve and field parameters the shielded note core
// is built on.
//
// Overview:
//   - Jubjub is the twisted Edwards curve -u^2 + v^2 = 1 + d*u^2*v^2 defined over
//     the BLS12-381 scalar field, d = -(10240/10241). Field and point arithmetic
//     come from gnark-crypto (ecc/bls12-381/twistededwards).
//   - Fs is a scalar modulo r_J, the order of the prime-order subgroup.
//   - Point is an immutable curve point. Every point handed out by Params, by
//     GroupHash or by DecodePoint lies in the prime-order subgroup.
//   - Params holds the fixed generators and the Pedersen hash generators. It is
//     built once by NewParams and is read-only afterwards, so a single *Params
//     can be shared by any number of goroutines.
//
// Encoding:
//   - A point is written as 32 bytes: the v coordinate little-endian, with the
//     top bit of the last byte set when the u coordinate is odd.
//   - A scalar is written as 32 bytes big-endian and must be below r_J.
package jubjub
