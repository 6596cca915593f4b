// Package primitive implements the scalar and byte-range encodings that
// derived codecs delegate to.
//
// Two formats share one Writer and one Reader type:
//
//	Format   u8   u16  u32  u64  f32  f64  bytes
//	──────────────────────────────────────────────────────────
//	fixed    1    2    4    8    4    8    u64 length ‖ data
//	compact  1    LEB  LEB  LEB  4    8    LEB length ‖ data
//
// Multi-byte fixed values and floats are little-endian. A u8 is always a raw
// byte in both formats, so union discriminants stay one byte.
//
// A Writer built with NewLimitedWriter refuses to grow past its limit, which
// is how tests observe sink exhaustion. Readers report short reads as
// out_of_bounds errors carrying the read position.
package primitive
