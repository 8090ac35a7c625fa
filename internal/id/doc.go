// Package id provides device identifier utilities.
//
// This is the canonical source for device ID handling across the fleetgen
// codebase. Device IDs are 128-bit values with the UUID v4 bit layout (the
// version nibble forced to 4 and the variant bits to 10), drawn from a
// caller-supplied randomness source so generation stays reproducible under a
// fixed seed.
//
// On the wire and in profiles a device ID appears in its encoded form: the
// unpadded base64 URL encoding of the raw 16 bytes, always 22 characters.
package id
