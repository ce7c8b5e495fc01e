package xorhash

import "bytes"

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// A second-preimage generator for XorHash. None of it calls into the digest; it only relies on
// XorHash's 32-byte blocks, and on each state byte evolving on its own under a mapping whose
// order divides 256.

const cycle = 256

// Cycle returns msg zero-padded to a whole number of blocks and repeated 256 times. An all-zero
// block stands in for an empty msg. The result is block aligned, so it is hashed without a
// length byte, and it walks every state byte through complete cycles of its mapping: whatever the
// state was before it, it is that again afterwards. In particular its own digest is the
// initial state.
func Cycle(msg []byte) []byte {
	unit := make([]byte, padLen(len(msg)))
	copy(unit, msg)
	return bytes.Repeat(unit, cycle)
}

// Collide returns a message different from msg with the same XorHash digest: Cycle(msg)
// followed by msg itself.
func Collide(msg []byte) []byte {
	return append(Cycle(msg), msg...)
}

// CollisionSize is len(Collide(msg)) for a msg of n bytes; callers should budget for it.
func CollisionSize(n int) int { return cycle*padLen(n) + n }

func padLen(n int) int {
	if n == 0 {
		return BlockSize
	}
	return (n + BlockSize - 1) / BlockSize * BlockSize
}
