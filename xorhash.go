package xorhash

import (
	"encoding/hex"
	"math/bits"
)

// N.B.: This algorithm is deliberately broken.
// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// The following collection of functions backend the reference Go implementation of the XorHash
// teaching algorithm. XorHash is NOT a cryptographic hash: its compression function never mixes
// one byte position with another, and Collide in collide.go exploits that.

const (
	Size      = 32
	BlockSize = 32
	rounds    = 80
	/* Every round of compress() XORs a block byte into its state byte and rotates the result left
	by one bit. Rotation distributes over XOR, so after `rounds` rounds the state byte has been
	rotated by rounds%8 = 0 bits and each of the 8 rotations of the block byte has been XORed in
	rounds/8 = 10 times; all of it cancels. What remains is the final addition, so each state byte
	simply accumulates the sum of the block bytes at its position, mod 256. */
)

/* The first 32 bytes of SHA-256's initial hash value; any public constant would do. */
var iv = [Size]byte{
	0x6a, 0x09, 0xe6, 0x67, 0xbb, 0x67, 0xae, 0x85,
	0x3c, 0x6e, 0xf3, 0x72, 0xa5, 0x4f, 0xf5, 0x3a,
	0x51, 0x0e, 0x52, 0x7f, 0x9b, 0x05, 0x68, 0x8c,
	0x1f, 0x83, 0xd9, 0xab, 0x5b, 0xe0, 0xcd, 0x19}

// Sum256 returns the XorHash digest of msg. It is defined for every input, including the empty
// one, whose digest is the initial state.
func Sum256(msg []byte) [Size]byte {
	d := New()
	d.Write(msg)
	return d.Finalize()
}

// HexString renders a digest as 64 lowercase hexadecimal characters.
func HexString(sum [Size]byte) string { return hex.EncodeToString(sum[:]) }

func compress(state *[Size]byte, blk *[BlockSize]byte) {
	for i := range state {
		/* Positions never read each other; this is the weakness, and it must stay that way. */
		s, b := state[i], blk[i]
		for r := rounds; r > 0; r-- {
			s = bits.RotateLeft8(s^b, 1)
		}
		state[i] = s + b
	}
}

// padBlock builds the final block of a message from its trailing len(tail) < BlockSize bytes:
// the tail, zero-filled, with its last byte overwritten by len(tail).
func padBlock(tail []byte) (blk [BlockSize]byte) {
	n := copy(blk[:], tail)
	blk[BlockSize-1] = byte(n)
	return blk
}
