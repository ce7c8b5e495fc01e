package xorhash

import "hash"

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// This file contains a Go-specific API implementing the standard hash.Hash interface.

// Digest is a running XorHash computation. The zero value is not usable; call New.
type Digest struct {
	state  [Size]byte
	blocks uint64 /* Diagnostic only; never mixed into the state. */
	carry  []byte
	final  bool
}

var _ hash.Hash = (*Digest)(nil)

func New() *Digest {
	d := &Digest{carry: make([]byte, 0, BlockSize)}
	d.Reset()
	return d
}

func (d *Digest) Size() int { return Size }

func (d *Digest) BlockSize() int { return BlockSize }

// Blocks reports how many full blocks have been compressed so far.
func (d *Digest) Blocks() uint64 { return d.blocks }

func (d *Digest) Reset() {
	d.state, d.blocks, d.carry, d.final = iv, 0, d.carry[:0], false
}

// Write never fails. Bytes that do not yet fill a block are held until the next Write or Sum, so
// how a message is split across calls does not affect its digest.
func (d *Digest) Write(buf []byte) (int, error) {
	if d.final {
		panic("xorhash: Write after Finalize")
	}
	count := len(buf)
	if len(d.carry) > 0 {
		n := copy(d.carry[len(d.carry):BlockSize], buf)
		d.carry, buf = d.carry[:len(d.carry)+n], buf[n:]
		if len(d.carry) < BlockSize {
			return count, nil
		}
		d.consume((*[BlockSize]byte)(d.carry))
		d.carry = d.carry[:0]
	}

	for len(buf) >= BlockSize {
		d.consume((*[BlockSize]byte)(buf))
		buf = buf[BlockSize:]
	}
	d.carry = append(d.carry, buf...)
	return count, nil
}

// Sum appends the current digest to buf. The running state is left as it was.
func (d *Digest) Sum(buf []byte) []byte {
	sum := d.checkSum()
	return append(buf, sum[:]...)
}

// Finalize returns the digest and retires d; further Writes panic until Reset is called.
func (d *Digest) Finalize() [Size]byte {
	sum := d.checkSum()
	d.final = true
	return sum
}

func (d *Digest) consume(blk *[BlockSize]byte) {
	compress(&d.state, blk)
	d.blocks++
}

func (d *Digest) checkSum() [Size]byte {
	state := d.state
	/* A block-aligned message, empty included, gets no length byte at all. */
	if len(d.carry) > 0 {
		blk := padBlock(d.carry)
		compress(&state, &blk)
	}
	return state
}
