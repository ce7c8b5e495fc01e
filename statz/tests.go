package main

import (
	"crypto/rand"
	"encoding/binary"
	. "fmt"
	"github.com/p7r0x7/xorhash"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const ints = uint32(5e4)

// meanBias returns the mean deviation of each digest bit from being set in exactly half of sums,
// as a percentage. An ideal hash scores close to 0%; a bit that never changes scores 100%.
func meanBias(sums [][xorhash.Size]byte) float64 {
	var tally [xorhash.Size * 8]int64
	for _, sum := range sums {
		for i := range tally {
			tally[i] += int64(sum[i>>3] >> (7 - i&7) & 1)
		}
	}
	half, total := int64(len(sums))>>1, int64(0)
	for _, v := range tally {
		if v -= half; v < 0 {
			v = -v
		}
		total += v
	}
	return float64(total) / float64(len(tally)) / float64(half) * 100
}

// monobit prints the bias of XorHash over sequential integers and over random 1KiB messages.
// XorHash never carries a change from one byte into another, so both numbers are dismal.
func monobit() {
	integers, random := make([][xorhash.Size]byte, ints), make([][xorhash.Size]byte, ints)
	iBytes, rBytes := make([]byte, 4), make([]byte, 1024)
	for i := range integers {
		binary.BigEndian.PutUint32(iBytes, uint32(i))
		integers[i] = xorhash.Sum256(iBytes)
		if _, err := rand.Read(rBytes); err != nil {
			panic(err)
		}
		random[i] = xorhash.Sum256(rBytes)
	}
	Printf("Integer input Monobit test:  %7.3f%%\n", meanBias(integers))
	Printf("Random input Monobit test:   %7.3f%%\n\n", meanBias(random))
}
