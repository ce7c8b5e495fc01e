package xorhash

import (
	"bytes"
	"github.com/stretchr/testify/require"
	"testing"
	"testing/quick"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

func TestCollide_Property(t *testing.T) {
	prop := func(msg []byte) bool {
		m := Collide(msg)
		return !bytes.Equal(m, msg) && Sum256(m) == Sum256(msg)
	}
	require.NoError(t, quick.Check(prop, &quick.Config{MaxCount: 500}))
}

func TestCollide_Lengths(t *testing.T) {
	for _, n := range []int{0, 1, 31, 32, 33, 63, 64, 100, 10007, 1 << 14} {
		msg := stream(t, byte(n), n)
		m := Collide(msg)
		require.Len(t, m, CollisionSize(n), "length %d", n)
		require.Equal(t, Sum256(msg), Sum256(m), "length %d", n)
		require.False(t, bytes.Equal(msg, m), "length %d", n)
	}
}

func TestCollide_One(t *testing.T) {
	msg := []byte{1}
	m := Collide(msg)
	require.Len(t, m, 256*BlockSize+1)

	unit := make([]byte, BlockSize)
	unit[0] = 1
	require.Equal(t, bytes.Repeat(unit, 256), m[:256*BlockSize])
	require.Equal(t, msg, m[256*BlockSize:])

	want := unhex(t, "6b09e667bb67ae853c6ef372a54ff53a510e527f9b05688c1f83d9ab5be0cd1a")
	require.Equal(t, want, Sum256(msg))
	require.Equal(t, want, Sum256(m))
}

/* Repeating the zero-padded message 256 times and nothing else (the shape the attack is often
described with) does not collide once the message needs a length byte: the repetitions cancel
out completely and leave the initial state, which the original message never hashes to. */
func TestCollide_CycleAloneIsNotACollision(t *testing.T) {
	msg := []byte{1}
	require.NotEqual(t, Sum256(msg), Sum256(Cycle(msg)))
	require.Equal(t, iv, Sum256(Cycle(msg)))
}

/* For block-aligned messages the repeated unit is the message itself rather than nothing. */
func TestCollide_Aligned(t *testing.T) {
	msg := stream(t, 9, 2*BlockSize)
	c := Cycle(msg)
	require.Equal(t, bytes.Repeat(msg, 256), c)
	require.Equal(t, iv, Sum256(c))
	require.Equal(t, Sum256(msg), Sum256(Collide(msg)))
}

func TestCollide_Empty(t *testing.T) {
	m := Collide(nil)
	require.Equal(t, make([]byte, 256*BlockSize), m)
	require.Equal(t, iv, Sum256(m))
	require.Equal(t, Sum256(nil), Sum256(m))
}

func TestCycle_Lengths(t *testing.T) {
	for _, n := range []int{1, 31, 33, 63, 65, 10001} {
		msg := stream(t, 5, n)
		c := Cycle(msg)
		require.Len(t, c, 256*((n+BlockSize-1)/BlockSize)*BlockSize, "length %d", n)
		require.Equal(t, iv, Sum256(c), "length %d", n)
	}
}

func TestCycle_PreservesAnyState(t *testing.T) {
	prop := func(prefix, msg []byte) bool {
		/* Align the prefix so the cycle starts on a block boundary. */
		prefix = prefix[:len(prefix)/BlockSize*BlockSize]
		d := New()
		d.Write(prefix)
		before := d.Sum(nil)
		d.Write(Cycle(msg))
		return bytes.Equal(before, d.Sum(nil))
	}
	require.NoError(t, quick.Check(prop, nil))
}

func TestCollide_DoesNotAliasInput(t *testing.T) {
	msg := []byte("Hello, World!")
	m := Collide(msg)
	m[0], m[len(m)-1] = 0xff, 0xff
	require.Equal(t, []byte("Hello, World!"), msg)
}

func BenchmarkCollide(b *testing.B) {
	msg := make([]byte, 1<<10)
	b.SetBytes(1 << 10)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Collide(msg)
	}
}
