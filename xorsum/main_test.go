package main

import (
	"github.com/p7r0x7/xorhash"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

func TestDemoDigest(t *testing.T) {
	str := xorhash.HexString(xorhash.Sum256([]byte(demo)))
	require.Equal(t, "b26e52d32a93cedcabe05fd6c64ff53a510e527f9b05688c1f83d9ab5be0cd26", str)
}

func TestRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "msg")
	require.NoError(t, os.WriteFile(path, []byte(demo), 0o600))

	msg, err := read(path)
	require.NoError(t, err)
	require.Equal(t, []byte(demo), msg)

	_, err = read(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)

	pString = true
	defer func() { pString = false }()
	msg, err = read(path)
	require.NoError(t, err)
	require.Equal(t, []byte(path), msg)
}

func TestWarn(t *testing.T) {
	defer func() { warnings = 0 }()
	warn("missing", os.ErrNotExist)
	require.Equal(t, 1, warnings)

	pStrict = true
	defer func() { pStrict = false }()
	require.Panics(t, func() { warn("missing", os.ErrNotExist) })
}
