package main

import (
	"encoding/base64"
	. "fmt"
	"github.com/p7r0x7/vainpath"
	"github.com/p7r0x7/xorhash"
	"github.com/sirupsen/logrus"
	. "github.com/spf13/pflag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const n = "\n"
const success, failure, invalid = 0, 1, 2

/* Hashed when no arguments are given. */
const demo = "Hello, World!"

var warnings = 0
var log = logrus.New()

func main() {
	parse()
	os.Exit(program())
}

// help prints a usage menu. To consistently correctly render this menu in most terminal windows,
// its content should be no wider than 80 columns.
func help() {
	origin, err := os.Executable()
	if err != nil {
		origin = "xorsum" /* Default binary name */
	} else {
		origin = filepath.Base(origin)
	}
	name := vainpath.Trim(origin, "…", 12)
	spaces := strings.Repeat(" ", utf8.RuneCountInString(name)+3)
	Fprint(os.Stderr, yell, "A hash function that is broken on purpose.", zero, n+n+
		"Usage:"+n+
		"  ", name, " [-h]"+n,
		spaces, "[-bct] [--quiet|no-codes] [--strict] -|PATH..."+n,
		spaces, "[-bct] [--quiet|no-codes] [--strict] -s STRING..."+n+n+
			"Options:"+n)
	PrintDefaults()
	Fprint(os.Stderr, n+"Without arguments, the digest of \"", demo, "\" is printed. `-` is treated"+n+
		"as a reference to ", os.Stdin.Name(), " on this platform."+n)
}

// This program is a command-line interface for xorhash: It hashes strings, files, or STDIN, or
// forges colliding messages for them.
func program() int {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: pNoCodes})
	if pQuiet {
		log.SetLevel(logrus.ErrorLevel)
	}

	if pHelp {
		help()
		return success
	}
	if NArg() == 0 && pCollide {
		help()
		return invalid
	} else if NArg() == 0 {
		Print(xorhash.HexString(xorhash.Sum256([]byte(demo))))
		if !pQuiet {
			Print(n)
		}
		return success
	}

	digest := xorhash.New()
	for _, target := range Args() {
		digest.Reset()
		start, delta := time.Now(), ""

		message, err := read(target)
		if err != nil {
			warn(target, err)
			continue
		}
		if pCollide {
			if _, err = os.Stdout.Write(xorhash.Collide(message)); err != nil {
				warn(target, err)
			}
			continue
		}
		_, _ = digest.Write(message)
		sum := digest.Finalize()

		if pTime {
			d := time.Since(start)
			if d.Microseconds() > 99 {
				d = d.Truncate(10 * time.Microsecond)
			}
			delta = " (" + d.String() + ")"
		}

		str := xorhash.HexString(sum)
		if pBase64 {
			str = base64.StdEncoding.EncodeToString(sum[:])
		}
		if pQuiet {
			Print(str, n)
		} else if pString {
			Print(yell, str, zero, `  "`, target, `"`, delta, n)
		} else if pNoCodes {
			Print(str, `  `, filepath.Clean(target), delta, n)
		} else {
			Print(yell, str, zero, `  `, und, vainpath.Simplify(target), zero, delta, n)
		}
	}

	if !pQuiet {
		if warnings == 1 {
			Fprint(os.Stderr, "1 ", purp, "target is a directory or is otherwise inaccessible.", zero, n)
		} else if warnings > 1 {
			Fprint(os.Stderr, warnings, " ", purp, "targets are directories or are otherwise inaccessible.", zero, n)
		}
	}
	if warnings > 0 {
		return failure
	}
	return success
}

func read(target string) ([]byte, error) {
	switch {
	case pString:
		return []byte(target), nil
	case target == "-" || target == os.Stdin.Name():
		defer os.Stdin.Close() /* STDIN should not be reused. */
		return io.ReadAll(os.Stdin)
	default:
		return os.ReadFile(target)
	}
}

func warn(target string, err error) {
	if pStrict {
		panic(err)
	}
	log.WithField("target", target).Warn(err)
	warnings++
}
