/*
 * corechess - a Go chess engine core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 corechess contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package util collects small helpers shared across the engine: branch-free
// integer ops, memory/GC diagnostics, and path resolution for the config and
// log files.
package util

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var out = message.NewPrinter(language.German)

// Abs is a branch-free absolute value for int.
func Abs(n int) int {
	y := n >> 31
	return (n ^ y) - y
}

// Abs16 is a branch-free absolute value for int16.
func Abs16(n int16) int16 {
	y := n >> 15
	return (n ^ y) - y
}

// Min returns the smaller of the two ints.
func Min(x, y int) int {
	if x < y {
		return x
	}
	return y
}

// Max returns the bigger of the two ints.
func Max(x, y int) int {
	if x > y {
		return x
	}
	return y
}

// Nps computes nodes per second from a node count and an elapsed duration,
// padding the duration by one nanosecond to tolerate a zero elapsed time.
func Nps(nodes uint64, elapsed time.Duration) uint64 {
	return uint64(int64(nodes) * time.Second.Nanoseconds() / (elapsed.Nanoseconds() + 1))
}

// MemStat returns a one-line summary of heap usage and GC activity.
func MemStat() string {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	return out.Sprintf("alloc=%d totalAlloc=%d heapAlloc=%d heapObjects=%d numGC=%d",
		mem.Alloc, mem.TotalAlloc, mem.HeapAlloc, mem.HeapObjects, mem.NumGC)
}

// ResolveFile looks for file relative to the working directory, then the
// executable's directory, then the user's home directory, returning the
// first absolute path that exists.
func ResolveFile(file string) (string, error) {
	file = filepath.Clean(file)
	notFound := fmt.Errorf("file could not be found: %s", file)

	if filepath.IsAbs(file) {
		if fileExists(file) {
			return file, nil
		}
		return file, notFound
	}

	if dir, err := os.Getwd(); err == nil {
		if p := filepath.Join(dir, file); fileExists(p) {
			return filepath.Clean(p), nil
		}
	}
	if exe, err := os.Executable(); err == nil {
		if p := filepath.Join(filepath.Dir(exe), file); fileExists(p) {
			return filepath.Clean(p), nil
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		if p := filepath.Join(home, file); fileExists(p) {
			return filepath.Clean(p), nil
		}
	}
	return file, notFound
}

// ResolveFolder is ResolveFile's directory counterpart; it does not create
// the folder.
func ResolveFolder(folder string) (string, error) {
	folder = filepath.Clean(folder)
	notFound := fmt.Errorf("folder could not be found: %s", folder)

	if filepath.IsAbs(folder) {
		if folderExists(folder) {
			return folder, nil
		}
		return folder, notFound
	}

	if dir, err := os.Getwd(); err == nil {
		if p := filepath.Join(dir, folder); folderExists(p) {
			return filepath.Clean(p), nil
		}
	}
	if exe, err := os.Executable(); err == nil {
		if p := filepath.Join(filepath.Dir(exe), folder); folderExists(p) {
			return filepath.Clean(p), nil
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		if p := filepath.Join(home, folder); folderExists(p) {
			return filepath.Clean(p), nil
		}
	}
	return folder, notFound
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil || info == nil {
		return false
	}
	return info.Mode().IsRegular()
}

func folderExists(foldername string) bool {
	info, err := os.Stat(foldername)
	if err != nil || info == nil {
		return false
	}
	return info.Mode().IsDir()
}
