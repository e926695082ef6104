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

// Package logging sets up op/go-logging backends shared by every package in
// the engine. Each caller gets its own named *logging.Logger so log lines can
// be filtered per subsystem (types, position, search, hashtable, ...).
package logging

import (
	"os"

	"github.com/op/go-logging"
)

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{shortfile}:%{shortfunc} %{level:-7.7s}:  %{message}`,
)

// Level is the process-wide log level that GetLog and GetFileLog apply to
// the stdout backends they create; a change affects only later calls.
var Level = logging.INFO

// GetLog returns a named logger backed by stdout, formatted with time, call
// site and level. Each call builds a fresh stdout backend at the current
// Level for the logger it returns.
func GetLog(name string) *logging.Logger {
	logger := logging.MustGetLogger(name)
	backend := logging.NewLogBackend(os.Stdout, "", 0)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(Level, "")
	logger.SetBackend(leveled)
	return logger
}

// GetFileLog returns a named logger that writes to both stdout and the given
// file, used by subsystems (search trace, TT aging) that want a persistent
// record in addition to the console.
func GetFileLog(name string, file *os.File) *logging.Logger {
	logger := logging.MustGetLogger(name)
	stdoutBackend := logging.AddModuleLevel(logging.NewBackendFormatter(logging.NewLogBackend(os.Stdout, "", 0), format))
	stdoutBackend.SetLevel(Level, "")
	fileBackend := logging.AddModuleLevel(logging.NewBackendFormatter(logging.NewLogBackend(file, "", 0), format))
	fileBackend.SetLevel(logging.DEBUG, "")
	logging.SetBackend(stdoutBackend, fileBackend)
	return logger
}
