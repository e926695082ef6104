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

// Package config holds globally available configuration: defaults compiled
// into evalconfig.go and searchconfig.go, overridden by a TOML file read at
// startup. Call Setup once, before starting a search; settings
// must not change while a search is running.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lkaiser/corechess/internal/util"
)

var (
	// ConfFile is the path to the TOML config file, relative to the working
	// directory unless absolute.
	ConfFile = "./config.toml"

	// Settings is the global configuration, populated by Setup.
	Settings conf

	initialized = false
)

type conf struct {
	Search searchConfiguration
	Eval   evalConfiguration
}

// Setup reads ConfFile if present, falling back to the compiled-in
// defaults for anything the file doesn't set. Safe to call more than once;
// only the first call has any effect.
func Setup() {
	if initialized {
		return
	}
	path, err := util.ResolveFile(ConfFile)
	if err != nil {
		log.Println("config file not found, using defaults:", err)
	} else if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("could not parse config file, using defaults:", err)
	}
	initialized = true
}

// String renders the current settings, one line per field, via reflection -
// handy for a startup log line or a "config" debug command.
func (c *conf) String() string {
	var b strings.Builder
	b.WriteString("Search config:\n")
	writeFields(&b, reflect.ValueOf(&c.Search).Elem())
	b.WriteString("Eval config:\n")
	writeFields(&b, reflect.ValueOf(&c.Eval).Elem())
	return b.String()
}

func writeFields(b *strings.Builder, v reflect.Value) {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		fmt.Fprintf(b, "  %-24s %-6s = %v\n", t.Field(i).Name, f.Type(), f.Interface())
	}
}
