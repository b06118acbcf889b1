// Copyright 2020 Andrea Viganò. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the settings shared by the rn package and its
// clients: the nesting-depth bound enforced at construction and the
// rendering style. The zero value is ready to use.
package config

const defaultMaxDepth = 32

type Config struct {
	maxDepth int
	ascii    bool
}

// MaxDepth is the deepest nested-real chain construction accepts before
// reporting a depth error.
func (c *Config) MaxDepth() int {
	if c.maxDepth == 0 {
		return defaultMaxDepth
	}
	return c.maxDepth
}

func (c *Config) SetMaxDepth(n int) {
	c.maxDepth = n
}

// ASCII selects the pure-ASCII rendering ("rt3(5)") over the default
// mathematical one ("³√5").
func (c *Config) ASCII() bool {
	return c.ascii
}

func (c *Config) SetASCII(on bool) {
	c.ascii = on
}
