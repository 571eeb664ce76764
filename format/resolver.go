// Copyright 2026, the bracefmt contributors
// SPDX-License-Identifier: AGPL-3.0-only

package format

// Resolver hands out pre-rendered argument values and records which of them
// have been used.
//
// Sequential access through [Resolver.Next] and explicit access through
// [Resolver.Get] are independent: Get never moves the cursor, and a slot may
// be used any number of times by either method.
type Resolver struct {
	args   []string
	used   []bool
	cursor int
}

// NewResolver returns a Resolver over args. The slice is not copied.
func NewResolver(args []string) *Resolver {
	return &Resolver{
		args: args,
		used: make([]bool, len(args)),
	}
}

// Len returns the number of arguments.
func (r *Resolver) Len() int {
	return len(r.args)
}

// Next returns the argument at the sequential cursor and advances it.
// It returns false when every argument has already been handed out
// sequentially.
func (r *Resolver) Next() (string, bool) {
	if r.cursor >= len(r.args) {
		return "", false
	}

	i := r.cursor
	r.cursor++
	r.used[i] = true

	return r.args[i], true
}

// Get returns argument i without moving the sequential cursor.
// It returns false when i is out of range.
func (r *Resolver) Get(i int) (string, bool) {
	if i < 0 || i >= len(r.args) {
		return "", false
	}

	r.used[i] = true

	return r.args[i], true
}

// AllUsed reports whether every argument has been used at least once.
func (r *Resolver) AllUsed() bool {
	return r.firstUnused() < 0
}

// firstUnused returns the lowest unused index, or -1.
func (r *Resolver) firstUnused() int {
	for i, u := range r.used {
		if !u {
			return i
		}
	}

	return -1
}
