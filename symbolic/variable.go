// SPDX-License-Identifier: MIT

// Package symbolic: Variable identity and the insertion-ordered Variables set.
// This file declares Variable (a comparable value usable as a map key) and
// Variables, the duplicate-free, order-preserving variable collection used
// for parameter partitions and variable-set queries.

package symbolic

// Variable is a named symbolic unknown. Its identity is its name: two
// Variable values with the same name are the same variable everywhere in
// this module. The zero value (empty name) is valid but discouraged.
type Variable struct {
	name string
}

// NewVariable returns the variable with the given name.
func NewVariable(name string) Variable { return Variable{name: name} }

// Name returns the variable's name.
func (v Variable) Name() string { return v.name }

// String implements fmt.Stringer.
func (v Variable) String() string { return v.name }

// Variables is a duplicate-free set of variables that remembers insertion
// order. The zero value is an empty, usable set. Variables values are
// immutable once returned from a public constructor or query; sets are
// cheap to copy (the backing storage is shared, never mutated).
type Variables struct {
	list []Variable
	idx  map[Variable]struct{}
}

// NewVariables builds a set from vs, keeping the first occurrence of each
// variable and preserving order.
func NewVariables(vs ...Variable) Variables {
	var s Variables
	for _, v := range vs {
		s.insert(v)
	}
	return s
}

// insert appends v if it is not already present. Internal: only used while
// a set is being built, before it escapes to callers.
func (s *Variables) insert(v Variable) {
	if s.idx == nil {
		s.idx = make(map[Variable]struct{})
	}
	if _, ok := s.idx[v]; ok {
		return
	}
	s.idx[v] = struct{}{}
	s.list = append(s.list, v)
}

// Len reports the number of distinct variables in the set.
func (s Variables) Len() int { return len(s.list) }

// Has reports whether v is a member of the set.
func (s Variables) Has(v Variable) bool {
	_, ok := s.idx[v]
	return ok
}

// List returns the variables in insertion order. The slice is a copy; the
// caller may mutate it freely.
func (s Variables) List() []Variable {
	out := make([]Variable, len(s.list))
	copy(out, s.list)
	return out
}

// IsSubsetOf reports whether every member of s is also a member of o.
// The empty set is a subset of everything.
func (s Variables) IsSubsetOf(o Variables) bool {
	for _, v := range s.list {
		if !o.Has(v) {
			return false
		}
	}
	return true
}

// DisjointWith reports whether s and o share no variable.
func (s Variables) DisjointWith(o Variables) bool {
	for _, v := range s.list {
		if o.Has(v) {
			return false
		}
	}
	return true
}
