// Copyright (C) 2024 The jparse Authors. All Rights Reserved.

// Package ast defines a tree representation for JSON values, and a parser
// that constructs value trees from JSON source.
package ast

// A Value is an arbitrary JSON value. The concrete types are Null, Bool,
// Number, String, Array, and Object; the set is closed.
type Value interface{ isValue() }

// Null represents the null constant.
type Null struct{}

// A Bool is a Boolean constant, true or false.
type Bool bool

// A Number is a numeric value. All JSON numbers, integer or not, are
// represented in 64-bit floating point.
type Number float64

// A String is a string value, with escape sequences decoded.
type String string

// An Array is an ordered sequence of values.
type Array []Value

// An Object is an ordered collection of key-value members. Keys are not
// required to be unique; duplicates are retained as separate members in
// their order of appearance.
type Object []Member

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

func (Null) isValue()   {}
func (Bool) isValue()   {}
func (Number) isValue() {}
func (String) isValue() {}
func (Array) isValue()  {}
func (Object) isValue() {}

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

// Len reports the number of members in o.
func (o Object) Len() int { return len(o) }

// Find returns the first member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	for i := range o {
		if o[i].Key == key {
			return &o[i]
		}
	}
	return nil
}

// Equal reports whether a and b are structurally equal: the same kind of
// value with equal contents. Arrays are equal iff their elements are equal
// in order; Objects are equal iff their member sequences are equal in order,
// duplicate keys included.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool:
		v, ok := b.(Bool)
		return ok && a == v
	case Number:
		v, ok := b.(Number)
		return ok && a == v
	case String:
		v, ok := b.(String)
		return ok && a == v
	case Array:
		v, ok := b.(Array)
		if !ok || len(a) != len(v) {
			return false
		}
		for i := range a {
			if !Equal(a[i], v[i]) {
				return false
			}
		}
		return true
	case Object:
		v, ok := b.(Object)
		if !ok || len(a) != len(v) {
			return false
		}
		for i := range a {
			if a[i].Key != v[i].Key || !Equal(a[i].Value, v[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}
