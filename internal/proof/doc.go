// Package proof owns the mutable proof tree and drives rule
// application. A Session holds exactly one tree and one fresh-variable
// generator; starting a new proof replaces both. Mutation is
// single-writer: each call runs to completion and either fully applies
// a rule or leaves the tree untouched.
package proof
