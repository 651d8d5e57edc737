// Package ranking implements the score engine: a pure, deterministic
// scorer that rates a transport candidate against traveler preferences, and
// a template that explains why the top candidate won.
package ranking
