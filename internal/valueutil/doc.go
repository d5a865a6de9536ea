// Package valueutil holds small helpers for decoded JSON values: coercion to
// text and integers, truthiness, the numeric key ordering every export table
// is sorted by, and an insertion-ordered object for output documents.
package valueutil
