// Package namecode resolves {namecode:N} placeholders embedded in exported
// text.
//
// A Table maps numeric codes to display names, built from the name_code
// export. Substitute walks an arbitrary decoded JSON value and returns a copy
// with every resolvable placeholder replaced; placeholders whose code is not
// in the table are kept verbatim. Inputs are never mutated.
package namecode
