// Package auxtable converts the auxiliary exports (chat language, skill
// display, activity ship groups, skill data, game tips) into sections of one
// consolidated document.
//
// Each table is identified by a TableID and converted by the function
// registered for it. Converters project a fixed field list out of every
// record with gjson, resolve namecodes in string content, and drop fields
// the record does not carry. Every level of the consolidated document is
// key-sorted: section names, record keys (lexicographically, so "10" sorts
// before "9"), and field names.
package auxtable
