// Package roster normalizes the ship skin template into ship, skin, and word
// records and derives the combined document and its reduced views.
//
// Ships are ordered by numeric source key and given a dense id2 rank. Skins
// are renumbered sequentially over records that carry a painting key. Word
// records keep their source order and gain a linked_ship_id back-reference.
// Every string is passed through namecode substitution before use.
package roster
