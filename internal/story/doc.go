// Package story extracts spoken lines from story scripts and arranges them
// into titled episodes grouped by memory group.
//
// Script steps are read in numeric step order and only non-empty say texts
// are kept, with namecodes resolved. Stories without any line are dropped.
// Titles come from the memory template whose story field matches the story
// key under case folding; the memory id then selects the containing group.
package story
