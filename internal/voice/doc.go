// Package voice builds the per-group voice event lookup: for each ship group,
// which skin display name owns each synthesized voice slot (main_1, get,
// touch_1_2, ...).
//
// Display names have namecode placeholders resolved when Options.Codes is
// set. With no namecode table the template's name is written verbatim, so
// callers that want the raw export names leave Codes nil.
package voice
