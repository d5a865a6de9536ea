// Package resource locates and loads the JSON export tables alcfg consumes.
//
// A Locator scans an ordered list of export directories and picks one copy of
// each table, preferring directories whose path contains a configured
// substring (by default "sharecfgdata"). Load parses a table into records
// keyed by identifier while keeping source order and each record's raw JSON
// text. Top-level arrays are keyed by the first truthy id, skin_id,
// ship_skin_id, or key field of each element.
//
// Missing and malformed tables are classified with ErrMissingResource and
// ErrMalformedResource, reported through the injected Reporter, and returned
// as empty tables so a run can continue.
package resource
