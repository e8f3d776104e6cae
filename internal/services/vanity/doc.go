// Package vanity searches for identities whose LXMF address carries a chosen
// hex prefix or postfix.
//
// The search brute-forces fresh identities across a worker pool until one
// matches the nibble patterns, reporting attempt rates once per second. An
// empty pattern makes the first generated identity win, which doubles as
// plain identity generation.
package vanity
