// Package search implements the layered directory search used to find a
// native product on the host: an explicit directory override, then an
// explicit install root, then install roots discovered under well-known
// system locations. Every tier is a pure function of an environment snapshot
// and the filesystem, so tests inject both.
package search
