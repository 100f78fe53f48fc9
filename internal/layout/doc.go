// Package layout detects which directory-layout convention an Odoo codebase
// follows.
//
// Each supported convention (Trobz, Camptocamp, odoo.sh, Doodba) has a
// [Detector] that probes the codebase root for its signature, such as a
// marker directory or a labeled Dockerfile, and on a match reports the
// directories the convention designates as addon roots plus the Odoo core
// checkout. A terminal
// [Generic] fallback accepts any tree containing at least one
// __manifest__.py file.
//
// [Chain.Detect] evaluates the detectors in a fixed order with
// first-match-wins semantics. Detection is read-only: detectors probe
// existence, list directories, and read small marker files, and they
// swallow their own I/O failures as no-match rather than surfacing them.
// The only failure a chain reports is [ErrNoLayout], when even the fallback
// finds nothing.
package layout
