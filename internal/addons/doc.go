// Package addons aggregates the final addons_path for an Odoo codebase.
//
// [Resolve] takes the codebase root plus any explicit overrides and
// produces a [Result]: the Odoo core addon directories followed by the
// deduplicated addon-repository roots. When no override is supplied the
// layout detection chain picks the candidate roots; supplying any override
// bypasses detection entirely.
//
// Every path in a Result is absolute with symlinks resolved, so two
// spellings of the same directory collapse into one entry. Repository
// order is a contract: detected candidates are sorted for deterministic
// output, explicit candidates keep the order the user gave them (Odoo's
// addons_path is a precedence list, so manual order is meaningful).
package addons
