// Package paths provides path predicates and resolution utilities shared by
// the layout detectors and the addons-path aggregator.
//
// # Canonicalization
//
// [Resolve] is the canonical form used everywhere a path participates in
// deduplication: absolute, cleaned, symlinks evaluated. Two spellings of the
// same real directory (one direct, one through a symlink) resolve to the same
// string and therefore collapse into a single addons_path entry.
//
// # User input expansion
//
// The CLI delivers --addons-dirs/--addons-dir values comma-separated, and the
// entries may contain ~ prefixes and glob patterns (including **). The
// expansion pipeline is [SplitList] then [ExpandPatterns]; the aggregator
// receives only concrete paths and performs no further string parsing.
//
// # XDG Base Directory Compliance
//
// [ConfigHome] wraps github.com/adrg/xdg so the user-level configuration file
// is looked up under ~/.config on Linux and the platform-appropriate
// directory elsewhere.
package paths
