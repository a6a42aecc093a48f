// Package style defines the planner style descriptors and the defaulting
// resolver that turns an untrusted, possibly partial style structure into a
// fully resolved value.
//
// # Variants
//
// Two descriptor shapes coexist:
//
//   - [Bundle]: the six-page collection (cover, daily, weekly, monthly,
//     yearly, notes).
//   - [Single]: the single weekly planner page of the first tool generation.
//
// Each has its own default table ([DefaultBundle], [DefaultSingle]). A [Raw]
// structure is resolved into one of them with [ResolveBundle] or
// [ResolveSingle]; [Resolve] dispatches on a [Variant] tag.
//
// # Defaulting
//
// Resolution never fails. Every field is resolved by a small pure function
// (raw value, default) -> resolved value:
//
//   - missing or wrongly typed fields take the default table value
//   - malformed colors take the field's default color
//   - empty section lists take the default list
//   - weekly lists shorter than seven entries are replaced by the canonical
//     seven-day list, longer lists keep their first seven entries
//
// Each substitution is reported as a [Diagnostic] so callers can log it.
//
//	raw, err := style.Decode(data)
//	if err != nil {
//	    logger.Warn("style is not a JSON object, using defaults", "err", err)
//	}
//	s, diags := style.ResolveBundle(raw)
//	diags.Log(logger)
package style
