// Package configfile adds an optional YAML default-value layer in front of
// [argos.Args]'s hardcoded defaults (spec.md §4.7). A loaded document is a
// flat `owner: value` mapping; each value is fed through the same
// [registry.Converter] environment fallback uses, so a malformed entry
// produces the same templated "Invalid value" message a user would see on
// the command line. Values are tagged [registry.SourceDefault] — spec.md's
// four-bucket [registry.Source] enum has no fifth "config file" bucket (see
// DESIGN.md's Open Question on this).
package configfile
