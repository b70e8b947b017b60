// Package manifest reads, merges, validates, and writes package.json
// manifests. Objects keep their key order so generated files stay diffable;
// dependency maps are key-sorted after every merge.
package manifest
