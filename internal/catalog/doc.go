// Package catalog loads alias/domain definitions from YAML files on disk
// into the structures the lexicon expects.
package catalog
