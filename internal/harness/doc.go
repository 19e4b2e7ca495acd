// Package harness loads YAML relevance fixtures and drives a tokenizer's
// lattice and walker against them, reporting which cases produce the
// expected token sequence.
package harness
