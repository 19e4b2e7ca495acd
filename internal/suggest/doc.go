// Package suggest ranks known alias surface text against an unrecognized
// query word using Jaro-Winkler similarity, for "did you mean" output in
// the CLI's tokenize command when the tokenizer emits an unknown token.
package suggest
