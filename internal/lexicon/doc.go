// Package lexicon groups aliases into domains, stems and hashes each
// alias's surface terms via the term model, computes each domain's
// downstream fingerprint set, and hands ingestion domains' aliases to a
// tokenizer. Lexicon holds no back-reference into the tokenizer it feeds.
package lexicon
