package compat

// Rule is one known-good alignment of Solana, Anchor and Rust releases.
type Rule struct {
	Solana string `json:"solana"`
	Anchor string `json:"anchor"`
	Rust   string `json:"rust"`
}

// Rules is the compiled-in compatibility table. Matching walks it in
// order and takes the first hit, so entries must stay sorted newest
// first; Latest relies on the same ordering.
var Rules = []Rule{
	{Solana: "2.1.0", Anchor: "0.31.0", Rust: "1.84.1"},
	{Solana: "1.18.17", Anchor: "0.30.1", Rust: "1.76.0"},
	{Solana: "1.18.8", Anchor: "0.30.0", Rust: "1.76.0"},
	{Solana: "1.17.0", Anchor: "0.29.0", Rust: "1.69.0"},
	{Solana: "1.16.0", Anchor: "0.28.0", Rust: "1.68.0"},
	{Solana: "1.15.0", Anchor: "0.27.0", Rust: "1.67.0"},
	{Solana: "1.14.0", Anchor: "0.26.0", Rust: "1.66.0"},
}

// Latest returns the newest rule in the table.
func Latest(rules []Rule) Rule {
	return rules[0]
}
