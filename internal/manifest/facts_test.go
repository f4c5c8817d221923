package manifest

import "testing"

func TestVersionFacts_Complete(t *testing.T) {
	tests := []struct {
		name  string
		facts VersionFacts
		want  bool
	}{
		{"all set", VersionFacts{Rust: "1.76.0", Solana: "1.18.17", Anchor: "0.30.1"}, true},
		{"missing anchor", VersionFacts{Rust: "1.76.0", Solana: "1.18.17"}, false},
		{"missing rust", VersionFacts{Solana: "1.18.17", Anchor: "0.30.1"}, false},
		{"empty", VersionFacts{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.facts.Complete(); got != tt.want {
				t.Errorf("Complete() = %v, want %v", got, tt.want)
			}
			if got := tt.facts.NeedsMoreInfo(); got != !tt.want {
				t.Errorf("NeedsMoreInfo() = %v, want %v", got, !tt.want)
			}
		})
	}
}

func TestVersionFacts_Merge(t *testing.T) {
	tests := []struct {
		name  string
		base  VersionFacts
		other VersionFacts
		want  VersionFacts
	}{
		{
			name:  "fills unset fields",
			base:  VersionFacts{Rust: "1.76.0", Source: "/a/rust-toolchain"},
			other: VersionFacts{Solana: "1.18.17", Anchor: "0.30.1"},
			want:  VersionFacts{Rust: "1.76.0", Solana: "1.18.17", Anchor: "0.30.1", Source: "/a/rust-toolchain"},
		},
		{
			name:  "never overwrites",
			base:  VersionFacts{Solana: "1.18.17"},
			other: VersionFacts{Solana: "2.1.0"},
			want:  VersionFacts{Solana: "1.18.17"},
		},
		{
			name:  "wildcard solana never fills",
			base:  VersionFacts{},
			other: VersionFacts{Solana: Wildcard, Anchor: "0.30.1"},
			want:  VersionFacts{Anchor: "0.30.1"},
		},
		{
			name:  "source travels with rust",
			base:  VersionFacts{},
			other: VersionFacts{Rust: "1.69.0", Source: "/sub/rust-toolchain.toml"},
			want:  VersionFacts{Rust: "1.69.0", Source: "/sub/rust-toolchain.toml"},
		},
		{
			name:  "source kept when rust already set",
			base:  VersionFacts{Rust: "1.76.0", Source: "/root/rust-toolchain"},
			other: VersionFacts{Rust: "1.69.0", Source: "/sub/rust-toolchain"},
			want:  VersionFacts{Rust: "1.76.0", Source: "/root/rust-toolchain"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.base.Merge(tt.other); got != tt.want {
				t.Errorf("Merge() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestVersionFacts_Fill(t *testing.T) {
	tests := []struct {
		name  string
		base  VersionFacts
		other VersionFacts
		want  VersionFacts
	}{
		{
			name:  "first writer wins",
			base:  VersionFacts{Anchor: "0.30.1"},
			other: VersionFacts{Anchor: "0.29.0", Solana: "1.18.17"},
			want:  VersionFacts{Anchor: "0.30.1", Solana: "1.18.17"},
		},
		{
			name:  "wildcard fills within a directory",
			base:  VersionFacts{},
			other: VersionFacts{Solana: Wildcard},
			want:  VersionFacts{Solana: Wildcard},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.base.Fill(tt.other); got != tt.want {
				t.Errorf("Fill() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
