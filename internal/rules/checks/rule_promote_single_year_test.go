package checks

import (
	"testing"

	"copymedic/internal/rules"
)

func TestPromoteSingleYear(t *testing.T) {
	rule := &PromoteSingleYearRule{}
	rw, err := rule.Compile(rules.Env{ThisYear: 2024, LastYear: 2023, Holder: "Apple"})
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	tests := []struct {
		name    string
		line    string
		want    string
		matched bool
	}{
		{
			name:    "plain single year",
			line:    "# Copyright (c) 2023 Apple Inc.",
			want:    "# Copyright (c) 2023-2024 Apple Inc.",
			matched: true,
		},
		{
			name:    "suffix preserved",
			line:    " * Copyright (c) 2023 Apple Inc. All rights reserved.",
			want:    " * Copyright (c) 2023-2024 Apple Inc. All rights reserved.",
			matched: true,
		},
		{
			name:    "range ending in last year is not single",
			line:    "Copyright (c) 2020-2023 Apple Inc.",
			want:    "Copyright (c) 2020-2023 Apple Inc.",
			matched: false,
		},
		{
			name:    "range starting at last year is not single",
			line:    "Copyright (c) 2023-2024 Apple Inc.",
			want:    "Copyright (c) 2023-2024 Apple Inc.",
			matched: false,
		},
		{
			name:    "older single year is left alone",
			line:    "Copyright (c) 2021 Apple Inc.",
			want:    "Copyright (c) 2021 Apple Inc.",
			matched: false,
		},
		{
			name:    "case sensitive",
			line:    "COPYRIGHT (C) 2023 APPLE INC.",
			want:    "COPYRIGHT (C) 2023 APPLE INC.",
			matched: false,
		},
		{
			name:    "current single year is left alone",
			line:    "Copyright (c) 2024 Apple Inc.",
			want:    "Copyright (c) 2024 Apple Inc.",
			matched: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, matched := rw.Rewrite(tt.line)
			if matched != tt.matched {
				t.Errorf("matched = %v, want %v", matched, tt.matched)
			}
			if got != tt.want {
				t.Errorf("Rewrite(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestPromoteSingleYearIdempotent(t *testing.T) {
	rule := &PromoteSingleYearRule{}
	rw, err := rule.Compile(rules.Env{ThisYear: 2024, LastYear: 2023, Holder: "Apple"})
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	once, matched := rw.Rewrite("# Copyright (c) 2023 Apple Inc.")
	if !matched {
		t.Fatal("expected first pass to match")
	}
	again, matched := rw.Rewrite(once)
	if matched {
		t.Error("second pass must not match")
	}
	if again != once {
		t.Errorf("second pass changed the line: %q", again)
	}
}

func TestRulePrecedenceOrder(t *testing.T) {
	// Registry order is rule application order; the range rule has to come
	// first so range lines never reach the single-year rule.
	all := rules.List()
	var ids []string
	for _, r := range all {
		ids = append(ids, r.ID())
	}
	if len(ids) != 2 {
		t.Fatalf("expected 2 registered rules, got %v", ids)
	}
	if ids[0] != "extend-year-range" || ids[1] != "promote-single-year" {
		t.Errorf("unexpected rule order: %v", ids)
	}
}
