package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDeriveOutput(t *testing.T) {
	tests := []struct {
		in, ext, want string
	}{
		{in: "pad.json", ext: "stl", want: "pad.stl"},
		{in: "plans/desk.plan.json", ext: "stl", want: "plans/desk.plan.stl"},
		{in: "pad", ext: "stl", want: "pad.stl"},
		{in: "pad.stl", ext: "json", want: "pad.json"},
	}

	for _, tt := range tests {
		if got := deriveOutput(tt.in, tt.ext); got != tt.want {
			t.Errorf("deriveOutput(%q, %q) = %q, want %q", tt.in, tt.ext, got, tt.want)
		}
	}
}

func TestLoadPlanMissingFile(t *testing.T) {
	_, err := loadPlan(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadPlanRejectsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := loadPlan(path)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	if !strings.Contains(err.Error(), "invalid plan file") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestLoadPlanRejectsInvalidPlan(t *testing.T) {
	// 1x1 cell grid paired with a 1x1 summit grid; summits must be 2x2.
	doc := `{
  "cells": [["tile"]],
  "summits": [[{"kind": "none"}]],
  "variant": "full",
  "screw_size": {"diameter": 4.2, "head_diameter": 8.0, "head_inset": 1.0}
}`
	path := filepath.Join(t.TempDir(), "ragged.json")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := loadPlan(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "invalid plan file") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestLoadPlanRejectsUnknownCell(t *testing.T) {
	doc := `{
  "cells": [["lava"]],
  "summits": [[{"kind": "none"}, {"kind": "none"}], [{"kind": "none"}, {"kind": "none"}]],
  "variant": "full",
  "screw_size": {"diameter": 4.2, "head_diameter": 8.0, "head_inset": 1.0}
}`
	path := filepath.Join(t.TempDir(), "lava.json")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadPlan(path); err == nil {
		t.Fatal("expected error for unknown cell state")
	}
}
