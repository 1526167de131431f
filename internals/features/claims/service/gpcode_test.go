package service

import "testing"

func TestResolveGPCode(t *testing.T) {
	// a claim in MENDORI, tehsil Phanda
	code, ok := ResolveGPCode("Phanda", "MENDORI")
	if !ok || code != "GS-PHN-236194" {
		t.Errorf("ResolveGPCode(Phanda, MENDORI) = (%q, %v), want (GS-PHN-236194, true)", code, ok)
	}

	// name matching is case-insensitive
	code, ok = ResolveGPCode("phanda", "mendori")
	if !ok || code != "GS-PHN-236194" {
		t.Errorf("case-insensitive resolve = (%q, %v)", code, ok)
	}

	code, ok = ResolveGPCode("Berasia", "JAMUSAR")
	if !ok || code != "GS-BRS-134252" {
		t.Errorf("ResolveGPCode(Berasia, JAMUSAR) = (%q, %v), want (GS-BRS-134252, true)", code, ok)
	}

	// a GP name that exists only under the other subdivision must miss
	if code, ok = ResolveGPCode("Berasia", "MENDORI"); ok || code != "" {
		t.Errorf("MENDORI under Berasia = (%q, %v), want miss", code, ok)
	}

	// unknown tehsil and unknown GP both leave the claim unassigned
	if _, ok = ResolveGPCode("Goharganj", "MENDORI"); ok {
		t.Error("uncovered tehsil should not resolve")
	}
	if _, ok = ResolveGPCode("Phanda", "NOWHERE"); ok {
		t.Error("unknown GP name should not resolve")
	}
}
