package agentdef

import "testing"

func TestCanonicalRoleResolvesLegacyAliases(t *testing.T) {
	if got := CanonicalRole("coder"); got != RoleImplementer {
		t.Fatalf("expected coder to resolve to %s, got %s", RoleImplementer, got)
	}
	if got := CanonicalRole("tester"); got != RoleTestEngineer {
		t.Fatalf("expected tester to resolve to %s, got %s", RoleTestEngineer, got)
	}
	if got := CanonicalRole(RoleReviewer); got != RoleReviewer {
		t.Fatalf("expected non-alias role to pass through unchanged, got %s", got)
	}
}

func TestConstraintsValidateRejectsOutOfRangeFields(t *testing.T) {
	ok := Constraints{MaxTokens: 4000, TimeoutSeconds: 60, MaxRetries: 2}
	if err := ok.Validate(); err != nil {
		t.Fatalf("expected valid constraints to pass, got %v", err)
	}
	bad := Constraints{MaxTokens: 50, TimeoutSeconds: 60, MaxRetries: 2}
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected max_tokens below minimum to be rejected")
	}
}

func TestRegistryNormalizesLegacyRolesOnRegister(t *testing.T) {
	reg := NewRegistry(map[string]*Definition{
		"old": {Name: "old", Role: "coder"},
	})
	d, ok := reg.Get("old")
	if !ok || d.Role != RoleImplementer {
		t.Fatalf("expected stored definition's role to be normalized, got %+v", d)
	}

	reg.Register(&Definition{Name: "new", Role: "tester"})
	d, ok = reg.Get("new")
	if !ok || d.Role != RoleTestEngineer {
		t.Fatalf("expected registered definition's role to be normalized, got %+v", d)
	}
}

func TestRegistryFreezeServesLockFreeReads(t *testing.T) {
	reg := NewRegistry(map[string]*Definition{
		"a": {Name: "a", Role: RoleQA},
	})
	reg.Freeze()

	if _, ok := reg.Get("a"); !ok {
		t.Fatalf("expected frozen registry to still serve existing entries")
	}
	if len(reg.ListAll()) != 1 {
		t.Fatalf("expected exactly one definition in frozen snapshot")
	}

	reg.Register(&Definition{Name: "b", Role: RoleReviewer})
	if _, ok := reg.Get("b"); !ok {
		t.Fatalf("expected a post-freeze Register to unfreeze and still be visible")
	}
}

func TestRegistryUnregisterRemovesDefinition(t *testing.T) {
	reg := NewRegistry(map[string]*Definition{"a": {Name: "a"}})
	reg.Unregister("a")
	if _, ok := reg.Get("a"); ok {
		t.Fatalf("expected definition to be removed")
	}
}
