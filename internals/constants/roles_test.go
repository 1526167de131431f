package constants

import (
	"strings"
	"testing"
)

func TestRoleGroupsCoverAllOfficerRoles(t *testing.T) {
	all := make(map[string]bool, len(AllOfficerRoles))
	for _, r := range AllOfficerRoles {
		if all[r] {
			t.Fatalf("duplicate role %q in AllOfficerRoles", r)
		}
		all[r] = true
	}

	grouped := make([]string, 0, len(AllOfficerRoles))
	grouped = append(grouped, GramSabhaOnly...)
	grouped = append(grouped, SubdivisionRoles...)
	grouped = append(grouped, DistrictRoles...)
	grouped = append(grouped, SuperAdminOnly...)

	if len(grouped) != len(AllOfficerRoles) {
		t.Fatalf("tier groups cover %d roles, AllOfficerRoles has %d", len(grouped), len(AllOfficerRoles))
	}
	for _, r := range grouped {
		if !all[r] {
			t.Errorf("role %q appears in a tier group but not in AllOfficerRoles", r)
		}
	}
}

func TestFullVisibilityRoles(t *testing.T) {
	want := map[string]bool{
		RoleDLCOfficer:      true,
		RoleDistrictOfficer: true,
		RoleSuperAdmin:      true,
	}
	if len(FullVisibilityRoles) != len(want) {
		t.Fatalf("FullVisibilityRoles has %d roles, want %d", len(FullVisibilityRoles), len(want))
	}
	for _, r := range FullVisibilityRoles {
		if !want[r] {
			t.Errorf("unexpected full-visibility role %q", r)
		}
	}
}

func TestRoleErrorMessages(t *testing.T) {
	cases := []struct {
		got  string
		want string
	}{
		{RoleErrorGramSabha("claim mapping"), "claim mapping"},
		{RoleErrorSubdivision("claim review"), "claim review"},
		{RoleErrorDistrict("final approval"), "final approval"},
		{RoleErrorSuperAdmin("officer registration"), "officer registration"},
	}
	for _, tc := range cases {
		if !strings.Contains(tc.got, tc.want) {
			t.Errorf("message %q does not mention feature %q", tc.got, tc.want)
		}
	}
}
