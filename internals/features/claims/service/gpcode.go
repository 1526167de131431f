package service

import (
	"vanadhikar_backend/internals/constants"
)

// ResolveGPCode derives the jurisdiction code for a new claim from its
// declared tehsil and gram-panchayat name: "GS-<tag>-<gp code>". The code
// is assigned once at creation and never re-derived.
//
// ok=false when the tehsil is uncovered or the GP name misses the lookup
// table; the claim is created anyway, flagged jurisdiction-pending, and
// surfaces on the SuperAdmin unassigned listing.
func ResolveGPCode(tehsil, gramPanchayat string) (string, bool) {
	tag := constants.SubdivisionTagForTehsil(tehsil)
	if tag == "" {
		return "", false
	}
	code := constants.LookupGPCode(tag, gramPanchayat)
	if code == "" {
		return "", false
	}
	return constants.GPCodePrefixForTag(tag) + code, true
}
