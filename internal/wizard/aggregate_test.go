package wizard

import (
	"encoding/json"
	"errors"
	"testing"
)

const presentAddressJSON = `{
	"addressType": "Present",
	"buildingName": "Sunrise Towers",
	"flatNumber": "B-404",
	"streetName": "MG Road",
	"landmark": "Opposite City Mall",
	"city": "Pune",
	"state": "Maharashtra",
	"pincode": "411001",
	"mobileNumber": "9876543210"
}`

const permanentAddressJSON = `{
	"addressType": "Permanent",
	"buildingName": "Green Villa",
	"flatNumber": "7",
	"streetName": "Station Road",
	"landmark": "Near Temple",
	"city": "Nashik",
	"state": "Maharashtra",
	"pincode": "422001",
	"mobileNumber": "9123456780"
}`

func mustMerge(t *testing.T, a Aggregate, section Section, raw string) Aggregate {
	t.Helper()
	merged, issues, err := a.Merge(section, json.RawMessage(raw))
	if err != nil {
		t.Fatalf("merge %v: %v", section, err)
	}
	if len(issues) > 0 {
		t.Fatalf("merge %v: unexpected issues %v", section, issues)
	}
	return merged
}

func TestMergeAppendsRepeatableSections(t *testing.T) {
	var agg Aggregate
	agg = mustMerge(t, agg, SectionAddressDetails, presentAddressJSON)
	agg = mustMerge(t, agg, SectionAddressDetails, permanentAddressJSON)

	if len(agg.AddressDetails) != 2 {
		t.Fatalf("expected 2 addresses, got %d", len(agg.AddressDetails))
	}
	if agg.AddressDetails[0].AddressType != "Present" || agg.AddressDetails[1].AddressType != "Permanent" {
		t.Fatalf("append order lost: %+v", agg.AddressDetails)
	}
}

func TestMergeReplacesScalarSections(t *testing.T) {
	var agg Aggregate
	agg = mustMerge(t, agg, SectionProfessionalBasics, `{
		"designation": "Software Engineer",
		"employmentType": "FullTime",
		"workingType": "Office",
		"dateOfJoin": "2026-02-02",
		"signatureUrl": "https://cdn.example.com/sign/asha.png"
	}`)
	agg = mustMerge(t, agg, SectionProfessionalBasics, `{
		"designation": "Senior Software Engineer",
		"employmentType": "FullTime",
		"workingType": "Hybrid",
		"dateOfJoin": "2026-02-02",
		"signatureUrl": "https://cdn.example.com/sign/asha.png"
	}`)

	if agg.ProfessionalBasics == nil {
		t.Fatal("expected professional basics to be set")
	}
	if agg.ProfessionalBasics.Designation != "Senior Software Engineer" {
		t.Fatalf("second merge should replace the first, got %q", agg.ProfessionalBasics.Designation)
	}
}

func TestMergeRejectsInvalidPayload(t *testing.T) {
	var agg Aggregate
	merged, issues, err := agg.Merge(SectionAddressDetails, json.RawMessage(`{
		"addressType": "Present",
		"pincode": "41"
	}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(issues) == 0 {
		t.Fatal("expected validation issues")
	}
	if len(merged.AddressDetails) != 0 {
		t.Fatal("invalid payload must not be folded in")
	}
}

func TestMergeRejectsMalformedJSON(t *testing.T) {
	var agg Aggregate
	if _, _, err := agg.Merge(SectionAddressDetails, json.RawMessage(`{"addressType":`)); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestMergeDoesNotAliasPreviousValue(t *testing.T) {
	var base Aggregate
	base = mustMerge(t, base, SectionAddressDetails, presentAddressJSON)

	left := mustMerge(t, base, SectionAddressDetails, permanentAddressJSON)
	right := mustMerge(t, base, SectionAddressDetails, presentAddressJSON)

	if left.AddressDetails[1].AddressType != "Permanent" {
		t.Fatalf("left branch clobbered: %+v", left.AddressDetails)
	}
	if right.AddressDetails[1].AddressType != "Present" {
		t.Fatalf("right branch clobbered: %+v", right.AddressDetails)
	}
}

func TestRemoveAt(t *testing.T) {
	var agg Aggregate
	agg = mustMerge(t, agg, SectionAddressDetails, presentAddressJSON)
	agg = mustMerge(t, agg, SectionAddressDetails, permanentAddressJSON)

	// Drop the present address; the permanent one must survive.
	removed, err := agg.RemoveAt(SectionAddressDetails, 0)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(removed.AddressDetails) != 1 || removed.AddressDetails[0].AddressType != "Permanent" {
		t.Fatalf("unexpected result: %+v", removed.AddressDetails)
	}
	if len(agg.AddressDetails) != 2 {
		t.Fatal("original aggregate must be untouched")
	}
}

func TestRemoveAtOutOfRange(t *testing.T) {
	var agg Aggregate
	agg = mustMerge(t, agg, SectionAddressDetails, presentAddressJSON)

	if _, err := agg.RemoveAt(SectionAddressDetails, 5); err == nil {
		t.Fatal("expected out-of-range error")
	}
	if _, err := agg.RemoveAt(SectionAddressDetails, -1); err == nil {
		t.Fatal("expected negative-index error")
	}
}

func TestRemoveAtScalarSection(t *testing.T) {
	var agg Aggregate
	if _, err := agg.RemoveAt(SectionBasicDetails, 0); !errors.Is(err, ErrNotRepeatable) {
		t.Fatalf("expected ErrNotRepeatable, got %v", err)
	}
}
