// ABOUTME: Tests for the Add Lead form
// ABOUTME: Covers validation messages, error clearing, cancel, and submit transitions
package forms

import (
	"testing"
	"time"

	"github.com/harperreed/crmdash/models"
	"github.com/harperreed/crmdash/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fill(f *AddLeadForm) {
	f.Set(FieldName, "Grace Hopper")
	f.Set(FieldEmail, "grace@navy.mil")
	f.Set(FieldCompany, "US Navy")
	f.Set(FieldPhone, "+1 (555) 111-2222")
	f.Set(FieldValue, "$20,000")
	f.Set(FieldSource, "Referral")
}

func TestValidateAllEmpty(t *testing.T) {
	errs := Validate(map[string]string{})
	assert.Equal(t, map[string]string{
		FieldName:    "Name is required",
		FieldEmail:   "Email is required",
		FieldCompany: "Company is required",
		FieldPhone:   "Phone is required",
		FieldValue:   "Value is required",
		FieldSource:  "Source is required",
	}, errs)
}

func TestValidateWhitespaceIsEmpty(t *testing.T) {
	errs := Validate(map[string]string{FieldName: "   \t"})
	assert.Equal(t, "Name is required", errs[FieldName])
}

func TestValidateBlankEmailIsRequired(t *testing.T) {
	errs := Validate(map[string]string{FieldEmail: "  "})
	assert.Equal(t, "Email is required", errs[FieldEmail])
}

func TestValidateEmailFormat(t *testing.T) {
	tests := []struct {
		email string
		ok    bool
	}{
		{"a@b.co", true},
		{"first.last@sub.example.org", true},
		{"not-an-email", false},
		{"a@b", false},
		{"a b@c.d", false},
		{"@c.d", false},
		{" ada@engine.io", false},
		{"ada@engine.io\t", false},
	}
	for _, tt := range tests {
		errs := Validate(map[string]string{FieldEmail: tt.email})
		if tt.ok {
			assert.NotContains(t, errs, FieldEmail, tt.email)
		} else {
			assert.Equal(t, "Invalid email format", errs[FieldEmail], tt.email)
		}
	}
}

func TestSubmitInvalidKeepsFormOpen(t *testing.T) {
	s := store.NewDefault()
	before := s.Leads()

	f := NewAddLeadForm()
	f.Open()
	fill(f)
	f.Set(FieldName, "")
	f.Set(FieldEmail, "not-an-email")

	_, ok := f.Submit()
	require.False(t, ok)
	assert.Equal(t, StateOpen, f.State())
	assert.Equal(t, map[string]string{
		FieldName:  "Name is required",
		FieldEmail: "Invalid email format",
	}, f.Errors())
	assert.Equal(t, before, s.Leads())
}

func TestSetClearsFieldError(t *testing.T) {
	f := NewAddLeadForm()
	f.Open()
	_, ok := f.Submit()
	require.False(t, ok)
	require.Len(t, f.Errors(), 6)

	f.Set(FieldName, "x")
	errs := f.Errors()
	assert.NotContains(t, errs, FieldName)
	assert.Len(t, errs, 5)
}

func TestSubmitValidResetsAndCloses(t *testing.T) {
	s := store.NewDefault()
	f := NewAddLeadForm()
	f.Open()
	fill(f)
	f.Set(FieldStatus, "Qualified")

	lead, ok := f.Submit()
	require.True(t, ok)
	assert.Equal(t, StateClosed, f.State())
	assert.Empty(t, f.Errors())
	assert.Equal(t, "New", f.Values()[FieldStatus])
	assert.Empty(t, f.Values()[FieldName])

	added := s.AddLead(lead, time.Date(2024, 12, 11, 0, 0, 0, 0, time.UTC))
	leads := s.Leads()
	assert.Len(t, leads, 9)
	assert.Equal(t, added, leads[0])
	assert.Equal(t, models.LeadQualified, added.Status)
	assert.Equal(t, "Grace Hopper", added.Name)
}

func TestCancelDiscardsWithoutValidating(t *testing.T) {
	f := NewAddLeadForm()
	f.Open()
	f.Set(FieldName, "half done")
	f.Cancel()

	assert.Equal(t, StateClosed, f.State())
	assert.Empty(t, f.Errors())
	assert.Equal(t, map[string]string{FieldStatus: "New"}, f.Values())
}

func TestToNewLeadUnknownStatus(t *testing.T) {
	lead := ToNewLead(map[string]string{FieldName: " Ada ", FieldStatus: "Bogus"})
	assert.Equal(t, models.LeadNew, lead.Status)
	assert.Equal(t, "Ada", lead.Name)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "closed", StateClosed.String())
}
