package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-signup/pkg/model"
	"github.com/goliatone/go-signup/pkg/render"
	"github.com/goliatone/go-signup/pkg/validation"
)

func TestMapErrors_StateAndPayload(t *testing.T) {
	state := model.NewFormState()
	state.EmailError = validation.MsgEmailBlank
	state.PasswordError = validation.MsgPasswordLength

	payload := map[string][]string{
		" Email ":          {validation.MsgEmailBlank, "Email already registered"},
		"terms":            {"  "},
		"non_field_errors": {"Service unavailable"},
		"nickname":         {"Should fall back to form errors"},
		"":                 {"Unscoped form error", "Service unavailable"},
	}

	mapped := render.MapErrors(state, payload)

	wantFields := map[string][]string{
		model.FieldEmail:    {validation.MsgEmailBlank, "Email already registered"},
		model.FieldPassword: {validation.MsgPasswordLength},
	}
	if diff := cmp.Diff(wantFields, mapped.Fields); diff != "" {
		t.Fatalf("field errors mismatch (-want +got):\n%s", diff)
	}

	wantForm := []string{"Service unavailable", "Should fall back to form errors", "Unscoped form error"}
	if diff := cmp.Diff(wantForm, mapped.Form, cmpopts.SortSlices(func(a, b string) bool { return a < b })); diff != "" {
		t.Fatalf("form errors mismatch (-want +got):\n%s", diff)
	}
}

func TestMapErrors_Empty(t *testing.T) {
	mapped := render.MapErrors(model.NewFormState(), nil)
	if mapped.Fields != nil || mapped.Form != nil {
		t.Fatalf("expected empty mapping, got %+v", mapped)
	}
}

func TestMergeAndSortHiddenFields(t *testing.T) {
	base := map[string]string{
		" existing ": "keep",
		"":           "ignored",
	}

	merged := render.MergeHiddenFields(base,
		render.CSRFToken("_csrf", "token123"),
		render.Hidden(" width ", 899),
		render.Hidden("  ", "skip"),
	)

	wantMerged := map[string]string{
		"existing": "keep",
		"_csrf":    "token123",
		"width":    "899",
	}
	if diff := cmp.Diff(wantMerged, merged); diff != "" {
		t.Fatalf("merged hidden fields mismatch (-want +got):\n%s", diff)
	}

	wantSorted := []render.HiddenField{
		{Name: "_csrf", Value: "token123"},
		{Name: "existing", Value: "keep"},
		{Name: "width", Value: "899"},
	}
	if diff := cmp.Diff(wantSorted, render.SortedHiddenFields(merged)); diff != "" {
		t.Fatalf("sorted hidden fields mismatch (-want +got):\n%s", diff)
	}
}
