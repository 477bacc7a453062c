package forms

import (
	"testing"
	"time"
)

func TestRequired(t *testing.T) {
	schema := Schema{Required("name")}

	if problems := schema.Validate(Values{"name": "Ops"}); len(problems) != 0 {
		t.Fatalf("unexpected problems: %v", problems)
	}
	if problems := schema.Validate(Values{"name": "  "}); problems["name"] == "" {
		t.Fatal("expected blank name to fail")
	}
	if problems := schema.Validate(Values{}); problems["name"] == "" {
		t.Fatal("expected missing name to fail")
	}
}

func TestNumericBounds(t *testing.T) {
	schema := Schema{Min("level", 1), Max("level", 10), Min("budget", 0)}

	problems := schema.Validate(Values{"level": 0, "budget": -5.0})
	if problems["level"] == "" {
		t.Fatal("expected level below minimum to fail")
	}
	if problems["budget"] == "" {
		t.Fatal("expected negative budget to fail")
	}

	problems = schema.Validate(Values{"level": 3, "budget": 1000.0})
	if len(problems) != 0 {
		t.Fatalf("unexpected problems: %v", problems)
	}
}

func TestDateNotBefore(t *testing.T) {
	schema := Schema{DateNotBefore("endDate", "startDate")}
	start := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)

	problems := schema.Validate(Values{"startDate": start, "endDate": start.AddDate(0, 0, -1)})
	if problems["endDate"] == "" {
		t.Fatal("expected inverted range to fail")
	}

	// Same-day ranges are valid.
	problems = schema.Validate(Values{"startDate": start, "endDate": start})
	if len(problems) != 0 {
		t.Fatalf("unexpected problems: %v", problems)
	}
}

func TestReviewerNotesRequiredOnDecision(t *testing.T) {
	schema := Schema{RequiredWhen("reviewerNotes", "status", "Approved", "Rejected")}

	problems := schema.Validate(Values{"status": "Approved", "reviewerNotes": ""})
	if problems["reviewerNotes"] == "" {
		t.Fatal("expected notes to be required on approval")
	}

	problems = schema.Validate(Values{"status": "Rejected", "reviewerNotes": ""})
	if problems["reviewerNotes"] == "" {
		t.Fatal("expected notes to be required on rejection")
	}

	problems = schema.Validate(Values{"status": "Pending", "reviewerNotes": ""})
	if len(problems) != 0 {
		t.Fatalf("pending requests need no notes: %v", problems)
	}
}

func TestFirstFailurePerFieldWins(t *testing.T) {
	schema := Schema{Required("amount"), Min("amount", 1)}

	problems := schema.Validate(Values{})
	if problems["amount"] != "amount is required" {
		t.Fatalf("expected the required message, got %q", problems["amount"])
	}
}
