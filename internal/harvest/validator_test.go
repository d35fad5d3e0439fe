package harvest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"cin7export/internal/cin7"
	"cin7export/internal/window"
)

func testWindow() window.Window {
	return window.Window{
		Start: time.Date(2024, 3, 8, 14, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 15, 13, 59, 59, 999999000, time.UTC),
	}
}

func TestIsValidRejectsVoidDocuments(t *testing.T) {
	v := NewValidator(CreditNotes)

	doc := cin7.Document{
		"reference":     "CRN-1",
		"isVoid":        true,
		"completedDate": "2024-03-10T10:00:00Z", // in window
	}

	assert.False(t, v.IsValid(doc, testWindow()))
}

func TestIsValidRejectsMissingDate(t *testing.T) {
	v := NewValidator(CreditNotes)

	assert.False(t, v.IsValid(cin7.Document{"reference": "CRN-2"}, testWindow()))
}

func TestIsValidRejectsUnparseableDate(t *testing.T) {
	v := NewValidator(CreditNotes)

	doc := cin7.Document{
		"reference":     "CRN-3",
		"completedDate": "not a date",
	}

	assert.False(t, v.IsValid(doc, testWindow()))
}

func TestIsValidWindowBoundariesAreInclusive(t *testing.T) {
	v := NewValidator(CreditNotes)
	win := testWindow()

	tests := []struct {
		name string
		date string
		want bool
	}{
		{"at start", "2024-03-08T14:00:00Z", true},
		{"inside", "2024-03-12T00:00:00Z", true},
		{"at end", "2024-03-15T13:59:59.999999Z", true},
		{"before start", "2024-03-08T13:59:59Z", false},
		{"after end", "2024-03-15T14:00:00Z", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := cin7.Document{"reference": "CRN-4", "completedDate": tt.date}
			assert.Equal(t, tt.want, v.IsValid(doc, win))
		})
	}
}

func TestIsValidCompanyFilter(t *testing.T) {
	v := NewValidator(PurchaseOrders)

	inScope := cin7.Document{
		"reference":         "PO-1",
		"company":           "CARBON THEORY LTD",
		"fullyReceivedDate": "2024-03-10T10:00:00Z",
	}
	outOfScope := cin7.Document{
		"reference":         "PO-2",
		"company":           "SOMEBODY ELSE LTD",
		"fullyReceivedDate": "2024-03-10T10:00:00Z",
	}

	assert.True(t, v.IsValid(inScope, testWindow()))
	assert.False(t, v.IsValid(outOfScope, testWindow()))
}
