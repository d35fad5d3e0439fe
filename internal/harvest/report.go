package harvest

// Report describes one document feed: which endpoint to page through, which
// fields to request, and how to read the document for filtering and output.
type Report struct {
	// Name identifies the report in logs.
	Name string

	// Endpoint is the API document collection, e.g. "CreditNotes".
	Endpoint string

	// Fields is the comma-separated field list requested per document.
	Fields string

	// DateField is the document field the window filter and the report date
	// column are read from.
	DateField string

	// NumberField is the document field carrying the human-facing document
	// number, and doubles as its CSV column name.
	NumberField string

	// FilePrefix is the leading part of the output file name.
	FilePrefix string

	// Companies, when non-nil, restricts the report to documents whose
	// company appears as a key. The value is the brand the company trades
	// under.
	Companies map[string]string
}

// CreditNotes is the rolling weekly credit-note report.
var CreditNotes = Report{
	Name:     "creditnotes",
	Endpoint: "CreditNotes",
	Fields: "id,reference,creditNoteNumber,salesReference,createdDate,company,firstName,lastName," +
		"projectName,source,currencyCode,currencyRate,lineItems,discountTotal,completedDate,invoiceNumber",
	DateField:   "completedDate",
	NumberField: "creditNoteNumber",
	FilePrefix:  "Credit_Notes_FF",
}

// PurchaseOrders is the fiscal-year-to-date purchase-order report, limited
// to the brands in scope.
var PurchaseOrders = Report{
	Name:     "purchaseorders",
	Endpoint: "PurchaseOrders",
	Fields: "id,reference,company,branchId,internalComments,currencyCode,currencyRate,lineItems,status," +
		"stage,projectName,estimatedDeliveryDate,fullyReceivedDate,createdDate,invoiceNumber,isVoid,discountTotal",
	DateField:   "fullyReceivedDate",
	NumberField: "invoiceNumber",
	FilePrefix:  "Purchase_Orders",
	Companies: map[string]string{
		"CARBON THEORY LTD": "Carbon Theory",
		"COHAR LTD":         "Sosu",
	},
}
