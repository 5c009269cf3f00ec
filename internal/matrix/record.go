// Package matrix implements the Technology Matrix domain: assessment
// records, the TIME quadrant classification, input validation, and the
// service that fronts the external document store.
package matrix

// Record is an assessment of one technology solution for one customer, as
// stored in the document collection. ID is assigned by the store and is the
// only server-generated identity; TimeCode/TimeLabel are derived here and
// never accepted from the client.
type Record struct {
	ID                 string  `json:"_id,omitempty"`
	CustomerName       string  `json:"customerName"`
	CustomerID         *string `json:"customerId"`
	Category           string  `json:"category"`
	Solution           string  `json:"solution"`
	Vendor             string  `json:"vendor"`
	Notes              string  `json:"notes"`
	TechnicalFit       int     `json:"technicalFit"`
	FunctionalFit      int     `json:"functionalFit"`
	TimeCode           string  `json:"timeCode"`
	TimeLabel          string  `json:"timeLabel"`
	DateImplemented    *string `json:"dateImplemented"`
	ContractExpiration *string `json:"contractExpiration"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// CustomerSummary is one row of the browse view: a distinct customer name
// and how many assessment records it has.
type CustomerSummary struct {
	CustomerName string `json:"customerName"`
	Count        int    `json:"count"`
}

// Categories is the fixed solution-category list. The order here is the
// order the form's select renders.
var Categories = []string{
	"CRM",
	"ERP",
	"Accounting / Finance",
	"HR / Payroll",
	"Marketing",
	"E-Commerce",
	"Service / Support",
	"BI / Analytics",
	"Collaboration",
	"Infrastructure",
	"Security",
	"Other",
}

func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
