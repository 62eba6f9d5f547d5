// Package model contains the data shapes shared across layers.
// I keep it lean and focused on data shapes without behavior.
package model

// Country is the wire representation of one entry of the dataset.
type Country struct {
	Name string `json:"name"`
}

// Page is a validated limit/offset window into the country list.
type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// Pagination describes where a page sits inside the full list.
type Pagination struct {
	Offset    int  `json:"offset"`
	Limit     int  `json:"limit"`
	HasMore   bool `json:"hasMore"`
	Remaining int  `json:"remaining"`
}

// CountryPage is the body of a successful /countries response.
// Exactly one of Pagination or Message is set.
type CountryPage struct {
	Results    []Country   `json:"results"`
	Count      int         `json:"count"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Message    string      `json:"message,omitempty"`
}
