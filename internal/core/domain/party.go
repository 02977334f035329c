package domain

// Party identifies a buyer or seller on a legal document. Any field may be
// empty; the document engine renders missing fields as a visible blank run
// so they can be filled in by hand, never silently omitted.
type Party struct {
	Name       string `json:"name"`
	NationalID string `json:"nationalID"` // DNI
	TaxID      string `json:"taxID"`      // CUIT/CUIL
	Phone      string `json:"phone"`
	Address    string `json:"address"`
}
