package domain

// Vehicle carries the identity fields quoted in the object clause of a
// contract. All fields are plain text as they appear on the title papers.
type Vehicle struct {
	Brand              string `json:"brand"`
	Model              string `json:"model"`
	Year               string `json:"year"`
	Plate              string `json:"plate"`
	EngineBrand        string `json:"engineBrand"`
	EngineNumber       string `json:"engineNumber"`
	ChassisBrand       string `json:"chassisBrand"`
	ChassisNumber      string `json:"chassisNumber"`
	RegistrationLocale string `json:"registrationLocale"` // radicación
	Odometer           string `json:"odometer"`
}
