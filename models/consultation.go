package models

// HairProfile carries the three fields the recommendation lookup is keyed on.
// Everything else on the form is display-only data.
type HairProfile struct {
	HairColor     string `json:"hairColor"`
	HairLength    string `json:"hairLength"`
	PersonalStyle string `json:"personalStyle"`
}

// FormData is the full consultation form payload. Fields outside the
// HairProfile triple are carried through into the rendered documents unchanged.
type FormData struct {
	FirstName           string   `json:"firstName"`
	LastName            string   `json:"lastName"`
	Email               string   `json:"email"`
	Phone               string   `json:"phone"`
	SelectedHairColor   string   `json:"selectedHairColor"`
	NaturalHairColor    string   `json:"naturalHairColor"`
	SkinColor           string   `json:"skinColor"`
	EyeColor            string   `json:"eyeColor"`
	HairTexture         string   `json:"hairTexture"`
	HairLength          string   `json:"hairLength"`
	PersonalStyle       string   `json:"personalStyle"`
	HairMaintenance     string   `json:"hairMaintenance"`
	SpecialOccasions    []string `json:"specialOccasions"`
	PreferredTreatments []string `json:"preferredTreatments"`
	WorkType            string   `json:"workType"`
	WorkIndustry        string   `json:"workIndustry"`
}

// Profile extracts the lookup triple from the form.
func (f FormData) Profile() HairProfile {
	return HairProfile{
		HairColor:     f.SelectedHairColor,
		HairLength:    f.HairLength,
		PersonalStyle: f.PersonalStyle,
	}
}

// SubmissionInput is the inbound request body for the consultation endpoints.
type SubmissionInput struct {
	Email               string   `json:"email"`
	Dates               []string `json:"dates"`
	FormData            FormData `json:"formData"`
	SendAdditionalEmail bool     `json:"sendAdditionalEmail"`
}
