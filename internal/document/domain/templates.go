package domain

// Template describes a document slot to instantiate for a new transaction.
type Template struct {
	Name            string
	Description     string
	IsRequired      bool
	OfficialFormURL string
	VisibleToBuyer  bool
	VisibleToSeller bool
}

// RequiredTemplates is the DC forms checklist instantiated for every
// transaction.
var RequiredTemplates = []Template{
	{
		Name:            "GCAAR Sales Contract",
		Description:     "Greater Capital Area Association of Realtors Residential Sales Contract",
		IsRequired:      true,
		OfficialFormURL: "https://www.gcaar.com/forms",
		VisibleToBuyer:  true,
		VisibleToSeller: true,
	},
	{
		Name:            "DC Residential Disclosure",
		Description:     "District of Columbia Residential Real Property Seller Disclosure Statement",
		IsRequired:      true,
		OfficialFormURL: "https://dcra.dc.gov/page/seller-disclosure",
		VisibleToBuyer:  true,
		VisibleToSeller: true,
	},
	{
		Name:            "Lead-Based Paint Disclosure",
		Description:     "Federal Lead-Based Paint Disclosure (required for homes built before 1978)",
		IsRequired:      true,
		OfficialFormURL: "https://www.epa.gov/lead/sellers-disclosure-requirements-sales",
		VisibleToBuyer:  true,
		VisibleToSeller: true,
	},
	{
		Name:            "HOA/Condo Resale Package",
		Description:     "HOA or Condominium Association resale documents (if applicable)",
		VisibleToBuyer:  true,
		VisibleToSeller: true,
	},
	{
		Name:            "Title Commitment",
		Description:     "Title insurance commitment from title company",
		IsRequired:      true,
		VisibleToBuyer:  true,
		VisibleToSeller: true,
	},
	{
		Name:            "Property Survey",
		Description:     "Property survey or survey affidavit",
		VisibleToBuyer:  true,
		VisibleToSeller: true,
	},
	{
		Name:            "Home Inspection Report",
		Description:     "Professional home inspection report",
		VisibleToBuyer:  true,
		VisibleToSeller: true,
	},
	{
		Name:            "Termite/Pest Inspection",
		Description:     "Wood-destroying insect inspection report",
		VisibleToBuyer:  true,
		VisibleToSeller: true,
	},
	{
		Name:           "Appraisal Report",
		Description:    "Property appraisal from lender-approved appraiser",
		VisibleToBuyer: true,
	},
	{
		Name:           "Loan Estimate",
		Description:    "Lender loan estimate document",
		VisibleToBuyer: true,
	},
	{
		Name:            "Closing Disclosure",
		Description:     "Final closing disclosure from lender/title company",
		IsRequired:      true,
		VisibleToBuyer:  true,
		VisibleToSeller: true,
	},
	{
		Name:            "Settlement Statement (HUD-1/ALTA)",
		Description:     "Final settlement statement showing all transaction costs",
		IsRequired:      true,
		VisibleToBuyer:  true,
		VisibleToSeller: true,
	},
}

// TOPATemplates are added for tenanted properties.
var TOPATemplates = []Template{
	{
		Name:            "TOPA Notice of Sale",
		Description:     "DC TOPA: Official notice of sale to tenant(s)",
		IsRequired:      true,
		OfficialFormURL: "https://dhcd.dc.gov/service/tenant-opportunity-purchase-act-topa",
		VisibleToBuyer:  true,
		VisibleToSeller: true,
	},
	{
		Name:            "Tenant Statement of Interest",
		Description:     "DC TOPA: Tenant response to notice (if submitted)",
		VisibleToBuyer:  true,
		VisibleToSeller: true,
	},
	{
		Name:            "TOPA Waiver",
		Description:     "DC TOPA: Tenant waiver of purchase rights",
		VisibleToBuyer:  true,
		VisibleToSeller: true,
	},
}
