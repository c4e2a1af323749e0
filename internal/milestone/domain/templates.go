package domain

import "time"

// Template describes a milestone to instantiate for a new transaction.
// DependsOn is the position of the prerequisite within the same template
// slice, or -1 when the milestone has no prerequisite.
type Template struct {
	Name            string
	Description     string
	IsDCSpecific    bool
	VisibleToBuyer  bool
	VisibleToSeller bool
	OrderIndex      int
	DependsOn       int
	DaysFromStart   int
}

const noDependency = -1

// DefaultTemplates is the standard DC FSBO timeline. Offsets are days from
// contract execution.
var DefaultTemplates = []Template{
	{
		Name:            "Contract Executed",
		Description:     "Sales contract signed by both parties",
		VisibleToBuyer:  true,
		VisibleToSeller: true,
		OrderIndex:      1,
		DependsOn:       noDependency,
		DaysFromStart:   0,
	},
	{
		Name:            "Earnest Money Deposit",
		Description:     "EMD submitted to escrow/title company",
		VisibleToBuyer:  true,
		VisibleToSeller: true,
		OrderIndex:      2,
		DependsOn:       0,
		DaysFromStart:   3,
	},
	{
		Name:            "Home Inspection",
		Description:     "Property inspection completed (typically 5-15 days)",
		VisibleToBuyer:  true,
		VisibleToSeller: true,
		OrderIndex:      3,
		DependsOn:       0,
		DaysFromStart:   10,
	},
	{
		Name:            "Inspection Response",
		Description:     "Buyer submits inspection contingency response",
		VisibleToBuyer:  true,
		VisibleToSeller: true,
		OrderIndex:      4,
		DependsOn:       2,
		DaysFromStart:   12,
	},
	{
		Name:            "HOA/Condo Docs Delivered",
		Description:     "DC: Seller delivers HOA/Condo documents (3-day right of rescission applies)",
		IsDCSpecific:    true,
		VisibleToBuyer:  true,
		VisibleToSeller: true,
		OrderIndex:      5,
		DependsOn:       0,
		DaysFromStart:   7,
	},
	{
		Name:            "HOA Rescission Period Ends",
		Description:     "DC: 3-day right of rescission period for HOA/Condo docs expires",
		IsDCSpecific:    true,
		VisibleToBuyer:  true,
		VisibleToSeller: true,
		OrderIndex:      6,
		DependsOn:       4,
		DaysFromStart:   10,
	},
	{
		Name:            "Financing Contingency",
		Description:     "Buyer loan approval contingency deadline",
		VisibleToBuyer:  true,
		VisibleToSeller: true,
		OrderIndex:      7,
		DependsOn:       0,
		DaysFromStart:   21,
	},
	{
		Name:            "Appraisal Completed",
		Description:     "Property appraisal completed by lender",
		VisibleToBuyer:  true,
		VisibleToSeller: true,
		OrderIndex:      8,
		DependsOn:       6,
		DaysFromStart:   25,
	},
	{
		Name:            "Title Search Complete",
		Description:     "Title company completes title search and issues commitment",
		VisibleToBuyer:  true,
		VisibleToSeller: true,
		OrderIndex:      9,
		DependsOn:       0,
		DaysFromStart:   14,
	},
	{
		Name:            "Clear to Close",
		Description:     "Lender issues clear to close - all conditions satisfied",
		VisibleToBuyer:  true,
		VisibleToSeller: true,
		OrderIndex:      10,
		DependsOn:       7,
		DaysFromStart:   28,
	},
	{
		Name:            "Final Walkthrough",
		Description:     "Buyer conducts final walkthrough of property",
		VisibleToBuyer:  true,
		VisibleToSeller: true,
		OrderIndex:      11,
		DependsOn:       9,
		DaysFromStart:   29,
	},
	{
		Name:            "Settlement/Closing",
		Description:     "Final settlement - documents signed, funds disbursed",
		VisibleToBuyer:  true,
		VisibleToSeller: true,
		OrderIndex:      12,
		DependsOn:       10,
		DaysFromStart:   30,
	},
}

// TOPATemplates are added for tenanted properties. The offsets are relative
// to contract execution, so the notice steps land before day zero.
var TOPATemplates = []Template{
	{
		Name:            "TOPA Notice to Tenant",
		Description:     "DC TOPA: Seller provides notice of sale to tenant(s)",
		IsDCSpecific:    true,
		VisibleToBuyer:  true,
		VisibleToSeller: true,
		OrderIndex:      0,
		DependsOn:       noDependency,
		DaysFromStart:   -30,
	},
	{
		Name:            "TOPA Response Period",
		Description:     "DC TOPA: Tenant has opportunity to submit statement of interest",
		IsDCSpecific:    true,
		VisibleToBuyer:  true,
		VisibleToSeller: true,
		OrderIndex:      0,
		DependsOn:       0,
		DaysFromStart:   -15,
	},
	{
		Name:            "TOPA Waiver/Expiration",
		Description:     "DC TOPA: Tenant rights waived or period expired",
		IsDCSpecific:    true,
		VisibleToBuyer:  true,
		VisibleToSeller: true,
		OrderIndex:      0,
		DependsOn:       1,
		DaysFromStart:   0,
	},
}

// DueDate resolves a template's due date from the contract start date.
func (t Template) DueDate(start time.Time) time.Time {
	return start.AddDate(0, 0, t.DaysFromStart)
}
