// Package advice holds the static "ways to save" reference content shown
// alongside estimates.
package advice

// Program describes one cost-reduction program.
type Program struct {
	Name    string
	Summary string
	Range   string
	Link    string
}

// Programs lists the cost-reduction programs, in display order.
var Programs = []Program{
	{
		Name: "Child and Dependent Care Tax Credit",
		Summary: "Claim 20% to 35% of up to $3,000 in childcare expenses for one " +
			"child, or up to $6,000 for two or more children.",
		Range: "$600 - $2,100 / year",
		Link:  "https://www.irs.gov/help/ita/am-i-eligible-to-claim-the-child-and-dependent-care-credit",
	},
	{
		Name: "Dependent Care FSA",
		Summary: "Set aside pre-tax dollars for eligible childcare expenses: up to " +
			"$5,000 per year ($2,500 married filing separately).",
		Range: "$1,000 - $1,750 / year",
		Link:  "https://www.investopedia.com/articles/pf/09/dependent-care-fsa.asp",
	},
	{
		Name: "State assistance programs",
		Summary: "Many states offer childcare subsidies or grants to low- and " +
			"middle-income families; eligibility and benefits vary by state.",
		Range: "varies",
		Link:  "https://www.childcare.gov/",
	},
}

// References lists further reading shown below the programs.
var References = []string{
	"State Averages: Child Care Aware of America - https://www.childcareaware.org/",
	"Childcare Technical Assistance Network - https://childcareta.acf.hhs.gov/",
	"Office of Child Care - https://www.acf.hhs.gov/occ",
	"IRS: Child and Dependent Care Credit - https://www.irs.gov/credits-deductions/individuals/child-and-dependent-care-credit",
	"ChildCare Aware state resources - https://www.childcareaware.org/resources/state-by-state-resource-map/",
}
