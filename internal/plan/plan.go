// Package plan holds the fixed extraction plan: which areas to fetch and which
// ACS variables to request for every tract in them.
//
// Both lists are ordered. Variables define the output column order and the fetch
// order; Areas define the order in which counties are processed.
package plan

import "github.com/UnknownOlympus/tracts/internal/models"

// Areas lists the metropolitan areas to extract.
var Areas = []models.Area{
	{
		Name: "San Francisco-Oakland-Hayward",
		Counties: []models.County{
			{State: "06", County: "001"},
			{State: "06", County: "013"},
			{State: "06", County: "075"},
			{State: "06", County: "081"},
			{State: "06", County: "041"},
		},
	},
}

// Variables lists the ACS 5-year estimates to request.
//
// Candidate tables not requested yet:
// B19051 Earnings, B25017 Rooms, B25063 Gross Rent, B25085 Price Asked.
//
// "Occupancy status: Vacant" carries the same code as "Occupied"; the mapping is data
// and is kept as published.
var Variables = []models.Variable{
	{Label: "Total Population", Code: "B01003_001E"},
	{Label: "White Alone", Code: "B02001_002E"},
	{Label: "Black or African American alone", Code: "B02001_003E"},
	{Label: "Asian alone", Code: "B02001_005E"},
	{Label: "Family Households", Code: "B11001_002E"},
	{Label: "Nonfamily Households", Code: "B11001_007E"},
	{Label: "Household income: < 10k", Code: "B19001_002E"},
	{Label: "Household income: 10-15k", Code: "B19001_003E"},
	{Label: "Household income: 15-20k", Code: "B19001_004E"},
	{Label: "Household income: 20-25k", Code: "B19001_005E"},
	{Label: "Household income: 25-30k", Code: "B19001_006E"},
	{Label: "Household income: 30-35k", Code: "B19001_007E"},
	{Label: "Household income: 35-40k", Code: "B19001_008E"},
	{Label: "Household income: 40-45k", Code: "B19001_009E"},
	{Label: "Household income: 45-50k", Code: "B19001_010E"},
	{Label: "Household income: 50-60k", Code: "B19001_011E"},
	{Label: "Household income: 60-75k", Code: "B19001_012E"},
	{Label: "Household income: 75-100k", Code: "B19001_013E"},
	{Label: "Household income: 100-125k", Code: "B19001_014E"},
	{Label: "Household income: 125-150k", Code: "B19001_015E"},
	{Label: "Household income: 150-200k", Code: "B19001_016E"},
	{Label: "Household income: > 200k", Code: "B19001_017E"},
	{Label: "With wage or salary income", Code: "B19052_002E"},
	{Label: "No wage or salary income", Code: "B19052_003E"},
	{Label: "With self-employment income", Code: "B19053_002E"},
	{Label: "No self-employment income", Code: "B19053_003E"},
	{Label: "With interest dividends or net rental income", Code: "B19054_002E"},
	{Label: "No interest dividends or net rental income", Code: "B19054_003E"},
	{Label: "With Social Security income", Code: "B19055_002E"},
	{Label: "No Social Security income", Code: "B19055_003E"},
	{Label: "With Supplemental Security Income (SSI)", Code: "B19056_002E"},
	{Label: "No Supplemental Security Income (SSI)", Code: "B19056_003E"},
	{Label: "With public assistance income", Code: "B19057_002E"},
	{Label: "No public assistance income", Code: "B19057_003E"},
	{Label: "With cash public assistance or Food Stamps/SNAP", Code: "B19058_002E"},
	{Label: "No cash public assistance or Food Stamps/SNAP", Code: "B19058_003E"},
	{Label: "With retirement income", Code: "B19059_002E"},
	{Label: "No retirement income", Code: "B19059_003E"},
	{Label: "Per capita income (2010 dollars)", Code: "B19301_001E"},
	{Label: "Housing units", Code: "B25001_001E"},
	{Label: "Occupancy status: Occupied", Code: "B25002_002E"},
	{Label: "Occupancy status: Vacant", Code: "B25002_002E"},
	{Label: "Housing tenure: Owner-occupied", Code: "B25003_002E"},
	{Label: "Housing tenure: Renter-occupied", Code: "B25003_003E"},
	{Label: "Median number of rooms", Code: "B25018_001E"},
	{Label: "Median gross rent (dollars)", Code: "B25064_001E"},
	{Label: "Median value for owner-occupied housing", Code: "B25077_001E"},
}
