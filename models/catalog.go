package models

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CategoryInfo describes a category for the reporting form
type CategoryInfo struct {
	Name        Category `json:"name"`
	Description string   `json:"description"`
	Icon        string   `json:"icon,omitempty"`
}

var CategoryCatalog = []CategoryInfo{
	{Name: Roads, Description: "Road damages, potholes, traffic issues", Icon: "road"},
	{Name: Electricity, Description: "Power outages, electrical faults", Icon: "zap"},
	{Name: Water, Description: "Water supply issues, leaks", Icon: "droplet"},
	{Name: Waste, Description: "Garbage collection, waste management", Icon: "trash"},
	{Name: Safety, Description: "Security, crime, emergency issues", Icon: "shield"},
	{Name: Health, Description: "Public health concerns", Icon: "heart"},
	{Name: Environment, Description: "Environmental issues, pollution", Icon: "leaf"},
	{Name: Infrastructure, Description: "Public buildings, facilities", Icon: "building"},
}

var departmentNames = map[Category]string{
	Roads:          "Road Development Authority",
	Electricity:    "Ceylon Electricity Board",
	Water:          "Water Supply Board",
	Waste:          "Waste Management Authority",
	Safety:         "Public Safety Department",
	Health:         "Health Department",
	Environment:    "Environmental Authority",
	Infrastructure: "Infrastructure Development",
}

// DepartmentName maps a category code to the department shown on dashboards.
// Codes outside the table are title-cased.
func DepartmentName(c Category) string {
	if name, ok := departmentNames[c]; ok {
		return name
	}
	return TitleCase(string(c))
}

// TitleCase upper-cases the first letter of every word.
func TitleCase(s string) string {
	return cases.Title(language.Und).String(s)
}

// DefaultAuthorities is the directory seeded into an empty authorities collection.
func DefaultAuthorities() []Authority {
	return []Authority{
		{Name: "Road Development Authority", Department: "Infrastructure", Category: Roads, ContactPhone: "+94-11-2691211", ContactEmail: "info@rda.gov.lk", EmergencyContact: "+94-11-2691999", CoverageArea: "National"},
		{Name: "Ceylon Electricity Board", Department: "Utilities", Category: Electricity, ContactPhone: "+94-11-2445678", ContactEmail: "complaints@ceb.lk", EmergencyContact: "+94-11-2445999", IsEmergencyService: true, CoverageArea: "National"},
		{Name: "National Water Supply & Drainage Board", Department: "Utilities", Category: Water, ContactPhone: "+94-11-2446622", ContactEmail: "info@nwsdb.lk", EmergencyContact: "+94-11-2446999", CoverageArea: "National"},
		{Name: "Colombo Municipal Council", Department: "Local Government", Category: Waste, ContactPhone: "+94-11-2323232", ContactEmail: "info@colombo.mc.gov.lk", EmergencyContact: "+94-11-2323999", CoverageArea: "Colombo"},
		{Name: "Sri Lanka Police - Traffic Division", Department: "Public Security", Category: Safety, ContactPhone: "+94-11-2421111", ContactEmail: "traffic@police.lk", EmergencyContact: "119", IsEmergencyService: true, CoverageArea: "National"},
		{Name: "Ministry of Health", Department: "Health", Category: Health, ContactPhone: "+94-11-2694033", ContactEmail: "info@health.gov.lk", EmergencyContact: "+94-11-2694999", CoverageArea: "National"},
		{Name: "Central Environmental Authority", Department: "Environment", Category: Environment, ContactPhone: "+94-11-2872278", ContactEmail: "info@cea.lk", EmergencyContact: "+94-11-2872999", CoverageArea: "National"},
		{Name: "Urban Development Authority", Department: "Infrastructure", Category: Infrastructure, ContactPhone: "+94-11-2581581", ContactEmail: "info@uda.gov.lk", EmergencyContact: "+94-11-2581999", CoverageArea: "National"},
	}
}

// DefaultAuthorityFor returns the directory entry for a category, falling back
// to the infrastructure authority.
func DefaultAuthorityFor(c Category) Authority {
	directory := DefaultAuthorities()
	for _, a := range directory {
		if a.Category == c {
			return a
		}
	}
	return directory[len(directory)-1]
}
