package domain

import (
	"fmt"
	"time"
)

// Department classifies a complaint by the responsible authority.
type Department string

const (
	DepartmentMunicipality    Department = "Municipality"
	DepartmentElectricity     Department = "Electricity"
	DepartmentCorruption      Department = "Corruption"
	DepartmentPoliceGrievance Department = "Police Grievance"
	DepartmentHarassment      Department = "Harassment"
	DepartmentRoads           Department = "Roads"
	DepartmentWaterSupply     Department = "Water Supply"
	DepartmentOther           Department = "Other"
)

// Region classifies a complaint or account geographically.
type Region string

const (
	RegionNorth      Region = "North"
	RegionSouth      Region = "South"
	RegionEast       Region = "East"
	RegionWest       Region = "West"
	RegionCentral    Region = "Central"
	RegionHeadOffice Region = "Head Office"
)

// StatusPending is the status every complaint starts in. Later values are
// free-form strings assigned by admins.
const StatusPending = "Pending"

// Departments returns the closed set of valid departments in display order.
func Departments() []Department {
	return []Department{
		DepartmentMunicipality,
		DepartmentElectricity,
		DepartmentCorruption,
		DepartmentPoliceGrievance,
		DepartmentHarassment,
		DepartmentRoads,
		DepartmentWaterSupply,
		DepartmentOther,
	}
}

// Regions returns the closed set of valid regions in display order.
func Regions() []Region {
	return []Region{
		RegionNorth,
		RegionSouth,
		RegionEast,
		RegionWest,
		RegionCentral,
		RegionHeadOffice,
	}
}

// ParseDepartment validates a submitted department value against the closed set.
func ParseDepartment(value string) (Department, error) {
	for _, d := range Departments() {
		if string(d) == value {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown department %q", value)
}

// ParseRegion validates a submitted region value against the closed set.
func ParseRegion(value string) (Region, error) {
	for _, r := range Regions() {
		if string(r) == value {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown region %q", value)
}

// Complaint is a citizen-submitted grievance record.
type Complaint struct {
	ID          int64
	OwnerID     int64
	Department  Department
	Region      Region
	Description string
	Status      string
	SubmittedAt time.Time
}

// ComplaintWithSubmitter enriches a complaint with the owning user's identity
// for the admin view. Submitter fields are nil when the owner row is gone.
type ComplaintWithSubmitter struct {
	Complaint
	SubmitterName  *string
	SubmitterEmail *string
}
