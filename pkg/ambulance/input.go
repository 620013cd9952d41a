package ambulance

import (
	"encoding/json"
	"os"

	"github.com/TaniaPewah/ambroute/pkg/roadmap"
	"github.com/TaniaPewah/ambroute/pkg/util"
	"github.com/go-playground/validator/v10"
)

// PickupSite is a site with tests waiting to be collected. A site is placed
// either directly on a junction or by lat/lon, which is snapped to the
// nearest junction before solving.
type PickupSite struct {
	Name     string   `json:"name" validate:"required"`
	Junction uint32   `json:"junction"`
	Lat      *float64 `json:"lat,omitempty" validate:"omitempty,min=-90,max=90"`
	Lon      *float64 `json:"lon,omitempty" validate:"omitempty,min=-180,max=180"`
	// Demand is the number of tests to take there; each consumes one
	// resource unit.
	Demand int `json:"demand" validate:"min=1"`
}

// DropoffSite is a laboratory the collected tests are transferred to.
type DropoffSite struct {
	Name     string   `json:"name" validate:"required"`
	Junction uint32   `json:"junction"`
	Lat      *float64 `json:"lat,omitempty" validate:"omitempty,min=-90,max=90"`
	Lon      *float64 `json:"lon,omitempty" validate:"omitempty,min=-180,max=180"`
	// Supply is the number of resource units transferred to the ambulance on
	// the first visit.
	Supply int `json:"supply" validate:"min=0"`
}

type Ambulance struct {
	InitialJunction      uint32   `json:"initial_junction"`
	Lat                  *float64 `json:"lat,omitempty" validate:"omitempty,min=-90,max=90"`
	Lon                  *float64 `json:"lon,omitempty" validate:"omitempty,min=-180,max=180"`
	InitialResourceUnits int      `json:"initial_resource_units" validate:"min=0"`
	Capacity             int      `json:"capacity" validate:"min=1"`
}

// Input is the read-only problem descriptor.
type Input struct {
	Name         string        `json:"name" validate:"required"`
	Ambulance    Ambulance     `json:"ambulance"`
	PickupSites  []PickupSite  `json:"pickup_sites" validate:"min=1,dive"`
	DropoffSites []DropoffSite `json:"dropoff_sites" validate:"min=1,dive"`
}

// LoadInput reads and validates a problem descriptor from a JSON file.
func LoadInput(path string) (*Input, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var in Input
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "parse problem input %s", path)
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return &in, nil
}

// Validate checks structural validity plus the duplicate-identity
// precondition: site names must be unique, the goal predicate relies on it.
func (in *Input) Validate() error {
	validate := validator.New()
	if err := validate.Struct(in); err != nil {
		return util.WrapErrorf(err, util.ErrBadParamInput, "invalid problem input")
	}

	seen := make(map[string]struct{}, len(in.PickupSites)+len(in.DropoffSites))
	for _, s := range in.PickupSites {
		if _, ok := seen[s.Name]; ok {
			return util.WrapErrorf(nil, util.ErrBadParamInput, "duplicate site name %q", s.Name)
		}
		seen[s.Name] = struct{}{}
	}
	for _, s := range in.DropoffSites {
		if _, ok := seen[s.Name]; ok {
			return util.WrapErrorf(nil, util.ErrBadParamInput, "duplicate site name %q", s.Name)
		}
		seen[s.Name] = struct{}{}
	}
	return nil
}

// ResolveJunctions snaps every site given by lat/lon to a junction id using
// the supplied snapper. Sites already carrying a junction id are untouched.
func (in *Input) ResolveJunctions(snap func(lat, lon float64) (roadmap.JunctionID, bool)) error {
	resolve := func(lat, lon *float64, junction *uint32, name string) error {
		if lat == nil || lon == nil {
			return nil
		}
		id, ok := snap(*lat, *lon)
		if !ok {
			return util.WrapErrorf(nil, util.ErrNotFound, "no junction near site %q (%f, %f)", name, *lat, *lon)
		}
		*junction = uint32(id)
		return nil
	}

	if err := resolve(in.Ambulance.Lat, in.Ambulance.Lon, &in.Ambulance.InitialJunction, "ambulance"); err != nil {
		return err
	}
	for i := range in.PickupSites {
		s := &in.PickupSites[i]
		if err := resolve(s.Lat, s.Lon, &s.Junction, s.Name); err != nil {
			return err
		}
	}
	for i := range in.DropoffSites {
		s := &in.DropoffSites[i]
		if err := resolve(s.Lat, s.Lon, &s.Junction, s.Name); err != nil {
			return err
		}
	}
	return nil
}

func (in *Input) PickupJunction(i int) roadmap.JunctionID {
	return roadmap.JunctionID(in.PickupSites[i].Junction)
}

func (in *Input) DropoffJunction(i int) roadmap.JunctionID {
	return roadmap.JunctionID(in.DropoffSites[i].Junction)
}
