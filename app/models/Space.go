package models

type SpaceType string

const (
	SpaceSpecial  SpaceType = "special"
	SpaceProperty SpaceType = "property"
	SpaceChance   SpaceType = "chance"
	SpaceTax      SpaceType = "tax"
	SpaceUtility  SpaceType = "utility"
	SpaceRailroad SpaceType = "railroad"
	SpaceUnknown  SpaceType = "unknown"
)

// KnownSpaceTypes lists every type the dispatcher must cover. SpaceUnknown is
// deliberately absent; unknown spaces fall through to the no-op result.
var KnownSpaceTypes = []SpaceType{
	SpaceSpecial,
	SpaceProperty,
	SpaceChance,
	SpaceTax,
	SpaceUtility,
	SpaceRailroad,
}

// Space is one board cell from the static board configuration. Optional fields
// are pointers since unset and zero mean different things (a nil Rent fails
// rent collection, a zero Rent collects nothing).
type Space struct {
	Position  int       `json:"position"`
	Name      string    `json:"name"`
	Type      SpaceType `json:"type"`
	Price     *int      `json:"price,omitempty"`
	Rent      *int      `json:"rent,omitempty"`
	TaxAmount *int      `json:"tax_amount,omitempty"`
	Color     string    `json:"color,omitempty"`
	HouseCost *int      `json:"house_cost,omitempty"`
	HotelCost *int      `json:"hotel_cost,omitempty"`
}

func (s Space) IsProperty() bool { return s.Type == SpaceProperty }

// Purchasable reports whether the space type can appear in the ownership ledger.
func (s Space) Purchasable() bool {
	return s.Type == SpaceProperty || s.Type == SpaceRailroad || s.Type == SpaceUtility
}
