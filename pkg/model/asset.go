package model

const (
	AssetAvailable   = "available"
	AssetUnavailable = "unavailable"
	AssetMaintenance = "maintenance"
)

type Asset struct {
	ID            string `json:"id" validate:"omitempty,max=64"`
	Name          string `json:"name" validate:"required,max=200"`
	InventoryCode string `json:"inventoryCode" validate:"omitempty,max=64"`
	Status        string `json:"status" validate:"required,oneof=available unavailable maintenance"`
}

type AssetUpdate struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,max=200"`
	InventoryCode *string `json:"inventoryCode,omitempty" validate:"omitempty,max=64"`
	Status        *string `json:"status,omitempty" validate:"omitempty,oneof=available unavailable maintenance"`
}

func (u *AssetUpdate) Apply(a *Asset) {
	if u.Name != nil {
		a.Name = *u.Name
	}
	if u.InventoryCode != nil {
		a.InventoryCode = *u.InventoryCode
	}
	if u.Status != nil {
		a.Status = *u.Status
	}
}
