package model

// Room is a bookable space. Features holds normalized tag keys; display
// order is preserved as stored.
type Room struct {
	ID       string   `json:"id" validate:"omitempty,max=64"`
	Name     string   `json:"name" validate:"required,max=200"`
	Location string   `json:"location" validate:"omitempty,max=200"`
	Capacity int      `json:"capacity" validate:"min=0"`
	Features []string `json:"features" validate:"omitempty,max=32,dive,required,max=50"`
}

// RoomUpdate is a partial update; nil fields keep their prior values.
type RoomUpdate struct {
	Name     *string   `json:"name,omitempty" validate:"omitempty,max=200"`
	Location *string   `json:"location,omitempty" validate:"omitempty,max=200"`
	Capacity *int      `json:"capacity,omitempty" validate:"omitempty,min=0"`
	Features *[]string `json:"features,omitempty" validate:"omitempty,max=32,dive,required,max=50"`
}

// Apply shallow-merges the update over the room in place.
func (u *RoomUpdate) Apply(r *Room) {
	if u.Name != nil {
		r.Name = *u.Name
	}
	if u.Location != nil {
		r.Location = *u.Location
	}
	if u.Capacity != nil {
		r.Capacity = *u.Capacity
	}
	if u.Features != nil {
		r.Features = *u.Features
	}
}
