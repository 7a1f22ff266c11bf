package model

// Result is one participant's aggregated scoring row, recomputed by the
// external scoring job. This service only reads it. Nil points mean "no ranked
// score for that period"; a nil place with non-nil points is the transient
// "scored but not yet ranked" state.
// swagger:model Result
type Result struct {
	BaseModel

	UserID string `gorm:"type:varchar(36);not null;uniqueIndex" json:"userId"`

	Week1Points *int `json:"week1Points,omitempty"`
	Week1Place  *int `json:"week1Place,omitempty"`
	Week2Points *int `json:"week2Points,omitempty"`
	Week2Place  *int `json:"week2Place,omitempty"`
	Week3Points *int `json:"week3Points,omitempty"`
	Week3Place  *int `json:"week3Place,omitempty"`
	FinalPoints *int `json:"finalPoints,omitempty"`
	FinalPlace  *int `json:"finalPlace,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Result) TableName() string {
	return "results"
}

// UserPosition is the public projection of one Result row. A period appears
// only when its place has actually been assigned (> 0); it is never rendered
// as zero.
// swagger:model UserPosition
type UserPosition struct {
	Week1Place *int `json:"week1Place,omitempty"`
	Week2Place *int `json:"week2Place,omitempty"`
	Week3Place *int `json:"week3Place,omitempty"`
	FinalPlace *int `json:"finalPlace,omitempty"`
}

// PositionFromResult builds the projection, dropping unassigned placements.
func PositionFromResult(r *Result) UserPosition {
	var pos UserPosition
	if r == nil {
		return pos
	}
	if r.Week1Place != nil && *r.Week1Place > 0 {
		pos.Week1Place = r.Week1Place
	}
	if r.Week2Place != nil && *r.Week2Place > 0 {
		pos.Week2Place = r.Week2Place
	}
	if r.Week3Place != nil && *r.Week3Place > 0 {
		pos.Week3Place = r.Week3Place
	}
	if r.FinalPlace != nil && *r.FinalPlace > 0 {
		pos.FinalPlace = r.FinalPlace
	}
	return pos
}
