package model

import (
	"encoding/json"
	"time"
)

type Condition string

const (
	ConditionExcellent Condition = "excellent"
	ConditionGood      Condition = "good"
	ConditionFair      Condition = "fair"
	ConditionPoor      Condition = "poor"
)

func (c Condition) Valid() bool {
	switch c {
	case ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor:
		return true
	}
	return false
}

// SellRequest is a "sell your car" lead, visible to admins only.
type SellRequest struct {
	ID         int        `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	CarDetails CarDetails `json:"carDetails"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// CarDetails describes the vehicle a visitor wants to sell. It is stored as
// a TEXT column, encoded at the repository edge.
type CarDetails struct {
	Make        string    `json:"make"`
	Model       string    `json:"model"`
	Year        int       `json:"year"`
	Mileage     int       `json:"mileage"`
	Condition   Condition `json:"condition"`
	AskingPrice int       `json:"askingPrice"`
}

// UnmarshalJSON accepts a native object, or the legacy wire shape of a JSON
// string holding an encoded object, degrading to the zero value when
// malformed.
func (d *CarDetails) UnmarshalJSON(data []byte) error {
	type plain CarDetails
	var details plain
	if err := json.Unmarshal(data, &details); err == nil {
		*d = CarDetails(details)
		return nil
	}
	var encoded string
	if err := json.Unmarshal(data, &encoded); err == nil {
		*d = DecodeCarDetails(encoded)
		return nil
	}
	*d = CarDetails{}
	return nil
}

// DecodeCarDetails parses the TEXT column value, substituting the zero value
// for malformed content.
func DecodeCarDetails(text string) CarDetails {
	type plain CarDetails
	var details plain
	if err := json.Unmarshal([]byte(text), &details); err != nil {
		return CarDetails{}
	}
	return CarDetails(details)
}

// Encode renders the details as the TEXT column value.
func (d CarDetails) Encode() string {
	b, _ := json.Marshal(d)
	return string(b)
}
