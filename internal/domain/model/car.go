package model

import (
	"encoding/json"
)

// Car is a sellable vehicle listing. Images and Specs travel as native JSON
// values through the API and are flattened to TEXT columns at the repository
// edge only.
type Car struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Price       int       `json:"price"`
	Year        int       `json:"year"`
	Mileage     int       `json:"mileage"`
	Description string    `json:"description"`
	Images      ImageList `json:"images"`
	Specs       CarSpecs  `json:"specs"`
}

// ImageList is an ordered list of image URLs.
type ImageList []string

// CarSpecs is the fixed-shape spec sheet attached to a listing.
type CarSpecs struct {
	Engine       string `json:"engine"`
	Transmission string `json:"transmission"`
	FuelType     string `json:"fuelType"`
	BodyType     string `json:"bodyType"`
	Color        string `json:"color"`
}

func (l ImageList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// UnmarshalJSON accepts a native array, or the legacy wire shape where the
// client sent a JSON string holding encoded JSON (e.g. "[]"). Malformed
// content degrades to an empty list instead of failing the request.
func (l *ImageList) UnmarshalJSON(data []byte) error {
	var urls []string
	if err := json.Unmarshal(data, &urls); err == nil {
		*l = urls
		return nil
	}
	var encoded string
	if err := json.Unmarshal(data, &encoded); err == nil {
		*l = DecodeImages(encoded)
		return nil
	}
	*l = ImageList{}
	return nil
}

// UnmarshalJSON mirrors ImageList: native object, or a JSON string holding an
// encoded object, degrading to the zero value when malformed.
func (s *CarSpecs) UnmarshalJSON(data []byte) error {
	type plain CarSpecs
	var specs plain
	if err := json.Unmarshal(data, &specs); err == nil {
		*s = CarSpecs(specs)
		return nil
	}
	var encoded string
	if err := json.Unmarshal(data, &encoded); err == nil {
		*s = DecodeSpecs(encoded)
		return nil
	}
	*s = CarSpecs{}
	return nil
}

// DecodeImages parses the TEXT column value, substituting an empty list for
// malformed content.
func DecodeImages(text string) ImageList {
	var urls []string
	if err := json.Unmarshal([]byte(text), &urls); err != nil {
		return ImageList{}
	}
	return ImageList(urls)
}

// DecodeSpecs parses the TEXT column value, substituting the zero value for
// malformed content.
func DecodeSpecs(text string) CarSpecs {
	type plain CarSpecs
	var specs plain
	if err := json.Unmarshal([]byte(text), &specs); err != nil {
		return CarSpecs{}
	}
	return CarSpecs(specs)
}

// Encode renders the list as the TEXT column value.
func (l ImageList) Encode() string {
	b, _ := l.MarshalJSON()
	return string(b)
}

// Encode renders the spec sheet as the TEXT column value.
func (s CarSpecs) Encode() string {
	b, _ := json.Marshal(s)
	return string(b)
}
