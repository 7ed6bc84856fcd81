package record

import "strings"

type Cemetery struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Key  string `json:"key" yaml:"key"`
}

type Emblem struct {
	Code  string `json:"code" yaml:"code"`
	Name  string `json:"name" yaml:"name"`
	Image string `json:"image,omitempty" yaml:"image,omitempty"`
}

// Label is the "NN - NAME" form shown in pickers.
func (e Emblem) Label() string {
	return e.Code + " - " + e.Name
}

type Location struct {
	ID   int    `json:"id" yaml:"id"`
	Abbr string `json:"abbr" yaml:"abbr"`
	Name string `json:"name" yaml:"name"`
}

type Branch struct {
	Code             string `json:"code" yaml:"code"`
	BranchOfService  string `json:"branchOfService" yaml:"branch_of_service"`
	ShortDescription string `json:"shortDescription" yaml:"short_description"`
}

type War struct {
	Code             string `json:"code" yaml:"code"`
	ShortDescription string `json:"shortDescription" yaml:"short_description"`
}

type Award struct {
	Code  string `json:"code" yaml:"code"`
	Award string `json:"award" yaml:"award"`
}

// Reference holds the lookup tables loaded once per session.
type Reference struct {
	Cemeteries []Cemetery `json:"cemeteries" yaml:"cemeteries"`
	Emblems    []Emblem   `json:"emblems" yaml:"emblems"`
	Locations  []Location `json:"locations" yaml:"locations"`
	Branches   []Branch   `json:"branches" yaml:"branches"`
	Wars       []War      `json:"wars" yaml:"wars"`
	Awards     []Award    `json:"awards" yaml:"awards"`
}

// CemeteryKey returns the key for a cemetery name, or "" when the name is unknown.
func (r *Reference) CemeteryKey(name string) string {
	name = strings.ToUpper(strings.TrimSpace(name))
	for _, c := range r.Cemeteries {
		if c.Name == name {
			return c.Key
		}
	}
	return ""
}

// Clone returns a copy that shares no slices with r.
func (r *Reference) Clone() *Reference {
	if r == nil {
		return nil
	}
	return &Reference{
		Cemeteries: append([]Cemetery(nil), r.Cemeteries...),
		Emblems:    append([]Emblem(nil), r.Emblems...),
		Locations:  append([]Location(nil), r.Locations...),
		Branches:   append([]Branch(nil), r.Branches...),
		Wars:       append([]War(nil), r.Wars...),
		Awards:     append([]Award(nil), r.Awards...),
	}
}
