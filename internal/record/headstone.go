package record

import (
	"path"
	"strings"
)

// Headstone is one physical marker with its primary decedent and up to six others.
type Headstone struct {
	SequenceID          string `json:"sequenceId" yaml:"sequence_id"`
	PrimaryKey          string `json:"primaryKey" yaml:"primary_key"`
	CemeteryName        string `json:"cemeteryName" yaml:"cemetery_name"`
	BurialSectionNumber string `json:"burialSectionNumber" yaml:"burial_section_number"`
	WallID              string `json:"wallId" yaml:"wall_id"`
	RowNumber           string `json:"rowNumber" yaml:"row_number"`
	GravesiteNumber     string `json:"gravesiteNumber" yaml:"gravesite_number"`
	MarkerType          string `json:"markerType" yaml:"marker_type"`
	Emblem1             string `json:"emblem1" yaml:"emblem1"`
	Emblem2             string `json:"emblem2" yaml:"emblem2"`

	Image1FilePath string `json:"image1FilePath" yaml:"image1_file_path"`
	Image2FilePath string `json:"image2FilePath" yaml:"image2_file_path"`
	Image1FileName string `json:"image1FileName" yaml:"image1_file_name"`
	Image2FileName string `json:"image2FileName" yaml:"image2_file_name"`

	Primary Person                      `json:"primary" yaml:"primary"`
	Others  [AdditionalDecedents]Person `json:"others" yaml:"others"`
}

func NewHeadstone() *Headstone {
	h := &Headstone{Primary: NewPerson(Layouts[0])}
	for i := range h.Others {
		h.Others[i] = NewPerson(Layouts[i+1])
	}
	return h
}

// Decedent returns the person in a slot, 0 being the primary decedent. It
// returns nil for slots outside the marker.
func (h *Headstone) Decedent(slot int) *Person {
	switch {
	case slot == 0:
		return &h.Primary
	case slot > 0 && slot < DecedentSlots:
		return &h.Others[slot-1]
	default:
		return nil
	}
}

// Normalize sizes every decedent to its slot layout and fills the image file
// names from their paths.
func (h *Headstone) Normalize() {
	for slot := 0; slot < DecedentSlots; slot++ {
		h.Decedent(slot).Fit(Layouts[slot])
	}
	h.Image1FileName = baseName(h.Image1FilePath)
	h.Image2FileName = baseName(h.Image2FilePath)
}

// ComposePrimaryKey builds the cemetery-section-row-gravesite key.
func (h *Headstone) ComposePrimaryKey(cemeteryKey string) string {
	return strings.Join([]string{cemeteryKey, h.BurialSectionNumber, h.RowNumber, h.GravesiteNumber}, "-")
}

// Image paths come from Windows extraction runs as often as not.
func baseName(p string) string {
	if p == "" {
		return ""
	}
	return path.Base(strings.ReplaceAll(p, `\`, "/"))
}
