package record

// SlotLayout describes which repeated sub-fields a decedent slot carries. Later
// slots on a marker hold progressively less.
type SlotLayout struct {
	Ranks        int
	Awards       int
	Wars         int
	Branches     int
	AwardCustom  bool
	BranchCustom bool
	Inscription  bool
}

const (
	AdditionalDecedents = 6
	DecedentSlots       = AdditionalDecedents + 1
)

var (
	fullLayout    = SlotLayout{Ranks: 3, Awards: 7, Wars: 4, Branches: 3, AwardCustom: true, BranchCustom: true, Inscription: true}
	singleLayout  = SlotLayout{Ranks: 1, Awards: 1, Wars: 1, Branches: 1, Inscription: true}
	minimalLayout = SlotLayout{}
)

// Layouts is indexed by slot: 0 is the primary decedent, 1-6 the others.
var Layouts = [DecedentSlots]SlotLayout{
	fullLayout,
	fullLayout,
	singleLayout,
	singleLayout,
	singleLayout,
	minimalLayout,
	minimalLayout,
}

type Person struct {
	FirstName        string   `json:"firstName" yaml:"first_name"`
	MiddleName       string   `json:"middleName" yaml:"middle_name"`
	LastName         string   `json:"lastName" yaml:"last_name"`
	Suffix           string   `json:"suffix" yaml:"suffix"`
	Location         string   `json:"location" yaml:"location"`
	Ranks            []string `json:"ranks,omitempty" yaml:"ranks,omitempty"`
	Awards           []string `json:"awards,omitempty" yaml:"awards,omitempty"`
	AwardCustom      string   `json:"awardCustom,omitempty" yaml:"award_custom,omitempty"`
	Wars             []string `json:"wars,omitempty" yaml:"wars,omitempty"`
	Branches         []string `json:"branches,omitempty" yaml:"branches,omitempty"`
	BranchUnitCustom string   `json:"branchUnitCustom,omitempty" yaml:"branch_unit_custom,omitempty"`
	BirthDate        string   `json:"birthDate" yaml:"birth_date"`
	DeathDate        string   `json:"deathDate" yaml:"death_date"`
	Inscription      string   `json:"inscription,omitempty" yaml:"inscription,omitempty"`
}

// NewPerson returns a person whose repeated fields are sized for the layout.
func NewPerson(layout SlotLayout) Person {
	return Person{
		Ranks:    make([]string, layout.Ranks),
		Awards:   make([]string, layout.Awards),
		Wars:     make([]string, layout.Wars),
		Branches: make([]string, layout.Branches),
	}
}

// Fit pads or truncates the repeated fields to the layout. Values a layout has no
// room for are dropped.
func (p *Person) Fit(layout SlotLayout) {
	p.Ranks = fit(p.Ranks, layout.Ranks)
	p.Awards = fit(p.Awards, layout.Awards)
	p.Wars = fit(p.Wars, layout.Wars)
	p.Branches = fit(p.Branches, layout.Branches)
	if !layout.AwardCustom {
		p.AwardCustom = ""
	}
	if !layout.BranchCustom {
		p.BranchUnitCustom = ""
	}
	if !layout.Inscription {
		p.Inscription = ""
	}
}

func fit(values []string, n int) []string {
	out := make([]string, n)
	copy(out, values)
	return out
}

// IsEmpty reports whether nothing identifies the person. Unused trailing slots on
// a marker are empty.
func (p *Person) IsEmpty() bool {
	return p.FirstName == "" && p.MiddleName == "" && p.LastName == "" &&
		p.BirthDate == "" && p.DeathDate == ""
}

func (p *Person) FullName() string {
	name := p.FirstName
	for _, part := range []string{p.MiddleName, p.LastName, p.Suffix} {
		if part == "" {
			continue
		}
		if name != "" {
			name += " "
		}
		name += part
	}
	return name
}
