package vector

// Entry is a single named dimension of a vector.
type Entry struct {
	Key   string
	Value float64
}

// Vector is an ordered list of named dimensions. Order is the canonical key order
// of the dimension space the vector belongs to.
type Vector []Entry

func (v Vector) Get(key string) float64 {
	for _, e := range v {
		if e.Key == key {
			return e.Value
		}
	}
	return 0
}

func (v Vector) Keys() []string {
	out := make([]string, 0, len(v))
	for _, e := range v {
		out = append(out, e.Key)
	}
	return out
}

const (
	KeyAnalytical    = "analytical"
	KeyVerbal        = "verbal"
	KeyCreative      = "creative"
	KeyScientific    = "scientific"
	KeySocial        = "social"
	KeyTechnical     = "technical"
	KeyCommunication = "communication"
	KeyResearch      = "research"
	KeyLeadership    = "leadership"

	KeyTeamwork     = "teamwork"
	KeyRiskTaking   = "riskTaking"
	KeyDiscipline   = "discipline"
	KeyAdaptability = "adaptability"
	KeyCreativity   = "creativity"
)

// Competencies is the person/test dimension space.
type Competencies struct {
	Analytical float64 `json:"analytical"`
	Verbal     float64 `json:"verbal"`
	Creative   float64 `json:"creative"`
	Scientific float64 `json:"scientific"`
	Social     float64 `json:"social"`
	Technical  float64 `json:"technical"`
}

func (c Competencies) Vector() Vector {
	return Vector{
		{Key: KeyAnalytical, Value: c.Analytical},
		{Key: KeyVerbal, Value: c.Verbal},
		{Key: KeyCreative, Value: c.Creative},
		{Key: KeyScientific, Value: c.Scientific},
		{Key: KeySocial, Value: c.Social},
		{Key: KeyTechnical, Value: c.Technical},
	}
}

func (c Competencies) Add(o Competencies) Competencies {
	return Competencies{
		Analytical: c.Analytical + o.Analytical,
		Verbal:     c.Verbal + o.Verbal,
		Creative:   c.Creative + o.Creative,
		Scientific: c.Scientific + o.Scientific,
		Social:     c.Social + o.Social,
		Technical:  c.Technical + o.Technical,
	}
}

// PersonalityTraits is the personality dimension space carried by questions and tests.
type PersonalityTraits struct {
	Leadership   float64 `json:"leadership"`
	Teamwork     float64 `json:"teamwork"`
	RiskTaking   float64 `json:"riskTaking"`
	Discipline   float64 `json:"discipline"`
	Adaptability float64 `json:"adaptability"`
	Creativity   float64 `json:"creativity"`
}

func (p PersonalityTraits) Vector() Vector {
	return Vector{
		{Key: KeyLeadership, Value: p.Leadership},
		{Key: KeyTeamwork, Value: p.Teamwork},
		{Key: KeyRiskTaking, Value: p.RiskTaking},
		{Key: KeyDiscipline, Value: p.Discipline},
		{Key: KeyAdaptability, Value: p.Adaptability},
		{Key: KeyCreativity, Value: p.Creativity},
	}
}

func (p PersonalityTraits) Add(o PersonalityTraits) PersonalityTraits {
	return PersonalityTraits{
		Leadership:   p.Leadership + o.Leadership,
		Teamwork:     p.Teamwork + o.Teamwork,
		RiskTaking:   p.RiskTaking + o.RiskTaking,
		Discipline:   p.Discipline + o.Discipline,
		Adaptability: p.Adaptability + o.Adaptability,
		Creativity:   p.Creativity + o.Creativity,
	}
}

// CourseSkillProfile is the skill-outcome space of a course.
type CourseSkillProfile struct {
	Analytical    float64 `json:"analytical"`
	Technical     float64 `json:"technical"`
	Creative      float64 `json:"creative"`
	Communication float64 `json:"communication"`
	Research      float64 `json:"research"`
	Leadership    float64 `json:"leadership"`
}

func (c CourseSkillProfile) Vector() Vector {
	return Vector{
		{Key: KeyAnalytical, Value: c.Analytical},
		{Key: KeyTechnical, Value: c.Technical},
		{Key: KeyCreative, Value: c.Creative},
		{Key: KeyCommunication, Value: c.Communication},
		{Key: KeyResearch, Value: c.Research},
		{Key: KeyLeadership, Value: c.Leadership},
	}
}

// JobCompetencyWeights is the competency space of a job.
type JobCompetencyWeights struct {
	Analytical    float64 `json:"analytical"`
	Technical     float64 `json:"technical"`
	Creative      float64 `json:"creative"`
	Communication float64 `json:"communication"`
	Leadership    float64 `json:"leadership"`
	Research      float64 `json:"research"`
}

func (j JobCompetencyWeights) Vector() Vector {
	return Vector{
		{Key: KeyAnalytical, Value: j.Analytical},
		{Key: KeyTechnical, Value: j.Technical},
		{Key: KeyCreative, Value: j.Creative},
		{Key: KeyCommunication, Value: j.Communication},
		{Key: KeyLeadership, Value: j.Leadership},
		{Key: KeyResearch, Value: j.Research},
	}
}
