package vector

// ToCourseSpace re-keys a student vector into the course skill-outcome space.
func ToCourseSpace(student Competencies) CourseSkillProfile {
	return CourseSkillProfile{
		Analytical:    student.Analytical,
		Technical:     student.Technical,
		Creative:      student.Creative,
		Communication: student.Verbal,
		Research:      student.Scientific,
		Leadership:    student.Social,
	}
}

// ToJobSpace re-keys a student vector into the job competency space. The renames
// match ToCourseSpace today; the two spaces are kept apart so they can diverge.
func ToJobSpace(student Competencies) JobCompetencyWeights {
	return JobCompetencyWeights{
		Analytical:    student.Analytical,
		Technical:     student.Technical,
		Creative:      student.Creative,
		Communication: student.Verbal,
		Leadership:    student.Social,
		Research:      student.Scientific,
	}
}
