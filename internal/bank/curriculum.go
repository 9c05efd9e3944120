package bank

import "strings"

// TopicProvider supplies the default topic list for a (subject, grade)
// pair. The hosting application may plug in a real curriculum service;
// StaticCurriculum is the built-in fallback.
type TopicProvider interface {
	DefaultTopics(subject, grade string) []string
}

// genericTopics is the last-resort topic list for subjects the
// curriculum has never heard of.
var genericTopics = []string{"Foundations", "Core Concepts", "Applications", "Problem Solving"}

var curriculumTopics = map[string][]string{
	"math|class6":    {"Integers", "Fractions", "Decimals", "Basic Geometry"},
	"math|class7":    {"Rational Numbers", "Algebraic Expressions", "Simple Equations", "Perimeter and Area"},
	"math|class8":    {"Linear Equations", "Quadrilaterals", "Exponents", "Mensuration"},
	"science|class6": {"Food and Nutrition", "Materials", "Living Organisms", "Motion and Measurement"},
	"science|class7": {"Nutrition in Plants", "Heat", "Acids and Bases", "Motion and Time"},
	"english|class6": {"Reading Comprehension", "Grammar", "Vocabulary", "Writing"},
}

type StaticCurriculum struct{}

func NewStaticCurriculum() *StaticCurriculum {
	return &StaticCurriculum{}
}

func (c *StaticCurriculum) DefaultTopics(subject, grade string) []string {
	key := strings.ToLower(strings.TrimSpace(subject)) + "|" + strings.ToLower(strings.TrimSpace(grade))
	if topics, ok := curriculumTopics[key]; ok {
		out := make([]string, len(topics))
		copy(out, topics)
		return out
	}
	out := make([]string, len(genericTopics))
	copy(out, genericTopics)
	return out
}
