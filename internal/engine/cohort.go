package engine

import "math"

// Generation is a cohort label derived from the birth year alone.
type Generation int

const (
	GenerationGreatest Generation = iota
	GenerationSilent
	GenerationBabyBoomer
	GenerationX
	GenerationMillennial
	GenerationZ
	GenerationAlpha
)

// LifeStage is a cohort label derived from the current age alone.
type LifeStage int

const (
	StageInfant LifeStage = iota
	StageToddler
	StageChild
	StageTeen
	StageAdult
	StageMiddleAge
	StageSenior
)

// band maps an inclusive upper bound to a label. Bands are ordered by bound and the last
// one is open-ended.
type band[T any] struct {
	upTo  int
	label T
}

var generationBands = []band[Generation]{
	{1924, GenerationGreatest},
	{1945, GenerationSilent},
	{1964, GenerationBabyBoomer},
	{1979, GenerationX},
	{1994, GenerationMillennial},
	{2012, GenerationZ},
	{math.MaxInt, GenerationAlpha},
}

var lifeStageBands = []band[LifeStage]{
	{1, StageInfant},
	{4, StageToddler},
	{12, StageChild},
	{19, StageTeen},
	{39, StageAdult},
	{59, StageMiddleAge},
	{math.MaxInt, StageSenior},
}

func classify[T any](bands []band[T], v int) T {
	for _, b := range bands {
		if v <= b.upTo {
			return b.label
		}
	}
	return bands[len(bands)-1].label
}

// GenerationOf returns the generation for a birth year.
func GenerationOf(year int) Generation {
	return classify(generationBands, year)
}

// LifeStageOf returns the life stage for an age in completed years.
func LifeStageOf(age int) LifeStage {
	return classify(lifeStageBands, age)
}

var generationNames = map[Generation]string{
	GenerationGreatest:   "Greatest",
	GenerationSilent:     "Silent",
	GenerationBabyBoomer: "Baby Boomer",
	GenerationX:          "Gen X",
	GenerationMillennial: "Millennial",
	GenerationZ:          "Gen Z",
	GenerationAlpha:      "Gen Alpha",
}

var lifeStageNames = map[LifeStage]string{
	StageInfant:    "Infant",
	StageToddler:   "Toddler",
	StageChild:     "Child",
	StageTeen:      "Teen",
	StageAdult:     "Adult",
	StageMiddleAge: "Middle Age",
	StageSenior:    "Senior",
}

func (g Generation) String() string {
	if n, ok := generationNames[g]; ok {
		return n
	}
	return unknownLabel
}

func (s LifeStage) String() string {
	if n, ok := lifeStageNames[s]; ok {
		return n
	}
	return unknownLabel
}
