package service

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"harmony-match/internal/domain"
)

// ReferenceYear es un año Rata, Madera, Yang; origen de los ciclos.
const ReferenceYear = 1900

const baseAnimalScore = 50

// Pesos del puntaje global, en porcentaje.
const (
	animalWeight   = 50
	elementWeight  = 35
	polarityWeight = 15
)

// animalRule es una regla predicado -> puntaje. Se evalúan todas en orden y la
// última que coincide define el puntaje.
type animalRule struct {
	name  string
	score int
	match func(t *domain.Tables, a1, a2 domain.Animal) bool
}

var animalRules = []animalRule{
	{name: "same animal", score: 70, match: func(_ *domain.Tables, a1, a2 domain.Animal) bool { return a1 == a2 }},
	{name: "trine", score: 90, match: (*domain.Tables).TrineMates},
	{name: "secret friend", score: 85, match: (*domain.Tables).IsSecretFriend},
	{name: "ally", score: 88, match: (*domain.Tables).IsAlly},
	{name: "clash", score: 35, match: (*domain.Tables).IsClash},
}

type compatibilityLevel struct {
	min         int
	name        string
	description string
}

// compatibilityLevels va de mayor a menor umbral; gana el primero que se alcanza.
var compatibilityLevels = []compatibilityLevel{
	{85, domain.LevelExcellent, "A truly harmonious match with natural understanding"},
	{75, domain.LevelVeryGood, "Strong compatibility with great potential"},
	{65, domain.LevelGood, "Solid foundation with room for growth"},
	{50, domain.LevelModerate, "Requires effort but can flourish with understanding"},
	{40, domain.LevelChallenging, "Significant differences to navigate mindfully"},
}

var lowestLevel = compatibilityLevel{0, domain.LevelDifficult, "Major challenges requiring dedicated work"}

// CompatibilityEngine calcula perfiles y compatibilidad sobre tablas validadas.
// No tiene estado mutable: es seguro compartirlo entre goroutines.
type CompatibilityEngine struct {
	tables domain.Tables
}

// NewCompatibilityEngine valida las tablas y construye el motor.
func NewCompatibilityEngine(tables domain.Tables) (*CompatibilityEngine, error) {
	if err := tables.Validate(); err != nil {
		return nil, fmt.Errorf("validate zodiac tables: %w", err)
	}
	return &CompatibilityEngine{tables: tables}, nil
}

// ResolveProfile deriva el perfil completo de un año. Es total para cualquier int.
func (e *CompatibilityEngine) ResolveProfile(year int) domain.Profile {
	// Se opera sobre restos para que year-ReferenceYear no desborde en los extremos de int.
	// ReferenceYear es par, así que floorDiv(year-ReferenceYear, 2) == floorDiv(year, 2) - ReferenceYear/2.
	animal := domain.Animal(floorMod(
		floorMod(year, domain.AnimalCount)-floorMod(ReferenceYear, domain.AnimalCount),
		domain.AnimalCount,
	))
	element := domain.Element(floorMod(
		floorMod(floorDiv(year, 2), domain.ElementCount)-floorMod(ReferenceYear/2, domain.ElementCount),
		domain.ElementCount,
	))
	polarity := domain.Yin
	if year%2 == 0 {
		polarity = domain.Yang
	}

	return domain.Profile{
		Year:           year,
		Animal:         animal,
		AnimalChinese:  e.tables.AnimalChinese[animal],
		Emoji:          e.tables.AnimalEmoji[animal],
		Element:        element,
		ElementChinese: e.tables.ElementChinese[element],
		ElementColor:   e.tables.ElementColors[element],
		Polarity:       polarity,
		Allies:         e.tables.Allies[animal],
		Clash:          e.tables.Clashes[animal],
		SecretFriend:   e.tables.SecretFriends[animal],
		FullSign:       element.String() + " " + animal.String(),
	}
}

// ScoreAnimals puntúa el par de animales. El orden de argumentos importa:
// las reglas consultan las relaciones de a1.
func (e *CompatibilityEngine) ScoreAnimals(a1, a2 domain.Animal) int {
	score := baseAnimalScore
	for _, rule := range animalRules {
		if rule.match(&e.tables, a1, a2) {
			score = rule.score
		}
	}
	return score
}

// ScoreElement clasifica la relación entre elementos según los ciclos Sheng y Ke.
func (e *CompatibilityEngine) ScoreElement(e1, e2 domain.Element) domain.ElementCompatibility {
	switch {
	case e1 == e2:
		return domain.ElementCompatibility{
			Score:        75,
			Relationship: domain.RelationshipSame,
			Description:  "Shared elemental nature creates understanding but may amplify weaknesses",
		}
	case e.tables.Generating[e1] == e2:
		return domain.ElementCompatibility{
			Score:        90,
			Relationship: domain.RelationshipGenerating,
			Description:  fmt.Sprintf("%s generates %s, creating a nurturing flow of energy", e1, e2),
		}
	case e.tables.Generating[e2] == e1:
		return domain.ElementCompatibility{
			Score:        85,
			Relationship: domain.RelationshipReceiving,
			Description:  fmt.Sprintf("%s nurtures %s, providing supportive energy", e2, e1),
		}
	case e.tables.Overcoming[e1] == e2:
		return domain.ElementCompatibility{
			Score:        45,
			Relationship: domain.RelationshipOvercoming,
			Description:  fmt.Sprintf("%s controls %s, which requires mindful balance", e1, e2),
		}
	case e.tables.Overcoming[e2] == e1:
		return domain.ElementCompatibility{
			Score:        50,
			Relationship: domain.RelationshipControlled,
			Description:  fmt.Sprintf("%s has controlling influence over %s, needing awareness", e2, e1),
		}
	default:
		return domain.ElementCompatibility{
			Score:        65,
			Relationship: domain.RelationshipNeutral,
			Description:  "Elements coexist independently with potential for growth",
		}
	}
}

// ScorePolarity premia polaridades complementarias.
func (e *CompatibilityEngine) ScorePolarity(p1, p2 domain.Polarity) domain.PolarityCompatibility {
	if p1 != p2 {
		return domain.PolarityCompatibility{
			Score:       85,
			Balanced:    true,
			Description: "Complementary energies create balance - Yin and Yang in harmony",
		}
	}
	return domain.PolarityCompatibility{
		Score:       70,
		Balanced:    false,
		Description: fmt.Sprintf("Both partners share %s energy - similar drive but may need conscious balance", p1),
	}
}

// CalculateCompatibility ejecuta el pipeline completo para dos años.
func (e *CompatibilityEngine) CalculateCompatibility(year1, year2 int) domain.CompatibilityResult {
	p1 := e.ResolveProfile(year1)
	p2 := e.ResolveProfile(year2)

	animalScore := e.ScoreAnimals(p1.Animal, p2.Animal)
	elementCompat := e.ScoreElement(p1.Element, p2.Element)
	polarityCompat := e.ScorePolarity(p1.Polarity, p2.Polarity)

	overall := WeightedOverall(animalScore, elementCompat.Score, polarityCompat.Score)
	level := classifyLevel(overall)

	return domain.CompatibilityResult{
		Partner1: p1,
		Partner2: p2,
		Scores: domain.Scores{
			Overall:  overall,
			Animal:   animalScore,
			Element:  elementCompat.Score,
			Polarity: polarityCompat.Score,
		},
		Level:                level.name,
		LevelDescription:     level.description,
		ElementRelationship:  elementCompat,
		PolarityRelationship: polarityCompat,
		Dynamics: domain.Dynamics{
			IsTrineMatch:   e.tables.ShareTrine(p1.Animal, p2.Animal),
			IsSecretFriend: e.tables.IsSecretFriend(p1.Animal, p2.Animal),
			IsClash:        e.tables.IsClash(p1.Animal, p2.Animal),
			IsSameAnimal:   p1.Animal == p2.Animal,
			IsSameElement:  p1.Element == p2.Element,
		},
		PairingKey: PairingKey(p1.Animal, p2.Animal),
	}
}

// WeightedOverall combina los tres puntajes (50/35/15) con redondeo half-up.
// Se calcula en centésimas enteras para que .5 nunca dependa del float.
func WeightedOverall(animal, element, polarity int) int {
	hundredths := animal*animalWeight + element*elementWeight + polarity*polarityWeight
	return (hundredths + 50) / 100
}

// ClassifyLevel devuelve el nivel y su descripción para un puntaje global.
func ClassifyLevel(overall int) (name, description string) {
	lvl := classifyLevel(overall)
	return lvl.name, lvl.description
}

func classifyLevel(overall int) compatibilityLevel {
	for _, lvl := range compatibilityLevels {
		if overall >= lvl.min {
			return lvl
		}
	}
	return lowestLevel
}

// PairingKey es independiente del orden: "Goat-Horse" para (Horse, Goat) y (Goat, Horse).
func PairingKey(a1, a2 domain.Animal) string {
	names := []string{a1.String(), a2.String()}
	slices.Sort(names)
	return strings.Join(names, "-")
}

// MaxYearsSpan es el ancho máximo de rango aceptado por YearsForAnimal.
const MaxYearsSpan = 1200

// ErrInvalidYearRange indica un rango invertido o más ancho que MaxYearsSpan.
var ErrInvalidYearRange = errors.New("invalid year range")

// YearsForAnimal lista los años de [start, end] que corresponden al animal.
// Rechaza rangos invertidos o de más de MaxYearsSpan años.
func (e *CompatibilityEngine) YearsForAnimal(animal domain.Animal, start, end int) ([]int, error) {
	if !animal.Valid() {
		return nil, fmt.Errorf("%w: %d", domain.ErrUnknownAnimal, int(animal))
	}
	if start > end {
		return nil, fmt.Errorf("%w: start %d is after end %d", ErrInvalidYearRange, start, end)
	}
	// end >= start, así que la resta sin signo es exacta aunque int desborde.
	span := uint(end) - uint(start)
	if span > MaxYearsSpan {
		return nil, fmt.Errorf("%w: %d-%d spans more than %d years", ErrInvalidYearRange, start, end, MaxYearsSpan)
	}

	// Desplazamiento hasta el primer año del animal, calculado sobre restos para no desbordar.
	off := floorMod(int(animal)-floorMod(start, domain.AnimalCount)+floorMod(ReferenceYear, domain.AnimalCount), domain.AnimalCount)
	years := []int{}
	if uint(off) > span {
		return years, nil
	}
	count := int((span-uint(off))/domain.AnimalCount) + 1
	first := start + off
	for i := 0; i < count; i++ {
		years = append(years, first+i*domain.AnimalCount)
	}
	return years, nil
}

// Data devuelve las tablas completas con claves legibles.
func (e *CompatibilityEngine) Data() domain.ZodiacData {
	data := domain.ZodiacData{
		Chinese:        make(map[string]string, domain.AnimalCount),
		Emojis:         make(map[string]string, domain.AnimalCount),
		ElementChinese: make(map[string]string, domain.ElementCount),
		ElementColors:  make(map[string]string, domain.ElementCount),
		Allies:         make(map[string][]string, domain.AnimalCount),
		Clashes:        make(map[string]string, domain.AnimalCount),
		SecretFriends:  make(map[string]string, domain.AnimalCount),
		Generating:     make(map[string]string, domain.ElementCount),
		Overcoming:     make(map[string]string, domain.ElementCount),
	}
	for _, a := range domain.Animals() {
		name := a.String()
		data.Animals = append(data.Animals, name)
		data.Chinese[name] = e.tables.AnimalChinese[a]
		data.Emojis[name] = e.tables.AnimalEmoji[a]
		allies := e.tables.Allies[a]
		data.Allies[name] = []string{allies[0].String(), allies[1].String()}
		data.Clashes[name] = e.tables.Clashes[a].String()
		data.SecretFriends[name] = e.tables.SecretFriends[a].String()
	}
	for _, el := range domain.Elements() {
		name := el.String()
		data.Elements = append(data.Elements, name)
		data.ElementChinese[name] = e.tables.ElementChinese[el]
		data.ElementColors[name] = e.tables.ElementColors[el]
		data.Generating[name] = e.tables.Generating[el].String()
		data.Overcoming[name] = e.tables.Overcoming[el].String()
	}
	for _, trine := range e.tables.Trines {
		data.Trines = append(data.Trines, []string{trine[0].String(), trine[1].String(), trine[2].String()})
	}
	return data
}

func floorMod(n, m int) int {
	r := n % m
	if r < 0 {
		r += m
	}
	return r
}

func floorDiv(n, d int) int {
	q := n / d
	if n%d != 0 && (n < 0) != (d < 0) {
		q--
	}
	return q
}
