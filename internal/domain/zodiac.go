package domain

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Animal representa uno de los doce signos del ciclo, en orden.
type Animal int

const (
	Rat Animal = iota
	Ox
	Tiger
	Rabbit
	Dragon
	Snake
	Horse
	Goat
	Monkey
	Rooster
	Dog
	Pig
)

// AnimalCount es la longitud del ciclo de animales.
const AnimalCount = 12

var animalNames = [AnimalCount]string{
	"Rat", "Ox", "Tiger", "Rabbit", "Dragon", "Snake",
	"Horse", "Goat", "Monkey", "Rooster", "Dog", "Pig",
}

// Element representa una de las cinco fases (Wu Xing).
type Element int

const (
	Wood Element = iota
	Fire
	Earth
	Metal
	Water
)

// ElementCount es la longitud del ciclo de elementos.
const ElementCount = 5

var elementNames = [ElementCount]string{"Wood", "Fire", "Earth", "Metal", "Water"}

// Polarity es Yang (años pares) o Yin (años impares).
type Polarity int

const (
	Yang Polarity = iota
	Yin
)

var polarityNames = [2]string{"Yang", "Yin"}

var (
	ErrUnknownAnimal   = errors.New("unknown animal")
	ErrUnknownElement  = errors.New("unknown element")
	ErrUnknownPolarity = errors.New("unknown polarity")
)

// Animals devuelve los doce animales en orden de ciclo.
func Animals() []Animal {
	out := make([]Animal, AnimalCount)
	for i := range out {
		out[i] = Animal(i)
	}
	return out
}

// Elements devuelve los cinco elementos en orden de ciclo.
func Elements() []Element {
	out := make([]Element, ElementCount)
	for i := range out {
		out[i] = Element(i)
	}
	return out
}

func (a Animal) Valid() bool { return a >= 0 && int(a) < AnimalCount }

func (a Animal) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Animal(%d)", int(a))
	}
	return animalNames[a]
}

func (a Animal) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAnimal, int(a))
	}
	return []byte(animalNames[a]), nil
}

func (a *Animal) UnmarshalText(text []byte) error {
	parsed, err := ParseAnimal(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAnimal resuelve un nombre de animal sin importar mayúsculas ni espacios.
func ParseAnimal(name string) (Animal, error) {
	canonical := canonicalName(name)
	for i, n := range animalNames {
		if n == canonical {
			return Animal(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAnimal, name)
}

func (e Element) Valid() bool { return e >= 0 && int(e) < ElementCount }

func (e Element) String() string {
	if !e.Valid() {
		return fmt.Sprintf("Element(%d)", int(e))
	}
	return elementNames[e]
}

func (e Element) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownElement, int(e))
	}
	return []byte(elementNames[e]), nil
}

func (e *Element) UnmarshalText(text []byte) error {
	parsed, err := ParseElement(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// ParseElement resuelve un nombre de elemento sin importar mayúsculas ni espacios.
func ParseElement(name string) (Element, error) {
	canonical := canonicalName(name)
	for i, n := range elementNames {
		if n == canonical {
			return Element(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownElement, name)
}

func (p Polarity) Valid() bool { return p == Yang || p == Yin }

func (p Polarity) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Polarity(%d)", int(p))
	}
	return polarityNames[p]
}

// Opposite devuelve la polaridad complementaria.
func (p Polarity) Opposite() Polarity {
	if p == Yang {
		return Yin
	}
	return Yang
}

func (p Polarity) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPolarity, int(p))
	}
	return []byte(polarityNames[p]), nil
}

func (p *Polarity) UnmarshalText(text []byte) error {
	switch canonicalName(string(text)) {
	case "Yang":
		*p = Yang
	case "Yin":
		*p = Yin
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPolarity, string(text))
	}
	return nil
}

// canonicalName normaliza "  rOOSTER " -> "Rooster".
// cases.Caser no es seguro entre goroutines, por eso se crea en cada llamada.
func canonicalName(s string) string {
	return cases.Title(language.English).String(strings.TrimSpace(s))
}
