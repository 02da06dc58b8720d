package domain

import (
	"errors"
	"fmt"
)

// TrineCount es la cantidad de tríadas fijas.
const TrineCount = 4

// ErrInvalidTables indica que las tablas relacionales violan alguna invariante.
var ErrInvalidTables = errors.New("invalid zodiac tables")

// Tables agrupa las tablas estáticas de etiquetas y relaciones.
// Son arrays por valor: una copia nunca comparte estado con el original.
type Tables struct {
	AnimalChinese  [AnimalCount]string
	AnimalEmoji    [AnimalCount]string
	ElementChinese [ElementCount]string
	ElementColors  [ElementCount]string

	Trines        [TrineCount][3]Animal
	Allies        [AnimalCount][2]Animal
	Clashes       [AnimalCount]Animal
	SecretFriends [AnimalCount]Animal

	// Generating: e alimenta a Generating[e] (ciclo Sheng).
	Generating [ElementCount]Element
	// Overcoming: e controla a Overcoming[e] (ciclo Ke).
	Overcoming [ElementCount]Element
}

var defaultTables = Tables{
	AnimalChinese: [AnimalCount]string{
		"鼠", "牛", "虎", "兔", "龙", "蛇",
		"马", "羊", "猴", "鸡", "狗", "猪",
	},
	AnimalEmoji: [AnimalCount]string{
		"🐀", "🐂", "🐅", "🐇", "🐲", "🐍",
		"🐴", "🐐", "🐵", "🐓", "🐕", "🐷",
	},
	ElementChinese: [ElementCount]string{"木", "火", "土", "金", "水"},
	ElementColors:  [ElementCount]string{"#228B22", "#DC143C", "#DAA520", "#C0C0C0", "#1E90FF"},

	Trines: [TrineCount][3]Animal{
		{Rat, Dragon, Monkey},   // Doers
		{Ox, Snake, Rooster},    // Thinkers
		{Tiger, Horse, Dog},     // Protectors
		{Rabbit, Goat, Pig},     // Diplomats
	},
	// Aliados: reemplazo de la tabla histórica, que repetía los compañeros de
	// tríada (Rat-Dragon puntuaba 88 en lugar de 90). Se usan los dos signos a
	// dos posiciones en el ciclo, que nunca coinciden con tríada, choque ni amigo secreto.
	Allies: [AnimalCount][2]Animal{
		Rat:     {Tiger, Dog},
		Ox:      {Rabbit, Pig},
		Tiger:   {Dragon, Rat},
		Rabbit:  {Snake, Ox},
		Dragon:  {Horse, Tiger},
		Snake:   {Goat, Rabbit},
		Horse:   {Monkey, Dragon},
		Goat:    {Rooster, Snake},
		Monkey:  {Dog, Horse},
		Rooster: {Pig, Goat},
		Dog:     {Rat, Monkey},
		Pig:     {Ox, Rooster},
	},
	Clashes: [AnimalCount]Animal{
		Rat:     Horse,
		Ox:      Goat,
		Tiger:   Monkey,
		Rabbit:  Rooster,
		Dragon:  Dog,
		Snake:   Pig,
		Horse:   Rat,
		Goat:    Ox,
		Monkey:  Tiger,
		Rooster: Rabbit,
		Dog:     Dragon,
		Pig:     Snake,
	},
	SecretFriends: [AnimalCount]Animal{
		Rat:     Ox,
		Ox:      Rat,
		Tiger:   Pig,
		Pig:     Tiger,
		Rabbit:  Dog,
		Dog:     Rabbit,
		Dragon:  Rooster,
		Rooster: Dragon,
		Snake:   Monkey,
		Monkey:  Snake,
		Horse:   Goat,
		Goat:    Horse,
	},

	Generating: [ElementCount]Element{
		Wood:  Fire,
		Fire:  Earth,
		Earth: Metal,
		Metal: Water,
		Water: Wood,
	},
	Overcoming: [ElementCount]Element{
		Wood:  Earth,
		Earth: Water,
		Water: Fire,
		Fire:  Metal,
		Metal: Wood,
	},
}

// DefaultTables devuelve una copia de las tablas canónicas.
func DefaultTables() Tables {
	return defaultTables
}

// TrineOf devuelve el índice de la tríada del animal, o -1 si no pertenece a ninguna.
func (t *Tables) TrineOf(a Animal) int {
	for i, trine := range t.Trines {
		for _, member := range trine {
			if member == a {
				return i
			}
		}
	}
	return -1
}

// ShareTrine indica si a y b pertenecen a la misma tríada; es true para a == b.
func (t *Tables) ShareTrine(a, b Animal) bool {
	ta := t.TrineOf(a)
	return ta >= 0 && ta == t.TrineOf(b)
}

// TrineMates indica si a y b son signos distintos de la misma tríada.
// Es la regla de puntaje: un mismo signo puntúa como "same animal", no como tríada.
func (t *Tables) TrineMates(a, b Animal) bool {
	return a != b && t.ShareTrine(a, b)
}

// IsAlly indica si b figura entre los aliados de a.
func (t *Tables) IsAlly(a, b Animal) bool {
	for _, ally := range t.Allies[a] {
		if ally == b {
			return true
		}
	}
	return false
}

// IsClash indica si b es el signo opuesto de a.
func (t *Tables) IsClash(a, b Animal) bool { return t.Clashes[a] == b }

// IsSecretFriend indica si b es el amigo secreto de a.
func (t *Tables) IsSecretFriend(a, b Animal) bool { return t.SecretFriends[a] == b }

// Validate verifica completitud, simetría y exclusividad de las relaciones.
// Devuelve todas las violaciones encontradas unidas con errors.Join.
func (t *Tables) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidTables}, args...)...))
	}

	seen := make(map[Animal]int, AnimalCount)
	for i, trine := range t.Trines {
		for _, a := range trine {
			if !a.Valid() {
				fail("trine %d contains %s", i, a)
				continue
			}
			seen[a]++
		}
	}
	for _, a := range Animals() {
		if seen[a] != 1 {
			fail("%s appears in %d trines, want 1", a, seen[a])
		}
	}

	for _, a := range Animals() {
		allies := t.Allies[a]
		if allies[0] == allies[1] {
			fail("%s lists %s twice as ally", a, allies[0])
		}
		for _, b := range allies {
			switch {
			case !b.Valid():
				fail("%s has invalid ally %s", a, b)
			case b == a:
				fail("%s is its own ally", a)
			case !t.IsAlly(b, a):
				fail("ally %s-%s is not symmetric", a, b)
			}
		}

		clash := t.Clashes[a]
		switch {
		case !clash.Valid():
			fail("%s has invalid clash %s", a, clash)
		case clash != Animal((int(a)+AnimalCount/2)%AnimalCount):
			fail("%s clashes with %s, want the sign six positions away", a, clash)
		case t.Clashes[clash] != a:
			fail("clash %s-%s is not symmetric", a, clash)
		}

		friend := t.SecretFriends[a]
		switch {
		case !friend.Valid():
			fail("%s has invalid secret friend %s", a, friend)
		case friend == a:
			fail("%s is its own secret friend", a)
		case t.SecretFriends[friend] != a:
			fail("secret friend %s-%s is not symmetric", a, friend)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	// Las reglas de puntaje se aplican en secuencia con la última coincidencia
	// ganando; ningún par puede coincidir con más de una.
	for _, a := range Animals() {
		for _, b := range Animals() {
			matches := 0
			for _, hit := range []bool{a == b, t.TrineMates(a, b), t.IsSecretFriend(a, b), t.IsAlly(a, b), t.IsClash(a, b)} {
				if hit {
					matches++
				}
			}
			if matches > 1 {
				fail("pair %s-%s matches %d animal rules", a, b, matches)
			}
		}
	}

	for _, e := range Elements() {
		gen, over := t.Generating[e], t.Overcoming[e]
		switch {
		case !gen.Valid() || !over.Valid():
			fail("%s has invalid cycle target", e)
		case gen == e || over == e:
			fail("%s maps to itself in a cycle", e)
		case gen == over:
			fail("%s generates and overcomes %s", e, gen)
		}
	}
	for name, cycle := range map[string][ElementCount]Element{"generating": t.Generating, "overcoming": t.Overcoming} {
		var hit [ElementCount]bool
		for _, target := range cycle {
			if target.Valid() {
				hit[target] = true
			}
		}
		for _, e := range Elements() {
			if !hit[e] {
				fail("%s cycle never reaches %s", name, e)
			}
		}
	}

	return errors.Join(errs...)
}
