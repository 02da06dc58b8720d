package domain

// Profile es el perfil zodiacal derivado de un año. Es comparable con ==.
type Profile struct {
	Year           int       `json:"year" yaml:"year"`
	Animal         Animal    `json:"animal" yaml:"animal"`
	AnimalChinese  string    `json:"animal_chinese" yaml:"animal_chinese"`
	Emoji          string    `json:"emoji" yaml:"emoji"`
	Element        Element   `json:"element" yaml:"element"`
	ElementChinese string    `json:"element_chinese" yaml:"element_chinese"`
	ElementColor   string    `json:"element_color" yaml:"element_color"`
	Polarity       Polarity  `json:"polarity" yaml:"polarity"`
	Allies         [2]Animal `json:"allies" yaml:"allies"`
	Clash          Animal    `json:"clash" yaml:"clash"`
	SecretFriend   Animal    `json:"secret_friend" yaml:"secret_friend"`
	FullSign       string    `json:"full_sign" yaml:"full_sign"`
}

// Relaciones posibles entre dos elementos.
const (
	RelationshipSame       = "same"
	RelationshipGenerating = "generating"
	RelationshipReceiving  = "receiving"
	RelationshipOvercoming = "overcoming"
	RelationshipControlled = "controlled"
	RelationshipNeutral    = "neutral"
)

type ElementCompatibility struct {
	Score        int    `json:"score" yaml:"score"`
	Relationship string `json:"relationship" yaml:"relationship"`
	Description  string `json:"description" yaml:"description"`
}

type PolarityCompatibility struct {
	Score       int    `json:"score" yaml:"score"`
	Balanced    bool   `json:"balanced" yaml:"balanced"`
	Description string `json:"description" yaml:"description"`
}

type Scores struct {
	Overall  int `json:"overall" yaml:"overall"`
	Animal   int `json:"animal" yaml:"animal"`
	Element  int `json:"element" yaml:"element"`
	Polarity int `json:"polarity" yaml:"polarity"`
}

// Niveles cualitativos del puntaje global.
const (
	LevelExcellent   = "Excellent"
	LevelVeryGood    = "Very Good"
	LevelGood        = "Good"
	LevelModerate    = "Moderate"
	LevelChallenging = "Challenging"
	LevelDifficult   = "Difficult"
)

// Dynamics son banderas independientes; varias pueden ser true a la vez.
type Dynamics struct {
	IsTrineMatch   bool `json:"is_trine_match" yaml:"is_trine_match"`
	IsSecretFriend bool `json:"is_secret_friend" yaml:"is_secret_friend"`
	IsClash        bool `json:"is_clash" yaml:"is_clash"`
	IsSameAnimal   bool `json:"is_same_animal" yaml:"is_same_animal"`
	IsSameElement  bool `json:"is_same_element" yaml:"is_same_element"`
}

// CompatibilityResult es el resultado completo para un par de años.
type CompatibilityResult struct {
	Partner1             Profile               `json:"partner1" yaml:"partner1"`
	Partner2             Profile               `json:"partner2" yaml:"partner2"`
	Scores               Scores                `json:"scores" yaml:"scores"`
	Level                string                `json:"level" yaml:"level"`
	LevelDescription     string                `json:"level_description" yaml:"level_description"`
	ElementRelationship  ElementCompatibility  `json:"element_relationship" yaml:"element_relationship"`
	PolarityRelationship PolarityCompatibility `json:"polarity_relationship" yaml:"polarity_relationship"`
	Dynamics             Dynamics              `json:"dynamics" yaml:"dynamics"`
	PairingKey           string                `json:"pairing_key" yaml:"pairing_key"`
}

// Tipos de etiqueta de dinámica.
const (
	TagPositive = "positive"
	TagNegative = "negative"
	TagNeutral  = "neutral"
)

type DynamicsTag struct {
	Text string `json:"text" yaml:"text"`
	Kind string `json:"kind" yaml:"kind"`
	Icon string `json:"icon" yaml:"icon"`
}

// Report agrega al resultado las etiquetas y fortalezas para presentación.
type Report struct {
	CompatibilityResult `yaml:",inline"`
	Tags                []DynamicsTag `json:"tags" yaml:"tags"`
	Strengths           []string      `json:"strengths" yaml:"strengths"`
}

// ZodiacData expone las tablas completas para la rueda de referencia.
type ZodiacData struct {
	Animals        []string            `json:"animals" yaml:"animals"`
	Chinese        map[string]string   `json:"chinese" yaml:"chinese"`
	Emojis         map[string]string   `json:"emojis" yaml:"emojis"`
	Elements       []string            `json:"elements" yaml:"elements"`
	ElementChinese map[string]string   `json:"element_chinese" yaml:"element_chinese"`
	ElementColors  map[string]string   `json:"element_colors" yaml:"element_colors"`
	Trines         [][]string          `json:"trines" yaml:"trines"`
	Allies         map[string][]string `json:"allies" yaml:"allies"`
	Clashes        map[string]string   `json:"clashes" yaml:"clashes"`
	SecretFriends  map[string]string   `json:"secret_friends" yaml:"secret_friends"`
	Generating     map[string]string   `json:"generating" yaml:"generating"`
	Overcoming     map[string]string   `json:"overcoming" yaml:"overcoming"`
}
