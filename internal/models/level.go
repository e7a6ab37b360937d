package models

// Level is a national curriculum stage ("etapa") with its MEC code.
// The table below mirrors the illustrative codes used by the registration
// form; it is not the full national catalogue.
type Level struct {
	Code  int    `json:"code"`
	Label string `json:"label"`
}

// Levels returns the curriculum stages a class group can be created for.
func Levels() []Level {
	return []Level{
		{Code: 101, Label: "Infantil Creche"},
		{Code: 102, Label: "Infantil Pré-escola"},
		{Code: 201, Label: "Fundamental Anos Iniciais"},
		{Code: 202, Label: "Fundamental Anos Finais"},
	}
}

// LevelByCode resolves a curriculum stage by its MEC code.
func LevelByCode(code int) (Level, bool) {
	for _, level := range Levels() {
		if level.Code == code {
			return level, true
		}
	}
	return Level{}, false
}
