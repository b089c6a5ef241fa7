package menu

import "strings"

const defaultIcon = "📄"

// iconRule assigns an icon to titles accepted by match. Titles are
// lower-cased before matching; accents are kept.
type iconRule struct {
	match func(title string) bool
	icon  string
}

// iconTable is evaluated top to bottom; the first matching rule wins.
type iconTable []iconRule

func (t iconTable) pick(title string) string {
	lower := strings.ToLower(title)
	for _, r := range t {
		if r.match(lower) {
			return r.icon
		}
	}
	return defaultIcon
}

func anyOf(words ...string) func(string) bool {
	return func(title string) bool {
		for _, w := range words {
			if strings.Contains(title, w) {
				return true
			}
		}
		return false
	}
}

func allOf(words ...string) func(string) bool {
	return func(title string) bool {
		for _, w := range words {
			if !strings.Contains(title, w) {
				return false
			}
		}
		return true
	}
}

var sprint1Icons = iconTable{
	{anyOf("problema", "solución"), "🎯"},
	{anyOf("dataset"), "📊"},
	{anyOf("estructura", "tabla"), "🗂️"},
	{anyOf("escala", "medición"), "📏"},
	{anyOf("ia", "sugerencia"), "🤖"},
}

var sprint2ExtraIcons = iconTable{
	{anyOf("contexto"), "🎯"},
	{anyOf("problema"), "🔍"},
	{anyOf("dataset"), "📊"},
}

var sprint3Icons = iconTable{
	{anyOf("objetivo"), "🎯"},
	{anyOf("parámetro", "artefacto"), "🗃️"},
	{anyOf("indicador", "métrica"), "📊"},
	{anyOf("recomendación", "consideración"), "💡"},
	{anyOf("próximo"), "⏭️"},
	{anyOf("trazabilidad", "calidad"), "🔎"},
	{anyOf("hiperparámetro", "validación"), "⚙️"},
	{anyOf("limitación", "advertencia"), "⚠️"},
	{anyOf("ética", "privacidad"), "🔐"},
	{anyOf("mantenimiento", "actualización"), "🔄"},
	{anyOf("reproducibilidad", "entorno"), "🖥️"},
	{anyOf("esquema"), "🗺️"},
	{anyOf("feature"), "🧩"},
	{anyOf("explicación"), "📏"},
	{anyOf("benchmark", "alternativo"), "🏁"},
	{anyOf("impacto", "caso de uso"), "🚀"},
	{anyOf("checklist", "práctica"), "✅"},
}

var stageItemIcons = iconTable{
	{anyOf("objetivo"), "🎯"},
	{anyOf("estadístic"), "📊"},
	{anyOf("correlac"), "🔗"},
	{anyOf("outlier"), "🔍"},
	{anyOf("visual"), "📈"},
	{anyOf("dataset", "trabajado"), "🗄️"},
	{anyOf("distribuc", "transformac"), "📉"},
	{anyOf("acciones", "principales"), "⚙️"},
	{anyOf("calidad", "resultado"), "✅"},
	{anyOf("producto"), "📦"},
	{anyOf("venta"), "💰"},
	{anyOf("modelo", "relacion"), "🔗"},
	{allOf("clave", "definida"), "🔑"},
	{anyOf("merge", "secuencial"), "🔄"},
	{anyOf("análisis", "analisis", "estratég"), "💡"},
}
