package domain

// WasteCategory is one of the waste streams collected by the municipality.
// The values are the labels printed on the official calendar.
type WasteCategory string

const (
	PaperCardboard WasteCategory = "CARTA E CARTONE"
	Unsorted       WasteCategory = "INDIFFERENZIATO"
	Organic        WasteCategory = "ORGANICO"
	Plastic        WasteCategory = "PLASTICA"
	GlassCans      WasteCategory = "VETRO E BARATTOLAME"
	Textiles       WasteCategory = "TESSILI E INDUMENTI"
)

// Categories lists every category in calendar order.
var Categories = []WasteCategory{
	PaperCardboard,
	Unsorted,
	Organic,
	Plastic,
	GlassCans,
	Textiles,
}

// Emoji maps each category to the pictogram used in outgoing messages.
var Emoji = map[WasteCategory]string{
	PaperCardboard: "📦",
	Unsorted:       "🗑️",
	Organic:        "🥕",
	Plastic:        "♻️",
	GlassCans:      "🍾",
	Textiles:       "👕",
}

// Instructions maps each category to its disposal instruction,
// as published by the municipal administration.
var Instructions = map[WasteCategory]string{
	PaperCardboard: "📦 Conferire in scatole o sacchi di CARTA. Non utilizzare sacchi in plastica.",
	Unsorted:       "🗑️ Conferire negli appositi sacchi trasparenti.",
	Organic:        "🥕 Conferire racchiuso negli appositi sacchetti di MATER-BI (amido di mais), nei bidoni forniti.",
	Plastic:        "♻️ Conferire negli appositi contenitori forniti dall'Amministrazione Comunale.",
	GlassCans:      "🍾 Conferire negli appositi bidoni forniti dall'Amministrazione comunale.",
	Textiles:       "👕 Segnalare via e n. civico chiamando o mandando un WhatsApp al 324 150 8217. In alternativa, utilizzare il cassone presso il centro di raccolta.",
}
