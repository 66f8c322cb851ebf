package knowledge

import "github.com/verdant-labs/paddydoc/internal/model"

type entry struct {
	description     string
	recommendations []string
}

// catalog is the built-in fact table, keyed by the closed label set.
var catalog = map[model.DiseaseLabel]entry{
	model.BacterialLeafBlight: {
		description: "Bacterial leaf blight (Xanthomonas oryzae) causes water-soaked " +
			"streaks along the leaf margins that turn yellow, then greyish white as " +
			"the leaf dries out. It spreads fastest in warm, humid weather and in " +
			"fields with standing water.",
		recommendations: []string{
			"Plant resistant varieties in the next season",
			"Drain the field and avoid prolonged standing water",
			"Cut back on nitrogen fertilizer until symptoms subside",
			"Apply a copper-based bactericide if the infection is spreading",
		},
	},
	model.BrownSpot: {
		description: "Brown spot (Bipolaris oryzae) shows as circular to oval brown " +
			"lesions with grey centres scattered over the leaf blade. It is strongly " +
			"associated with nutrient-deficient soils and stressed plants.",
		recommendations: []string{
			"Treat seed with a fungicide before the next sowing",
			"Correct potassium and silicon deficiency in the soil",
			"Apply a protective fungicide at the first sign of spread",
			"Keep fertilization balanced to reduce plant stress",
		},
	},
	model.LeafBlast: {
		description: "Leaf blast (Magnaporthe oryzae) produces spindle- or " +
			"diamond-shaped lesions with grey centres and brown borders. Severe " +
			"infections can kill whole leaves and move to the panicle, causing " +
			"major yield loss.",
		recommendations: []string{
			"Apply a systemic fungicide as soon as lesions appear",
			"Split nitrogen applications instead of a single heavy dose",
			"Keep the field flooded where water allows",
			"Use blast-resistant varieties in blast-prone areas",
		},
	},
	model.SheathBlight: {
		description: "Sheath blight (Rhizoctonia solani) starts as water-soaked, " +
			"irregular banded lesions on the leaf sheath near the waterline and " +
			"climbs into the canopy under dense planting and high humidity.",
		recommendations: []string{
			"Reduce seeding density to open up the canopy",
			"Drain the field periodically to lower humidity at the base",
			"Apply a fungicide at the booting stage if lesions are climbing",
			"Remove infected stubble and weeds after harvest",
		},
	},
	model.Tungro: {
		description: "Tungro is a viral disease transmitted by green leafhoppers. " +
			"Infected plants show yellow to orange leaf discoloration, stunted " +
			"growth, and reduced tillering. There is no cure once a plant is " +
			"infected.",
		recommendations: []string{
			"Control green leafhoppers with an appropriate insecticide",
			"Remove and destroy infected plants to limit spread",
			"Synchronize planting with neighbouring fields",
			"Use tungro-resistant varieties in the next season",
		},
	},
}

// fallback is served for Unknown and any unrecognized label. Never empty:
// the UI always renders at least one recommendation line.
var fallback = entry{
	description: "The condition could not be identified with enough confidence. " +
		"The leaf may be healthy, affected by an unlisted condition, or the photo " +
		"may not show the symptoms clearly.",
	recommendations: []string{
		"Retake the photo in good light, filling the frame with the affected leaf",
		"Consult a local agricultural extension expert for a field diagnosis",
		"Monitor the crop and re-check if symptoms develop or spread",
	},
}
