package query

// symptomTranslation maps canonical Spanish symptom names to the
// English terms the citation database indexes. Coverage is partial by
// design: untranslated names pass through verbatim.
var symptomTranslation = map[string]string{
	"amarillamiento":       "yellowing",
	"hojas enrolladas":     "leaf curling",
	"enanismo":             "stunting",
	"manchas en hojas":     "leaf spots",
	"necrosis":             "necrosis",
	"mosaico":              "mosaic",
	"deformación de hojas": "leaf deformation",
	"marchitez":            "wilting",
	"tizón":                "blight",
}

// TranslateSymptoms maps canonical symptom names to English search
// terms, keeping order and falling back to the name itself when no
// translation exists.
func TranslateSymptoms(symptoms []string) []string {
	out := make([]string, len(symptoms))
	for i, s := range symptoms {
		if en, ok := symptomTranslation[s]; ok {
			out[i] = en
		} else {
			out[i] = s
		}
	}
	return out
}
