package extract

import (
	"reflect"
	"testing"

	"github.com/agrovista/agridiag/pkg/agridiag/catalog"
)

func TestDetectCrop(t *testing.T) {
	e := New(catalog.Default())

	crop, ok := e.DetectCrop("Las hojas de mi tomate están amarillas")
	if !ok || crop != "tomate" {
		t.Errorf("DetectCrop = %q, %v; want tomate, true", crop, ok)
	}
}

func TestDetectCropNone(t *testing.T) {
	e := New(catalog.Default())

	if crop, ok := e.DetectCrop("mi orquídea tiene problemas"); ok {
		t.Errorf("DetectCrop = %q, want no detection", crop)
	}
	if _, ok := e.DetectCrop(""); ok {
		t.Error("DetectCrop(\"\") should not detect")
	}
}

func TestDetectCropFirstMatchWins(t *testing.T) {
	e := New(catalog.Default())

	// Both crops present; tomate is registered first.
	crop, _ := e.DetectCrop("sembré papa junto al tomate")
	if crop != "tomate" {
		t.Errorf("DetectCrop = %q, want tomate (catalog order)", crop)
	}
}

func TestDetectSymptomsSubstringPrecedence(t *testing.T) {
	e := New(catalog.Default())

	// "hojas amarillas" is an exact variant: only the exact-match path
	// may contribute, so the result is exactly one category.
	got := e.DetectSymptoms("mi planta tiene hojas amarillas")
	want := []string{"amarillamiento"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DetectSymptoms = %v, want %v", got, want)
	}
}

func TestDetectSymptomsMultiple(t *testing.T) {
	e := New(catalog.Default())

	got := e.DetectSymptoms("presenta mosaico y necrosis en el tallo")
	want := []string{"mosaico", "necrosis"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DetectSymptoms = %v, want %v (sorted)", got, want)
	}
}

func TestDetectSymptomsSimilarityFallback(t *testing.T) {
	// Synthetic catalog: no variant appears verbatim in the text, but
	// the text shares a token with exactly one category's synthetic
	// document while the other category's vocabulary is disjoint.
	cat := catalog.New()
	cat.AddSymptom("categoria-a", []string{"zzalpha zzbeta"})
	cat.AddSymptom("categoria-b", []string{"qqone qqtwo"})
	e := New(cat)

	got := e.DetectSymptoms("zzalpha zzgamma")
	want := []string{"categoria-a"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("fallback DetectSymptoms = %v, want %v", got, want)
	}
}

func TestDetectSymptomsFallbackDegenerate(t *testing.T) {
	cat := catalog.New()
	cat.AddSymptom("categoria-a", []string{"zzalpha zzbeta"})
	e := New(cat)

	// Empty text: both paths produce nothing; no error escapes.
	if got := e.DetectSymptoms(""); len(got) != 0 {
		t.Errorf("DetectSymptoms(\"\") = %v, want empty", got)
	}
}

func TestDetectCauses(t *testing.T) {
	e := New(catalog.Default())

	got := e.DetectCauses("veo mosca blanca y algo de moho en las hojas")
	want := []string{"hongos", "mosca blanca"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DetectCauses = %v, want %v", got, want)
	}
}

func TestDetectCausesIndependentGroups(t *testing.T) {
	e := New(catalog.Default())

	// Multiple indicator groups fire simultaneously.
	got := e.DetectCauses("sospecho un virus y deficiencia de nitrógeno")
	want := []string{"deficiencia nutricional", "virus"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DetectCauses = %v, want %v", got, want)
	}
}

func TestDetectCausesEmpty(t *testing.T) {
	e := New(catalog.Default())

	if got := e.DetectCauses("la planta se ve triste"); len(got) != 0 {
		t.Errorf("DetectCauses = %v, want empty (fallback is the orchestrator's job)", got)
	}
}

func TestDetectVirusMonotonicity(t *testing.T) {
	cat := catalog.New()
	cat.AddVirus("ficticio", "V1", []string{"zzuno"})
	cat.AddVirus("ficticio", "V2", []string{"zzuno", "zzdos"})
	e := New(cat)

	// Symptom containing the shared pattern: both viruses qualify.
	got := e.DetectVirus([]string{"zzuno severo"}, "ficticio", "")
	want := []string{"V1", "V2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DetectVirus = %v, want %v", got, want)
	}

	// Neither pattern present: neither qualifies.
	if got := e.DetectVirus([]string{"otracosa"}, "ficticio", ""); len(got) != 0 {
		t.Errorf("DetectVirus = %v, want empty", got)
	}
}

func TestDetectVirusUsesCropTable(t *testing.T) {
	e := New(catalog.Default())

	got := e.DetectVirus([]string{"mosaico"}, "tomate", "")
	want := []string{"TMV (Tobacco Mosaic Virus)"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DetectVirus = %v, want %v (tomato table only)", got, want)
	}
}

func TestDetectVirusConsolidatedPool(t *testing.T) {
	e := New(catalog.Default())

	// Unknown crop: mosaic-pattern viruses from every table qualify.
	got := e.DetectVirus([]string{"mosaico"}, "", "")
	want := []string{
		"BSV (Banana Streak Virus)",
		"MSV (Maize streak virus)",
		"PVY (Potato virus Y)",
		"TMV (Tobacco Mosaic Virus)",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DetectVirus = %v, want %v", got, want)
	}
}

func TestDetectVirusPatternInRawText(t *testing.T) {
	e := New(catalog.Default())

	// Pattern "curl" appears in the raw text, not in a symptom name.
	got := e.DetectVirus([]string{"enanismo"}, "tomate", "parece leaf curl en los brotes")
	found := false
	for _, v := range got {
		if v == "TYLCV (Tomato Yellow Leaf Curl Virus)" {
			found = true
		}
	}
	if !found {
		t.Errorf("DetectVirus = %v, want TYLCV via raw-text pattern", got)
	}
}
