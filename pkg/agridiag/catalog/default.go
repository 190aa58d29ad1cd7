package catalog

// Default returns the compiled-in Spanish catalog. The crop list order
// is the match order for crop detection, so entries must not be
// reordered casually.
func Default() *Catalog {
	c := New()

	c.AddCrop("tomate", []string{"tomate", "jitomate", "tomates", "tomato"})
	c.AddCrop("papa", []string{"papa", "patata", "papas", "potato"})
	c.AddCrop("banano", []string{"banano", "banana", "plátano", "platano"})
	c.AddCrop("maíz", []string{"maíz", "maiz", "elote", "corn"})
	c.AddCrop("cacao", []string{"cacao", "cacaotero"})
	c.AddCrop("arroz", []string{"arroz", "rice"})
	c.AddCrop("frijol", []string{"frijol", "bean"})

	c.AddSymptom("amarillamiento", []string{"amarillo", "amarillamiento", "clorosis", "hojas amarillas", "hoja amarilla"})
	c.AddSymptom("hojas enrolladas", []string{"hojas enrolladas", "enrolladas", "hojas rizadas", "enrollamiento", "leaf roll"})
	c.AddSymptom("enanismo", []string{"enanismo", "plantas enanas", "crecimiento atrofiado", "crecimiento lento"})
	c.AddSymptom("manchas en hojas", []string{"manchas en hojas", "manchas cafés", "spots", "punteado", "puntos en hojas"})
	c.AddSymptom("necrosis", []string{"necrosis", "tejido muerto", "zona necrótica"})
	c.AddSymptom("mosaico", []string{"mosaico", "patrón moteado", "manchas tipo mosaico", "mottling"})
	c.AddSymptom("deformación de hojas", []string{"deformadas", "deformación de hojas", "hojas torcidas", "hojas deformes"})
	c.AddSymptom("marchitez", []string{"marchitamiento", "marchitas", "hojas marchitas", "wilting"})
	c.AddSymptom("tizón", []string{"tizón", "blight", "hojas negras", "quemado"})

	c.AddVector("mosca blanca", []string{"mosca blanca", "mosquitas blancas", "whitefly", "bemisia"})
	c.AddVector("pulgón", []string{"pulgón", "pulgones", "aphid", "áfidos"})
	c.AddVector("trips", []string{"trips", "thrips"})
	c.AddVector("ácaros", []string{"ácaro", "ácaros", "mite"})

	c.AddCauseGroup("hongos", []string{"hongo", "hongos", "mildiu", "roya", "moho", "fungal"})
	c.AddCauseGroup("bacterias", []string{"bacteria", "bacterias", "psb", "pseudomonas", "bacterial"})
	c.AddCauseGroup("deficiencia nutricional", []string{"deficiencia", "falta de", "carencia", "nutricional", "nitrógeno", "hierro"})
	c.AddCauseGroup("virus", []string{"virus", "virosis", "viral"})

	c.AddVirus("tomate", "TYLCV (Tomato Yellow Leaf Curl Virus)", []string{"hojas enrolladas", "amarillamiento", "curl"})
	c.AddVirus("tomate", "ToBRFV (Tomato brown rugose fruit virus)", []string{"manchas en frutos", "necrosis", "manchas en hojas"})
	c.AddVirus("tomate", "TMV (Tobacco Mosaic Virus)", []string{"mosaico", "moteado", "deformación de hojas"})
	c.AddVirus("papa", "PVY (Potato virus Y)", []string{"manchas en hojas", "mosaico", "amarillamiento", "deformación de hojas"})
	c.AddVirus("papa", "PLRV (Potato leafroll virus)", []string{"hojas enrolladas", "amarillamiento", "enrollamiento"})
	c.AddVirus("banano", "BBTV (Banana Bunchy Top Virus)", []string{"enanismo", "hojas erectas", "deformación de hojas"})
	c.AddVirus("banano", "BSV (Banana Streak Virus)", []string{"mosaico", "manchas en hojas"})
	c.AddVirus("maíz", "MSV (Maize streak virus)", []string{"mosaico", "manchas en hojas", "amarillamiento"})

	return c
}
